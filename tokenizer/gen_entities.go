//go:build ignore

// Regenerates entities.go from the WHATWG entities.json export.
//
//	go run gen_entities.go
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sort"
)

const entitiesURL = "https://html.spec.whatwg.org/entities.json"

func main() {
	resp, err := http.Get(entitiesURL)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	// {"&AElig;": {"codepoints": [198], "characters": "Æ"}, ...}
	var table map[string]struct {
		Codepoints []rune `json:"codepoints"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&table); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	buf.WriteString("// Code generated by gen_entities.go from the WHATWG named character\n")
	buf.WriteString("// references table; DO NOT EDIT.\n\n")
	buf.WriteString("package tokenizer\n\n")
	buf.WriteString("// namedCharRefs maps every entity name from the reference table, with\n")
	buf.WriteString("// and without the trailing semicolon where the table allows it, to its\n")
	buf.WriteString("// expansion of one or two code points.\n")
	buf.WriteString("var namedCharRefs = map[string]string{\n")
	for _, name := range names {
		// strip the leading ampersand; the lexer never includes it
		fmt.Fprintf(&buf, "\t%q: \"", name[1:])
		for _, r := range table[name].Codepoints {
			if r > 0xFFFF {
				fmt.Fprintf(&buf, "\\U%08x", r)
			} else if r < 0x20 || r >= 0x7F || r == '"' || r == '\\' {
				fmt.Fprintf(&buf, "\\u%04x", r)
			} else {
				buf.WriteRune(r)
			}
		}
		buf.WriteString("\",\n")
	}
	buf.WriteString("}\n")

	if err := os.WriteFile("entities.go", buf.Bytes(), 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
