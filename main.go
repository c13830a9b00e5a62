// Command htmltok tokenizes an HTML document from a file or stdin and
// prints one line per token, followed by any parse errors.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/heathj/htmltok/tokenizer"
	"github.com/sirupsen/logrus"
)

func main() {
	in := io.Reader(os.Stdin)
	if len(os.Args) > 1 {
		f, err := os.Open(os.Args[1])
		if err != nil {
			logrus.Fatal(err)
		}
		defer f.Close()
		in = f
	}
	doc, err := io.ReadAll(in)
	if err != nil {
		logrus.Fatal(err)
	}

	sink := &tokenizer.TokenCollector{}
	z, err := tokenizer.NewTokenizer(sink, tokenizer.DefaultOptions())
	if err != nil {
		logrus.Fatal(err)
	}
	if err := z.Feed(string(doc), true); err != nil {
		logrus.Fatal(err)
	}

	for i := range sink.Tokens {
		printToken(&sink.Tokens[i])
	}
	for _, e := range sink.Errors {
		fmt.Printf("parse error at %d:%d: %s\n", e.Line, e.Column, e.Code)
	}
}

func printToken(tok *tokenizer.Token) {
	switch tok.Type {
	case tokenizer.CharacterToken:
		fmt.Printf("characters %q\n", tok.Data)
	case tokenizer.StartTagToken:
		fmt.Printf("start tag  <%s", tok.TagName)
		for _, a := range tok.Attributes {
			fmt.Printf(" %s=%q", a.Name, a.Value)
		}
		if tok.SelfClosing {
			fmt.Print("/")
		}
		fmt.Println(">")
	case tokenizer.EndTagToken:
		fmt.Printf("end tag    </%s>\n", tok.TagName)
	case tokenizer.CommentToken:
		fmt.Printf("comment    <!--%s-->\n", tok.Data)
	case tokenizer.DoctypeToken:
		fmt.Printf("doctype    name=%s public=%s system=%s quirks=%v\n",
			tok.TagName, tok.PublicIdentifier, tok.SystemIdentifier, tok.ForceQuirks)
	case tokenizer.EndOfFileToken:
		fmt.Println("eof")
	}
}
