package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/pytlang/pyt/internal/diagnostics"
	"github.com/pytlang/pyt/internal/lexer"
	"github.com/pytlang/pyt/internal/printer"
)

func main() {
	args, err := cli()
	if err != nil {
		log.Fatal(err)
	}

	src, err := os.ReadFile(args.Path)
	if err != nil {
		log.Fatal(err)
	}

	collector := diagnostics.New()
	lex := lexer.New(args.Path, src, collector)
	tokens, err := lex.Tokenize()
	if err != nil {
		log.Fatal(err)
	}

	banner("source")
	fmt.Println(string(src))
	banner("tokens")
	fmt.Println(printer.Dump(tokens))
	banner("tokens back to source")
	fmt.Println(printer.Source(tokens))
}

func banner(title string) {
	fmt.Println(strings.Repeat("-", 25), title, strings.Repeat("-", 25))
}
