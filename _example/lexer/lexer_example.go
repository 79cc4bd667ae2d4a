package main

import (
	"fmt"
	"log"

	"github.com/xiam/conllu/lexer"
	"github.com/xiam/conllu/upostag"
)

func main() {
	input := "# sent_id = 1\n" +
		"1\tThe\tthe\tDET\tDT\tDefinite=Def|PronType=Art\t2\tdet\t_\t_\n" +
		"2\tdog\tdog\tNOUN\tNN\tNumber=Sing\t0\troot\t_\tSpaceAfter=No\n"

	rules, err := lexer.Compile(upostag.Names())
	if err != nil {
		log.Fatal("lexer.Compile:", err)
	}

	tokens, err := lexer.Tokenize(rules, []byte(input))
	if err != nil {
		log.Fatal("lexer.Tokenize:", err)
	}

	for i, tok := range tokens {
		line, col := tok.Pos()
		tt := tok.Type().String()

		fmt.Printf("token[%d] (type: %v, line: %d, col: %d)\n\t-> %q -> %v\n\n", i, tt, line, col, tok.Text(), tok.Value())
	}
}
