package cli

import (
	"fmt"

	"github.com/sgarcia/romaday/internal/guide"
)

type GuideCmd struct{}

func (c *GuideCmd) Run(ctx *Context) error {
	fmt.Println("Guía de supervivencia")
	fmt.Println()
	for _, tip := range guide.Tips() {
		fmt.Printf("■ %s\n  %s\n\n", tip.Title, tip.Body)
	}

	fmt.Println("Frases útiles:")
	for _, p := range guide.Phrases() {
		fmt.Printf("  %-16s %-16s %s — %s\n", p.Word, p.Phonetic, p.Simplified, p.Meaning)
	}
	return nil
}
