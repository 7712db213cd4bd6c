package cli

import (
	"fmt"

	"github.com/sgarcia/romaday/internal/validation"
)

type ValidateCmd struct{}

func (cmd *ValidateCmd) Run(ctx *Context) error {
	fmt.Println("Validating itinerary...")
	result := validation.New().ValidateItinerary(ctx.Canon)

	fmt.Println()
	fmt.Println(result.FormatReport())

	if result.HasErrors() {
		return fmt.Errorf("itinerary configuration is invalid")
	}
	return nil
}
