package cli

import (
	"fmt"

	"github.com/sgarcia/romaday/internal/budget"
)

type BudgetCmd struct{}

func (c *BudgetCmd) Run(ctx *Context) error {
	items := budget.Breakdown(ctx.Itinerary())

	fmt.Println("Presupuesto del día:")
	fmt.Println()
	for _, item := range items {
		marker := " "
		if item.Extra {
			marker = "·"
		}
		fmt.Printf("  %s %-34s €%6.2f\n", marker, item.Title, item.Price)
	}
	fmt.Printf("\n  Total estimado: €%.2f (perfil low cost 30–40€)\n", budget.Total(ctx.Itinerary()))
	return nil
}
