package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

type ResetCmd struct {
	Yes bool `help:"Skip the confirmation prompt." short:"y"`
}

func (c *ResetCmd) Run(ctx *Context) error {
	if !c.Yes {
		var confirmed bool
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title("Borrar todo el progreso del día?").
				Description("Las casillas marcadas volverán a pendiente.").
				Value(&confirmed),
		))
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if _, err := ctx.Tracker.Reset(ctx.Canon); err != nil {
		return fmt.Errorf("failed to reset progress: %w", err)
	}
	fmt.Println("✓ Progreso borrado.")
	return nil
}
