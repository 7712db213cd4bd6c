package cli

import (
	"fmt"
	"os"

	"github.com/mdp/qrterminal/v3"

	"github.com/sgarcia/romaday/internal/itinerary"
)

type QRCmd struct {
	ID string `arg:"" help:"Activity id to show a maps QR for."`
}

// Run prints a QR code for the activity's maps link, so the location
// can be flicked from the terminal onto a phone.
func (c *QRCmd) Run(ctx *Context) error {
	act, ok := itinerary.ByID(ctx.Canon, c.ID)
	if !ok {
		return fmt.Errorf("no activity with id %q", c.ID)
	}

	link := act.MapsLink
	if link == "" {
		link = fmt.Sprintf("https://maps.google.com/?q=%f,%f", act.Coords.Lat, act.Coords.Lng)
	}

	fmt.Printf("%s — %s\n%s\n\n", act.Title, act.LocationName, link)
	qrterminal.GenerateHalfBlock(link, qrterminal.L, os.Stdout)
	return nil
}
