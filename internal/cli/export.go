package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type ExportCmd struct {
	Format string `help:"Output format: json or yaml." enum:"json,yaml" default:"json"`
}

// Run dumps the merged itinerary (canonical plan plus completion
// state) to stdout, for printing or for feeding another tool.
func (c *ExportCmd) Run(ctx *Context) error {
	merged := ctx.Itinerary()

	switch c.Format {
	case "yaml":
		data, err := yaml.Marshal(merged)
		if err != nil {
			return fmt.Errorf("failed to encode itinerary: %w", err)
		}
		_, err = os.Stdout.Write(data)
		return err
	default:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(merged)
	}
}
