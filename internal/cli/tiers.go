package cli

import (
	"fmt"
	"io"

	"github.com/rileyhilliard/parkmeter/internal/tier"
	"github.com/rileyhilliard/parkmeter/internal/ui"
)

// tiersOutput is the JSON shape of the tiers command.
type tiersOutput struct {
	Source string     `json:"source"`
	Tiers  tier.Table `json:"tiers"`
}

// tiersCommand prints the tier table in effect.
func tiersCommand(w io.Writer) error {
	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}

	source := path
	if source == "" {
		source = "defaults"
	}

	if machineMode {
		return WriteJSONSuccess(w, tiersOutput{Source: source, Tiers: cfg.Tiers})
	}

	fmt.Fprintln(w, ui.RenderTierTable(cfg.Tiers))
	fmt.Fprintln(w, ui.MutedStyle().Render("from "+source))
	return nil
}
