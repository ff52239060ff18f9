package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/aretw0/roboadvisor/internal/presentation/tui"
	"github.com/aretw0/roboadvisor/pkg/portfolio"
)

// PrintCatalog writes the risk catalog as a table, or as JSON when asJSON is set.
func PrintCatalog(w io.Writer, asJSON bool) error {
	type entry struct {
		Level      string `json:"level"`
		Allocation string `json:"allocation"`
	}

	entries := make([]entry, 0, len(portfolio.Levels()))
	for _, level := range portfolio.Levels() {
		alloc, err := portfolio.Allocation(level)
		if err != nil {
			return err
		}
		entries = append(entries, entry{Level: level, Allocation: alloc})
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, tui.Heading(w, "RISK")+"\t"+tui.Heading(w, "ALLOCATION"))
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\n", e.Level, e.Allocation)
	}
	return tw.Flush()
}
