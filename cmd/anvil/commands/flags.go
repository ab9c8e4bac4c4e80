package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/anvil/internal/core/domain"
)

func (c *CLI) newFlagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "flags",
		Short: "List the known capability flags and their version gates",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			for _, f := range domain.KnownFlags {
				if gate, ok := domain.GateFor(f); ok {
					_, _ = fmt.Fprintf(out, "%s (requires tool version >= %s)\n", f, gate)
					continue
				}
				_, _ = fmt.Fprintln(out, f)
			}
		},
	}
}
