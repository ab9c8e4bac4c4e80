package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/anvil/internal/core/domain"
)

func (c *CLI) newPlatformsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "platforms",
		Short: "List the supported platform classes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			for _, class := range domain.PlatformClasses {
				dir := domain.DeveloperFrameworkDir(class)
				if dir == "" {
					_, _ = fmt.Fprintln(out, class)
					continue
				}
				_, _ = fmt.Fprintf(out, "%s (framework dir: %s)\n", class, dir)
			}
		},
	}
}
