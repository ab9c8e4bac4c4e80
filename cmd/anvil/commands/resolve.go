package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/anvil/internal/app"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve action plans for the targets in the request file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			requestPath, _ := cmd.Flags().GetString("request")
			format, _ := cmd.Flags().GetString("format")
			watch, _ := cmd.Flags().GetBool("watch")

			return c.app.Resolve(cmd.Context(), app.ResolveOptions{
				RequestPath: requestPath,
				Format:      format,
				Watch:       watch,
			})
		},
	}
	cmd.Flags().StringP("request", "r", "", "Path to the request file (default: search upward for anvil.yaml)")
	cmd.Flags().StringP("format", "o", "auto", "Output format: auto, text, or json")
	cmd.Flags().BoolP("watch", "w", false, "Re-resolve whenever the request file changes")
	return cmd
}
