// Package cmd - config command
package cmd

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"refine-calc/internal/config"
)

// newConfigCmd prints the effective configuration after file, .env and
// environment overrides
func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(config.Get()); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}
