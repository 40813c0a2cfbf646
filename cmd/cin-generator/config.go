package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cin-generator/internal/config"
)

func newConfigCommand(root *rootParams) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long: `Config prints the configuration build and check would use, with every
default filled in. The output is a valid config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := root.setup(cmd)
			if err != nil {
				return report(cmd, err)
			}

			data, err := config.Marshal(cfg)
			if err != nil {
				return report(cmd, fmt.Errorf("marshaling config: %w", err))
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
}
