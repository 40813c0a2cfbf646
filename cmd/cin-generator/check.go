package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cin-generator/internal/diagnostic"
)

func newCheckCommand(root *rootParams) *cobra.Command {
	return &cobra.Command{
		Use:   "check [csv files or globs...]",
		Short: "Run the key derivation over dictionary sources and report diagnostics",
		Long: `Check runs every source through the pipeline without writing a table.

Unlike build, a source that fails to load does not stop the others; every
failure is reported and the command exits non-zero at the end.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := root.setup(cmd)
			if err != nil {
				return report(cmd, err)
			}

			paths, err := expandSources(args, cfg)
			if err != nil {
				return report(cmd, err)
			}

			results, err := buildSources(cmd.Context(), cfg, newPipeline(cfg, logger), paths, root.jobs, true)
			if err != nil {
				logger.WithError(err).Error("check aborted")
				return err
			}

			logResults(logger, results)

			var all diagnostic.Diagnostics

			out := cmd.OutOrStdout()
			for _, r := range results {
				fmt.Fprintf(out, "%s\trows=%d\tkeys=%d\tpairs=%d\twarnings=%d\terrors=%d\n",
					r.Name, r.Rows, len(r.Map), r.Map.Pairs(),
					len(r.Diagnostics.Warnings), len(r.Diagnostics.Errors))
				all.Merge(r.Diagnostics)
			}

			if all.HasErrors() {
				return report(cmd, all.Error())
			}

			return nil
		},
	}
}
