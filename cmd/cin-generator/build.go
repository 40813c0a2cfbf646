package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cin-generator/internal/cin"
	"cin-generator/internal/cinmap"
)

func newBuildCommand(root *rootParams) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "build [csv files or globs...]",
		Short: "Build the .cin table from dictionary sources",
		Long: `Build loads every dictionary source, derives the keys a user may type for
each entry, merges the sources and writes the .cin table.

Without arguments the sources listed in the config file are used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := root.setup(cmd)
			if err != nil {
				return report(cmd, err)
			}

			paths, err := expandSources(args, cfg)
			if err != nil {
				return report(cmd, err)
			}

			results, err := buildSources(cmd.Context(), cfg, newPipeline(cfg, logger), paths, root.jobs, false)
			if err != nil {
				logger.WithError(err).Error("build aborted")
				return err
			}

			logResults(logger, results)

			maps := make([]cinmap.Map, len(results))
			for i, r := range results {
				maps[i] = r.Map
			}

			merged := cinmap.Merge(maps...)
			logger.WithFields(logrus.Fields{
				"sources": len(results),
				"keys":    len(merged),
				"pairs":   merged.Pairs(),
			}).Info("sources merged")

			if output == "" || output == "-" {
				err = cin.Write(cmd.OutOrStdout(), cfg.Header(), merged)
			} else {
				err = cin.WriteFile(output, cfg.Header(), merged)
			}

			if err != nil {
				logger.WithError(err).Error("writing table failed")
			}

			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "-", "output .cin file, - for stdout")

	return cmd
}

// report prints an error raised before logging is available.
func report(cmd *cobra.Command, err error) error {
	cmd.PrintErrln("Error:", err)
	return err
}
