package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cin-generator/internal/config"
)

type rootParams struct {
	configPath string
	jobs       int
	logLevel   string
}

func newRootCommand() *cobra.Command {
	params := &rootParams{}

	root := &cobra.Command{
		Use:           "cin-generator",
		Short:         "Generate a .cin input-method table from ChhoeTaigi dictionaries",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&params.configPath, "config", "c", "", "path to the YAML config file")
	root.PersistentFlags().IntVarP(&params.jobs, "jobs", "j", runtime.NumCPU(), "number of sources processed concurrently")
	root.PersistentFlags().StringVar(&params.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	root.AddCommand(newBuildCommand(params), newCheckCommand(params), newConfigCommand(params))

	return root
}

// setup reads the config and prepares the logger shared by every command.
func (p *rootParams) setup(cmd *cobra.Command) (*config.File, *logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	level, err := logrus.ParseLevel(p.logLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level: %w", err)
	}

	logger.SetLevel(level)

	cfg := config.Default()
	if p.configPath != "" {
		cfg, err = config.LoadFile(p.configPath)
		if err != nil {
			return nil, nil, err
		}
	}

	if p.jobs < 1 {
		return nil, nil, fmt.Errorf("--jobs must be at least 1, got %d", p.jobs)
	}

	return cfg, logger, nil
}

// expandSources resolves glob patterns in args, falling back to the
// configured sources when no arguments are given.
func expandSources(args []string, cfg *config.File) ([]string, error) {
	if len(args) == 0 {
		args = cfg.Sources
	}

	var files []string

	for _, arg := range args {
		matches, err := filepath.Glob(arg)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", arg, err)
		}

		if matches == nil {
			// no glob match, treat as literal path
			files = append(files, arg)
		} else {
			files = append(files, matches...)
		}
	}

	if len(files) == 0 {
		return nil, errors.New("no dictionary sources given")
	}

	return files, nil
}
