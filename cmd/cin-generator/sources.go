package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"cin-generator/internal/cinmap"
	"cin-generator/internal/config"
	"cin-generator/internal/diagnostic"
	"cin-generator/internal/dict"
	"cin-generator/internal/pipeline"
)

// sourceResult is the outcome of running the pipeline over one source.
type sourceResult struct {
	Name        string
	Rows        int
	Map         cinmap.Map
	Diagnostics diagnostic.Diagnostics
}

// buildSources loads every path and runs p over it. Sources are independent,
// so they are processed concurrently. Unless keepGoing is set, the first load
// failure cancels the rest and is returned; with keepGoing it is recorded as
// an error diagnostic on that source's result instead.
func buildSources(
	ctx context.Context, cfg *config.File, p *pipeline.Pipeline, paths []string, jobs int, keepGoing bool,
) ([]sourceResult, error) {
	results := make([]sourceResult, len(paths))
	opts := cfg.LoadOptions()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			src, err := dict.LoadFile(path, opts)
			if err != nil && keepGoing {
				name := filepath.Base(path)
				r := sourceResult{Name: name, Map: cinmap.New()}
				r.Diagnostics.AddError(diagnostic.CodeSourceLoad, err.Error(), name, 0)
				results[i] = r

				return nil
			}

			if err != nil {
				return fmt.Errorf("loading source: %w", err)
			}

			m, diags := p.Run(src.Name, src.Rows)
			results[i] = sourceResult{
				Name:        src.Name,
				Rows:        len(src.Rows),
				Map:         m,
				Diagnostics: diags,
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// newPipeline assembles the configured pipeline and logs its passes.
func newPipeline(cfg *config.File, logger *logrus.Logger) *pipeline.Pipeline {
	p := pipeline.New(cfg.Pipeline())
	logger.WithField("passes", p.Passes()).Debug("pipeline assembled")

	return p
}

// logResults reports every diagnostic and a per-source summary.
func logResults(logger *logrus.Logger, results []sourceResult) {
	for _, r := range results {
		for _, d := range r.Diagnostics.All() {
			entry := logger.WithFields(logrus.Fields{
				"source": d.Source,
				"line":   d.Line,
				"code":   d.Code,
			})

			switch d.Severity {
			case diagnostic.SeverityError:
				entry.Error(d.Message)
			case diagnostic.SeverityWarning:
				entry.Warn(d.Message)
			default:
				entry.Info(d.Message)
			}
		}

		fields := logrus.Fields{
			"source": r.Name,
			"rows":   r.Rows,
			"keys":   len(r.Map),
			"pairs":  r.Map.Pairs(),
		}
		for code, n := range r.Diagnostics.CountByCode() {
			fields[code] = n
		}

		logger.WithFields(fields).Info("source processed")
	}
}
