package runner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/schollz/progressbar/v3"

	"relink/internal/classify"
	"relink/internal/config"
	"relink/internal/hashtier"
	"relink/internal/heuristic"
	"relink/internal/logging"
	"relink/internal/merge"
	"relink/internal/preflight"
	"relink/internal/scan"
	"relink/internal/sizegroup"
)

// Confirmer answers the precondition question. The terminal prompt
// implements it; tests supply a canned answer.
type Confirmer interface {
	Confirm(question string, def bool) bool
}

// Options configures a single run.
type Options struct {
	Roots         []string
	MinFilesizeMB int64
	// Hardlink enables the destructive merge pass; otherwise the run only
	// reports.
	Hardlink bool
	Mode     classify.Mode
	// Resolver handles uncertain groups in interactive mode.
	Resolver classify.Resolver
	// Confirmer carries the no-writers confirmation. Nil refuses, which
	// keeps non-interactive runs safe unless AssumeNoWriters is set.
	Confirmer Confirmer
	// AssumeNoWriters skips the confirmation for scripted runs.
	AssumeNoWriters bool
	// ShowProgress renders a progress bar while classifying.
	ShowProgress bool
}

// GroupResult pairs a group with its terminal classification.
type GroupResult struct {
	Group   sizegroup.Group
	Outcome classify.Outcome
	Merged  bool
}

// Summary is the run-level report data.
type Summary struct {
	TotalFiles int
	// ReclaimableBytes sums one copy per emitted size group, before
	// classification.
	ReclaimableBytes int64
	// SavedBytes counts the space a merge of every accepted group frees:
	// group size times the number of collapsed copies.
	SavedBytes int64
	Preflight  []preflight.Result
	Groups     []GroupResult
}

// Runner executes the pipeline for one invocation.
type Runner struct {
	cfg    *config.Config
	logger *slog.Logger
}

// New constructs a runner.
func New(cfg *config.Config, logger *slog.Logger) *Runner {
	return &Runner{cfg: cfg, logger: logging.NewComponentLogger(logger, "runner")}
}

// Run executes the full pipeline. The returned summary is valid whenever
// the error is nil; a merge failure returns both the partial summary and
// the error, since everything up to the failed group has already happened.
func (r *Runner) Run(ctx context.Context, opts Options) (*Summary, error) {
	summary := &Summary{Preflight: preflight.RunAll(opts.Roots)}
	if !preflight.AllPassed(summary.Preflight) {
		return summary, fmt.Errorf("preflight failed: %s", firstFailure(summary.Preflight))
	}

	lock, err := preflight.AcquireLock(r.cfg.Paths.LogDir)
	if err != nil {
		return summary, err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			r.logger.Warn("failed to release run lock", logging.Error(err))
		}
	}()

	if !opts.AssumeNoWriters {
		if opts.Confirmer == nil || !opts.Confirmer.Confirm("Are all writing programs stopped?", false) {
			return summary, preflight.ErrRefused
		}
	}

	walker := scan.NewWalker(opts.MinFilesizeMB, r.logger)
	files, err := walker.Walk(opts.Roots)
	if err != nil {
		return summary, err
	}

	groups, stats := sizegroup.Build(files, r.logger)
	summary.TotalFiles = stats.TotalFiles
	summary.ReclaimableBytes = stats.ReclaimableBytes
	r.logger.Info("scan complete",
		logging.Int("files", stats.TotalFiles),
		logging.Int("groups", len(groups)),
	)

	checker, err := heuristic.NewChecker(r.cfg.Heuristics.EpisodeExceptions, r.logger)
	if err != nil {
		return summary, err
	}
	verifier := hashtier.NewVerifier(r.logger)
	classifier := classify.New(checker, verifier, opts.Mode, opts.Resolver, r.logger)

	var bar *progressbar.ProgressBar
	if opts.ShowProgress && len(groups) > 0 {
		bar = progressbar.Default(int64(len(groups)), "classifying")
	}

	for _, group := range groups {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		outcome := classifier.Classify(ctx, group)
		summary.Groups = append(summary.Groups, GroupResult{Group: group, Outcome: outcome})
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}

	// Classification for every group settles before the first merge.
	if opts.Hardlink {
		if err := r.mergeAccepted(summary); err != nil {
			return summary, err
		}
	} else {
		r.reportAccepted(summary)
	}

	for i := range summary.Groups {
		result := &summary.Groups[i]
		if result.Outcome.Accepted {
			summary.SavedBytes += result.Group.Size * int64(len(result.Group.Members)-1)
		}
	}

	return summary, nil
}

// mergeAccepted collapses every accepted group. A merge failure is fatal
// and propagates immediately; a partially merged tree must be inspected,
// not papered over.
func (r *Runner) mergeAccepted(summary *Summary) error {
	executor := merge.NewExecutor(r.logger)
	for i := range summary.Groups {
		result := &summary.Groups[i]
		if !result.Outcome.Accepted {
			continue
		}
		if err := executor.Merge(result.Group); err != nil {
			return fmt.Errorf("merge group of %d bytes: %w", result.Group.Size, err)
		}
		result.Merged = true
	}
	return nil
}

func (r *Runner) reportAccepted(summary *Summary) {
	for _, result := range summary.Groups {
		if !result.Outcome.Accepted {
			continue
		}
		r.logger.Info("likely duplicates")
		for _, member := range result.Group.Members {
			r.logger.Info("\t" + member.Path)
		}
	}
}

func firstFailure(results []preflight.Result) string {
	for _, result := range results {
		if !result.Passed {
			return result.Name + ": " + result.Detail
		}
	}
	return "unknown"
}
