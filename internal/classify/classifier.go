package classify

import (
	"context"
	"log/slog"

	"relink/internal/hashtier"
	"relink/internal/heuristic"
	"relink/internal/logging"
	"relink/internal/sizegroup"
)

// Classification is the terminal duplicate confidence for a size group.
type Classification int

const (
	// No means the group is conclusively not a duplicate set.
	No Classification = iota
	// Maybe means heuristics disagreed but the cheap tier matched; the
	// escalation mode decides whether the group is accepted.
	Maybe
	// VeryLikely means heuristics and the cheap tier both agree.
	VeryLikely
)

func (c Classification) String() string {
	switch c {
	case No:
		return "no"
	case Maybe:
		return "maybe"
	case VeryLikely:
		return "very likely"
	default:
		return "unknown"
	}
}

// Outcome is the classification result for one group.
type Outcome struct {
	Class  Classification
	Danger bool
	// Accepted marks the group safe to merge: either VeryLikely, or an
	// uncertain group accepted through escalation.
	Accepted bool
	// Tier is the deepest hash tier evaluated for the group.
	Tier hashtier.Tier
}

// Classifier runs the escalation ladder over size groups.
type Classifier struct {
	checker  *heuristic.Checker
	verifier *hashtier.Verifier
	mode     Mode
	resolver Resolver
	logger   *slog.Logger
}

// New constructs a classifier. The resolver is only consulted in
// interactive mode; a nil resolver downgrades interactive escalation to
// skip.
func New(checker *heuristic.Checker, verifier *hashtier.Verifier, mode Mode, resolver Resolver, logger *slog.Logger) *Classifier {
	return &Classifier{
		checker:  checker,
		verifier: verifier,
		mode:     mode,
		resolver: resolver,
		logger:   logging.NewComponentLogger(logger, "classify"),
	}
}

// Classify produces the terminal outcome for a group. The 1MB tier always
// runs; deeper tiers run only as the mode demands. The context covers the
// interactive resolution path so an aborted prompt resolves to skip.
func (c *Classifier) Classify(ctx context.Context, group sizegroup.Group) Outcome {
	danger := c.checker.FlagsDanger(group)

	if !c.verifier.PairwiseMatch(group, hashtier.Prefix1MB) {
		// Conclusive regardless of filename agreement; a heuristic-only
		// success path is not allowed.
		c.logger.Info("content mismatch at cheap tier",
			logging.Int64(logging.FieldSize, group.Size),
		)
		return Outcome{Class: No, Danger: danger, Tier: hashtier.Prefix1MB}
	}

	if !danger {
		return Outcome{Class: VeryLikely, Danger: false, Accepted: true, Tier: hashtier.Prefix1MB}
	}

	return c.resolveUncertain(ctx, group)
}

func (c *Classifier) resolveUncertain(ctx context.Context, group sizegroup.Group) Outcome {
	outcome := Outcome{Class: Maybe, Danger: true, Tier: hashtier.Prefix1MB}

	switch c.mode {
	case ModeAuto:
		return c.escalate(group, hashtier.Prefix10MB)
	case ModeInteractive:
		if c.resolver == nil {
			break
		}
		decision := c.resolver.Resolve(ctx, group)
		switch decision {
		case DecisionAccept:
			outcome.Accepted = true
			c.logger.Warn("group force-accepted without deeper hashing",
				logging.Int64(logging.FieldSize, group.Size),
			)
		case DecisionHash10MB:
			return c.escalate(group, hashtier.Prefix10MB)
		case DecisionHash100MB:
			return c.escalate(group, hashtier.Prefix100MB)
		case DecisionHashFull:
			return c.escalate(group, hashtier.Full)
		default:
			// Skip, including an aborted prompt.
		}
	}

	if !outcome.Accepted {
		c.logger.Info("leaving uncertain group alone",
			logging.Int64(logging.FieldSize, group.Size),
			logging.Int("members", len(group.Members)),
		)
	}
	return outcome
}

// escalate settles an uncertain group at a deeper tier. A mismatch there is
// conclusive and short-circuits any further escalation.
func (c *Classifier) escalate(group sizegroup.Group, tier hashtier.Tier) Outcome {
	c.logger.Debug("escalating",
		logging.Int64(logging.FieldSize, group.Size),
		logging.String(logging.FieldTier, tier.String()),
	)
	if c.verifier.PairwiseMatch(group, tier) {
		return Outcome{Class: Maybe, Danger: true, Accepted: true, Tier: tier}
	}
	c.logger.Info("content mismatch at escalated tier",
		logging.Int64(logging.FieldSize, group.Size),
		logging.String(logging.FieldTier, tier.String()),
	)
	return Outcome{Class: No, Danger: true, Tier: tier}
}
