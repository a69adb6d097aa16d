package heuristic

import (
	"fmt"
	"log/slog"
	"regexp"

	"relink/internal/logging"
	"relink/internal/sizegroup"
)

// Checker flags size groups whose filename signals disagree.
type Checker struct {
	exceptions []*regexp.Regexp
	logger     *slog.Logger
}

// NewChecker compiles the episode exception patterns. Patterns are matched
// case-insensitively against filename stems.
func NewChecker(patterns []string, logger *slog.Logger) (*Checker, error) {
	exceptions := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		re, err := regexp.Compile("(?i)" + pattern)
		if err != nil {
			return nil, fmt.Errorf("episode exception %q: %w", pattern, err)
		}
		exceptions = append(exceptions, re)
	}
	return &Checker{
		exceptions: exceptions,
		logger:     logging.NewComponentLogger(logger, "heuristic"),
	}, nil
}

// FlagsDanger reports whether the group needs hash verification beyond the
// cheap first tier before a merge can be trusted.
//
// Danger is raised when any pair of neighboring members disagrees on its
// identity token, and always for groups of more than two members, where
// pairwise token agreement alone cannot resolve the multi-way overlap.
// Episode-token mismatches are forgiven when a member matches a configured
// exception pattern; those titles are known to mislabel episodes.
func (c *Checker) FlagsDanger(group sizegroup.Group) bool {
	danger := false

	if len(group.Members) > 2 {
		c.logger.Warn("multiple files share this size",
			logging.Int64(logging.FieldSize, group.Size),
			logging.Int("members", len(group.Members)),
		)
		danger = true
	}

	tokens := make([]Token, len(group.Members))
	for i, member := range group.Members {
		tokens[i] = Extract(member.Path)
	}

	for i := 1; i < len(tokens); i++ {
		prev, curr := tokens[i-1], tokens[i]
		if prev == curr {
			continue
		}
		if prev.Kind == KindEpisode && curr.Kind == KindEpisode && c.anyException(group) {
			c.logger.Debug("episode mismatch forgiven by exception list",
				logging.String("prev", prev.Value),
				logging.String("curr", curr.Value),
			)
			continue
		}
		if prev.Kind == curr.Kind {
			c.logger.Warn(fmt.Sprintf("differing %ss guessed", prev.Kind),
				logging.String("prev", prev.Value),
				logging.String("curr", curr.Value),
			)
		} else {
			c.logger.Warn("differing token kinds guessed",
				logging.String("prev", prev.Kind.String()),
				logging.String("curr", curr.Kind.String()),
			)
		}
		danger = true
	}

	return danger
}

// anyException reports whether any member's filename matches an exception
// pattern. One match forgives episode mismatches for the whole group.
func (c *Checker) anyException(group sizegroup.Group) bool {
	for _, member := range group.Members {
		stem := fileStem(member.Path)
		for _, re := range c.exceptions {
			if re.MatchString(stem) {
				return true
			}
		}
	}
	return false
}
