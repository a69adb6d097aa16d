package classify

import (
	"context"
	"fmt"

	"relink/internal/sizegroup"
)

// Mode selects how uncertain groups are resolved.
type Mode int

const (
	// ModeSkip leaves uncertain groups alone.
	ModeSkip Mode = iota
	// ModeAuto escalates uncertain groups to the 10MB tier automatically.
	ModeAuto
	// ModeInteractive asks a Resolver per uncertain group.
	ModeInteractive
)

// ParseMode converts a config mode name into a Mode.
func ParseMode(value string) (Mode, error) {
	switch value {
	case "skip", "":
		return ModeSkip, nil
	case "auto":
		return ModeAuto, nil
	case "interactive":
		return ModeInteractive, nil
	default:
		return ModeSkip, fmt.Errorf("unknown escalation mode %q", value)
	}
}

// Decision is an operator's answer for one uncertain group.
type Decision int

const (
	// DecisionSkip leaves the group alone.
	DecisionSkip Decision = iota
	// DecisionHash10MB settles the group at the 10MB prefix tier.
	DecisionHash10MB
	// DecisionHash100MB settles the group at the 100MB prefix tier.
	DecisionHash100MB
	// DecisionHashFull settles the group by hashing the whole files.
	DecisionHashFull
	// DecisionAccept accepts the group without further hashing.
	DecisionAccept
)

// Resolver supplies decisions for uncertain groups. Implementations must
// treat an unresolvable prompt (EOF, cancelled context) as DecisionSkip.
type Resolver interface {
	Resolve(ctx context.Context, group sizegroup.Group) Decision
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(ctx context.Context, group sizegroup.Group) Decision

// Resolve implements Resolver.
func (f ResolverFunc) Resolve(ctx context.Context, group sizegroup.Group) Decision {
	return f(ctx, group)
}
