package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"relink/internal/classify"
	"relink/internal/sizegroup"
)

// Terminal asks questions on out and reads answers from in.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

// New constructs a terminal prompt over the given streams.
func New(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

// NewStdio constructs a terminal prompt over stdin/stdout.
func NewStdio() *Terminal {
	return New(os.Stdin, os.Stdout)
}

// IsInteractive reports whether stdin is a terminal an operator can answer on.
func IsInteractive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Confirm asks a yes/no question, showing the default answer. Anything but
// an explicit yes or no, including EOF, resolves to the default.
func (t *Terminal) Confirm(question string, def bool) bool {
	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}
	fmt.Fprintf(t.out, "%s %s ", question, hint)

	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(t.out)
		return def
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	default:
		return def
	}
}

// Resolve presents an uncertain group and returns the operator's decision.
// It implements classify.Resolver.
func (t *Terminal) Resolve(ctx context.Context, group sizegroup.Group) classify.Decision {
	fmt.Fprintf(t.out, "\nUncertain group (%d bytes each):\n", group.Size)
	for _, member := range group.Members {
		fmt.Fprintf(t.out, "\t%s\n", member.Path)
	}
	fmt.Fprintln(t.out, "  [s] skip  [1] hash 10MB  [2] hash 100MB  [f] hash full  [a] accept as duplicates")

	for {
		if ctx.Err() != nil {
			return classify.DecisionSkip
		}
		fmt.Fprint(t.out, "choice [s]: ")

		line, err := t.in.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(t.out)
			return classify.DecisionSkip
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "", "s", "skip":
			return classify.DecisionSkip
		case "1", "10", "10mb":
			return classify.DecisionHash10MB
		case "2", "100", "100mb":
			return classify.DecisionHash100MB
		case "f", "full":
			return classify.DecisionHashFull
		case "a", "accept":
			return classify.DecisionAccept
		default:
			fmt.Fprintln(t.out, "unrecognized choice")
		}
	}
}
