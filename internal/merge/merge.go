package merge

import (
	"fmt"
	"log/slog"
	"os"

	"relink/internal/logging"
	"relink/internal/sizegroup"
)

// Executor performs the destructive hardlink collapse for accepted groups.
type Executor struct {
	logger *slog.Logger
}

// NewExecutor constructs a merge executor.
func NewExecutor(logger *slog.Logger) *Executor {
	return &Executor{logger: logging.NewComponentLogger(logger, "merge")}
}

// Merge replaces every member after the first with a hardlink to the first.
// Members already sharing the survivor's inode are left untouched, which
// makes a rerun over a partially merged group safe. Any failure aborts the
// merge immediately.
func (e *Executor) Merge(group sizegroup.Group) error {
	if len(group.Members) < 2 {
		return nil
	}
	if err := sameFilesystem(group); err != nil {
		return err
	}

	survivor := group.Members[0]
	for _, member := range group.Members[1:] {
		if member.Inode != 0 && member.Inode == survivor.Inode && member.Dev == survivor.Dev {
			e.logger.Debug("already linked to survivor",
				logging.String(logging.FieldPath, member.Path),
			)
			continue
		}

		e.logger.Info("unlink", logging.String(logging.FieldPath, member.Path))
		if err := os.Remove(member.Path); err != nil {
			return fmt.Errorf("unlink %s: %w", member.Path, err)
		}

		e.logger.Info("link to survivor",
			logging.String(logging.FieldPath, member.Path),
			logging.String("survivor", survivor.Path),
		)
		if err := os.Link(survivor.Path, member.Path); err != nil {
			// The original is already gone. Nothing else may run until an
			// operator sees this.
			e.logger.Error("original removed but hardlink failed",
				logging.String(logging.FieldPath, member.Path),
				logging.String("survivor", survivor.Path),
				logging.Error(err),
			)
			return fmt.Errorf("link %s to %s after unlink (original removed, content still at survivor): %w",
				member.Path, survivor.Path, err)
		}
	}
	return nil
}

// sameFilesystem refuses groups spanning devices; hardlinks cannot cross
// filesystems. Unknown device identity is allowed through and left for the
// link syscall to reject.
func sameFilesystem(group sizegroup.Group) error {
	first := group.Members[0]
	if first.Dev == 0 && first.Inode == 0 {
		return nil
	}
	for _, member := range group.Members[1:] {
		if member.Dev != first.Dev {
			return fmt.Errorf("refusing merge across filesystems: %s (dev %d) and %s (dev %d)",
				first.Path, first.Dev, member.Path, member.Dev)
		}
	}
	return nil
}
