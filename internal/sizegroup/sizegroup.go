package sizegroup

import (
	"log/slog"
	"sort"

	"relink/internal/logging"
	"relink/internal/scan"
)

// Group is a set of candidate files sharing an exact byte length.
type Group struct {
	Size    int64
	Members []scan.File
}

// Stats accumulates run-level counters during grouping.
type Stats struct {
	// TotalFiles counts every file seen, singletons included.
	TotalFiles int
	// ReclaimableBytes sums the byte length of every emitted group, the
	// upper bound on space a full merge of that group would free per copy.
	ReclaimableBytes int64
}

// Build partitions files by exact size, dropping singleton groups and groups
// already collapsed onto a single inode.
func Build(files []scan.File, logger *slog.Logger) ([]Group, Stats) {
	log := logging.NewComponentLogger(logger, "sizegroup")

	bySize := make(map[int64][]scan.File)
	for _, file := range files {
		log.Debug("adding to size bucket",
			logging.Int64(logging.FieldSize, file.Size),
			logging.String(logging.FieldPath, file.Path),
			logging.Int("bucket_len", len(bySize[file.Size])),
		)
		bySize[file.Size] = append(bySize[file.Size], file)
	}

	stats := Stats{TotalFiles: len(files)}
	var groups []Group
	for size, members := range bySize {
		if len(members) < 2 {
			continue
		}
		if sharedInode(members) {
			log.Debug("members already hardlinked",
				logging.Int64(logging.FieldSize, size),
				logging.Uint64("inode", members[0].Inode),
			)
			continue
		}
		stats.ReclaimableBytes += size
		groups = append(groups, Group{Size: size, Members: members})
	}
	// Members keep discovery order; groups sort on their first member so a
	// rerun reports in a stable order.
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Members[0].Path < groups[j].Members[0].Path
	})
	return groups, stats
}

// sharedInode reports whether every member resolves to one known inode.
// Zero inodes mean the platform could not supply identity, so the group is
// kept rather than silently dropped.
func sharedInode(members []scan.File) bool {
	first := members[0]
	if first.Inode == 0 {
		return false
	}
	for _, member := range members[1:] {
		if member.Inode != first.Inode || member.Dev != first.Dev {
			return false
		}
	}
	return true
}
