package hashtier

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"io"
	"log/slog"
	"os"

	"relink/internal/logging"
	"relink/internal/scan"
	"relink/internal/sizegroup"
)

// Tier selects how much of a file contributes to its digest. Higher tiers
// cost more reads and discriminate better.
type Tier int

const (
	// Prefix1MB hashes the first megabyte. Always evaluated first.
	Prefix1MB Tier = iota
	// Prefix10MB hashes the first ten megabytes.
	Prefix10MB
	// Prefix100MB hashes the first hundred megabytes.
	Prefix100MB
	// Full hashes the entire file.
	Full
)

func (t Tier) String() string {
	switch t {
	case Prefix1MB:
		return "1MB"
	case Prefix10MB:
		return "10MB"
	case Prefix100MB:
		return "100MB"
	case Full:
		return "full"
	default:
		return "unknown"
	}
}

// PrefixBytes returns how many bytes the tier reads, or a negative value
// for the full-file tier.
func (t Tier) PrefixBytes() int64 {
	switch t {
	case Prefix1MB:
		return 1 * scan.MB
	case Prefix10MB:
		return 10 * scan.MB
	case Prefix100MB:
		return 100 * scan.MB
	default:
		return -1
	}
}

// Digest is a SHA-256 content digest.
type Digest [sha256.Size]byte

// Verifier computes and compares tiered digests for size groups.
type Verifier struct {
	logger *slog.Logger
}

// NewVerifier constructs a verifier logging through the given logger.
func NewVerifier(logger *slog.Logger) *Verifier {
	return &Verifier{logger: logging.NewComponentLogger(logger, "hashtier")}
}

// Hash digests the file at path for the given tier. Files shorter than the
// tier's prefix are hashed in full; members of a size group all share one
// length, so short reads compare consistently. Unreadable or vanished files
// return an error.
func (v *Verifier) Hash(path string, tier Tier) (Digest, error) {
	file, err := os.Open(path)
	if err != nil {
		return Digest{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	hasher := sha256.New()
	var reader io.Reader = file
	if limit := tier.PrefixBytes(); limit >= 0 {
		reader = io.LimitReader(file, limit)
	}
	if _, err := io.Copy(hasher, reader); err != nil {
		return Digest{}, fmt.Errorf("read %s: %w", path, err)
	}

	var digest Digest
	hasher.Sum(digest[:0])
	return digest, nil
}

// PairwiseMatch reports whether every neighboring pair of members produces
// an equal digest at the tier. All members share one byte length, so the
// pairwise chain is transitively an all-equal check. An unreadable member
// counts as a mismatch: the pair is logged and the group fails the tier
// rather than aborting the run.
func (v *Verifier) PairwiseMatch(group sizegroup.Group, tier Tier) bool {
	var prev Digest
	for i, member := range group.Members {
		digest, err := v.Hash(member.Path, tier)
		if err != nil {
			v.logger.Warn("hashing failed, treating as mismatch",
				logging.String(logging.FieldPath, member.Path),
				logging.String(logging.FieldTier, tier.String()),
				logging.Error(err),
			)
			return false
		}
		if i > 0 && !bytes.Equal(digest[:], prev[:]) {
			v.logger.Debug("digest mismatch",
				logging.String(logging.FieldPath, member.Path),
				logging.String(logging.FieldTier, tier.String()),
			)
			return false
		}
		prev = digest
	}
	return true
}
