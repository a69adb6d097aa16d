package hashtier

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"relink/internal/logging"
	"relink/internal/scan"
	"relink/internal/sizegroup"
)

func writeBytes(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func groupOf(size int64, paths ...string) sizegroup.Group {
	members := make([]scan.File, len(paths))
	for i, path := range paths {
		members[i] = scan.File{Path: path, Size: size, Inode: uint64(i + 1)}
	}
	return sizegroup.Group{Size: size, Members: members}
}

func TestHashShortFileUsesAvailableBytes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "short.bin")
	writeBytes(t, path, []byte("well under a megabyte"))

	v := NewVerifier(logging.NewNop())
	prefix, err := v.Hash(path, Prefix1MB)
	if err != nil {
		t.Fatal(err)
	}
	full, err := v.Hash(path, Full)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(prefix[:], full[:]) {
		t.Fatal("prefix hash of a short file must equal its full hash")
	}
}

func TestHashPrefixTiersDiverge(t *testing.T) {
	dir := t.TempDir()
	// Identical first megabyte, different tail.
	head := make([]byte, scan.MB)
	a := filepath.Join(dir, "a.bin")
	b := filepath.Join(dir, "b.bin")
	writeBytes(t, a, append(append([]byte{}, head...), 'a'))
	writeBytes(t, b, append(append([]byte{}, head...), 'b'))

	v := NewVerifier(logging.NewNop())
	da, err := v.Hash(a, Prefix1MB)
	if err != nil {
		t.Fatal(err)
	}
	db, err := v.Hash(b, Prefix1MB)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(da[:], db[:]) {
		t.Fatal("1MB prefixes are identical, digests must match")
	}

	fa, err := v.Hash(a, Full)
	if err != nil {
		t.Fatal(err)
	}
	fb, err := v.Hash(b, Full)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(fa[:], fb[:]) {
		t.Fatal("full digests must differ for different tails")
	}
}

func TestHashMissingFile(t *testing.T) {
	v := NewVerifier(logging.NewNop())
	if _, err := v.Hash(filepath.Join(t.TempDir(), "gone.bin"), Prefix1MB); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestPairwiseMatch(t *testing.T) {
	dir := t.TempDir()
	content := []byte("the same content in both files")
	a := filepath.Join(dir, "a.bin")
	b := filepath.Join(dir, "b.bin")
	c := filepath.Join(dir, "c.bin")
	writeBytes(t, a, content)
	writeBytes(t, b, content)
	writeBytes(t, c, []byte("the same content in both-ish.."))

	v := NewVerifier(logging.NewNop())
	if !v.PairwiseMatch(groupOf(int64(len(content)), a, b), Prefix1MB) {
		t.Fatal("identical files must match")
	}
	if v.PairwiseMatch(groupOf(int64(len(content)), a, b, c), Prefix1MB) {
		t.Fatal("differing third member must break the chain")
	}
}

func TestPairwiseMatchUnreadableMemberIsMismatch(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.bin")
	writeBytes(t, a, []byte("data"))
	gone := filepath.Join(dir, "gone.bin")

	v := NewVerifier(logging.NewNop())
	if v.PairwiseMatch(groupOf(4, a, gone), Prefix1MB) {
		t.Fatal("unreadable member must fail the tier, not match")
	}
}

func TestTierPrefixBytes(t *testing.T) {
	cases := []struct {
		tier Tier
		want int64
	}{
		{Prefix1MB, 1 * scan.MB},
		{Prefix10MB, 10 * scan.MB},
		{Prefix100MB, 100 * scan.MB},
		{Full, -1},
	}
	for _, tc := range cases {
		if got := tc.tier.PrefixBytes(); got != tc.want {
			t.Errorf("%s.PrefixBytes() = %d, want %d", tc.tier, got, tc.want)
		}
	}
}
