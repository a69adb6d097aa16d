package heuristic

import (
	"testing"

	"relink/internal/logging"
	"relink/internal/scan"
	"relink/internal/sizegroup"
)

func newTestChecker(t *testing.T, patterns ...string) *Checker {
	t.Helper()
	checker, err := NewChecker(patterns, logging.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	return checker
}

func group(paths ...string) sizegroup.Group {
	members := make([]scan.File, len(paths))
	for i, path := range paths {
		members[i] = scan.File{Path: path, Size: 1000, Inode: uint64(i + 1)}
	}
	return sizegroup.Group{Size: 1000, Members: members}
}

func TestFlagsDangerMatchingEpisodes(t *testing.T) {
	checker := newTestChecker(t)
	g := group("/a/ShowA.S01E01.mkv", "/b/ShowA.S01E01.720p.mkv")
	if checker.FlagsDanger(g) {
		t.Fatal("matching episode tokens should not flag danger")
	}
}

func TestFlagsDangerMismatchedEpisodes(t *testing.T) {
	checker := newTestChecker(t)
	g := group("/a/ShowA.S01E01.mkv", "/a/ShowA.S01E02.mkv")
	if !checker.FlagsDanger(g) {
		t.Fatal("mismatched episode tokens must flag danger")
	}
}

func TestFlagsDangerEpisodeExceptionForgiven(t *testing.T) {
	checker := newTestChecker(t, "paw.patrol", "bar.rescue")
	g := group("/kids/Paw.Patrol.S01E01.mkv", "/kids/Paw.Patrol.S01E05.mkv")
	if checker.FlagsDanger(g) {
		t.Fatal("exception-listed titles must not flag danger on episode mismatch")
	}
}

func TestFlagsDangerExceptionDoesNotCoverTitles(t *testing.T) {
	checker := newTestChecker(t, "paw.patrol")
	g := group("/a/Paw Patrol Movie.mkv", "/a/Entirely Other Film.mkv")
	if !checker.FlagsDanger(g) {
		t.Fatal("exception list only forgives episode tokens, not titles")
	}
}

func TestFlagsDangerMismatchedTitles(t *testing.T) {
	checker := newTestChecker(t)
	g := group("/a/Movie One.mkv", "/a/Movie Two.mkv")
	if !checker.FlagsDanger(g) {
		t.Fatal("mismatched titles must flag danger")
	}
}

func TestFlagsDangerMatchingTitlesDifferentTags(t *testing.T) {
	checker := newTestChecker(t)
	g := group("/a/Some Movie (2019).mkv", "/b/Some.Movie.mkv")
	if checker.FlagsDanger(g) {
		t.Fatal("normalization should make these titles equal")
	}
}

func TestFlagsDangerMixedKinds(t *testing.T) {
	checker := newTestChecker(t)
	g := group("/a/ShowA.S01E01.mkv", "/a/Unrelated Capture.mkv")
	if !checker.FlagsDanger(g) {
		t.Fatal("differing token kinds must flag danger")
	}
}

func TestFlagsDangerLargeGroupAlwaysFlagged(t *testing.T) {
	checker := newTestChecker(t)
	g := group("/a/ShowA.S01E01.mkv", "/b/ShowA.S01E01.mkv", "/c/ShowA.S01E01.mkv")
	if !checker.FlagsDanger(g) {
		t.Fatal("groups of more than two members always flag danger")
	}
}

func TestNewCheckerRejectsBadPattern(t *testing.T) {
	if _, err := NewChecker([]string{"(unclosed"}, logging.NewNop()); err == nil {
		t.Fatal("expected compile error")
	}
}
