package heuristic

import "testing"

func TestExtractAirDate(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/tv/Daily Show 2019.03.14 guest.mkv", "20190314"},
		{"/tv/Nightly-2021-12-01.mkv", "20211201"},
		{"/tv/Mixed.2020-07.15.mkv", "20200715"},
	}
	for _, tc := range cases {
		token := Extract(tc.path)
		if token.Kind != KindAirDate {
			t.Errorf("Extract(%q).Kind = %v, want airdate", tc.path, token.Kind)
			continue
		}
		if token.Value != tc.want {
			t.Errorf("Extract(%q) = %q, want %q", tc.path, token.Value, tc.want)
		}
	}
}

func TestExtractAirDateBeatsEpisode(t *testing.T) {
	token := Extract("/tv/Show.2019.03.14.S01E02.mkv")
	if token.Kind != KindAirDate || token.Value != "20190314" {
		t.Fatalf("got %+v, want air date 20190314", token)
	}
}

func TestExtractEpisode(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/tv/ShowA.S01E01.mkv", "S01E01"},
		{"/tv/showa.s01e01.720p.mkv", "S01E01"},
		{"/tv/Show B S10E22 final.mkv", "S10E22"},
	}
	for _, tc := range cases {
		token := Extract(tc.path)
		if token.Kind != KindEpisode {
			t.Errorf("Extract(%q).Kind = %v, want episode", tc.path, token.Kind)
			continue
		}
		if token.Value != tc.want {
			t.Errorf("Extract(%q) = %q, want %q", tc.path, token.Value, tc.want)
		}
	}
}

func TestExtractTitle(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/movies/Some.Movie.mkv", "some movie"},
		{"/movies/Some Movie (2019).mkv", "some movie"},
		{"/movies/Movie.2019.mkv", "movie"},
		{"/movies/Title-With-Dashes.mkv", "title with dashes"},
		{"/movies/Loud!.Title,.Here.mkv", "loud title here"},
		{"/movies/Some.Movie.RARBG.mkv", "some movie"},
	}
	for _, tc := range cases {
		token := Extract(tc.path)
		if token.Kind != KindTitle {
			t.Errorf("Extract(%q).Kind = %v, want title", tc.path, token.Kind)
			continue
		}
		if token.Value != tc.want {
			t.Errorf("Extract(%q) = %q, want %q", tc.path, token.Value, tc.want)
		}
	}
}

func TestExtractTitleTruncatesAtFirstDigit(t *testing.T) {
	// Numerals inside titles clip the token; both variants of a numbered
	// sequel therefore compare equal, which is the conservative direction.
	a := Extract("/movies/Movie 2 The Sequel.mkv")
	b := Extract("/movies/Movie 3 The Threequel.mkv")
	if a.Value != "movie" || b.Value != "movie" {
		t.Fatalf("got %q and %q, want both clipped to \"movie\"", a.Value, b.Value)
	}
}

func TestExtractEmptyTitleIsValid(t *testing.T) {
	token := Extract("/movies/2001.mkv")
	if token.Kind != KindTitle || token.Value != "" {
		t.Fatalf("got %+v, want empty title token", token)
	}
}

func TestExtractNeverMatchesExtension(t *testing.T) {
	// The extension is stripped before any pattern runs.
	token := Extract("/tv/plain title.s01e99")
	if token.Kind != KindTitle {
		t.Fatalf("pattern matched inside extension: %+v", token)
	}
}
