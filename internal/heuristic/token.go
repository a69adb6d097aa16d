package heuristic

import (
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind identifies which signal a token was derived from.
type Kind int

const (
	// KindAirDate is a YYYYMMDD date embedded in the filename.
	KindAirDate Kind = iota
	// KindEpisode is an SxxExx episode code.
	KindEpisode
	// KindTitle is the normalized leading title text, the fallback signal.
	KindTitle
)

func (k Kind) String() string {
	switch k {
	case KindAirDate:
		return "airdate"
	case KindEpisode:
		return "episode"
	case KindTitle:
		return "title"
	default:
		return "unknown"
	}
}

// Token is a filename-derived identity signal.
type Token struct {
	Kind  Kind
	Value string
}

var (
	airDatePattern = regexp.MustCompile(`(\d{4})[.-](\d{2})[.-](\d{2})`)
	episodePattern = regexp.MustCompile(`(?i)s\d\de\d\d`)

	// Scene release marker that survives separator replacement and pollutes
	// title comparison.
	releaseMarkerPattern = regexp.MustCompile(`(?i)rarbg`)

	titleReplacer = strings.NewReplacer(".", " ", "-", " ", ",", " ", "!", " ")
	doubledSpaces = regexp.MustCompile(`  +`)
	lowercaser    = cases.Lower(language.Und)
)

// Extract derives the identity token for a filename. It inspects the name
// only, never the contents, and always produces a token: air date wins over
// episode code, episode code wins over the normalized title fallback.
func Extract(path string) Token {
	stem := fileStem(path)

	if m := airDatePattern.FindStringSubmatch(stem); m != nil {
		return Token{Kind: KindAirDate, Value: m[1] + m[2] + m[3]}
	}
	if m := episodePattern.FindString(stem); m != "" {
		return Token{Kind: KindEpisode, Value: strings.ToUpper(m)}
	}
	return Token{Kind: KindTitle, Value: normalizeTitle(stem)}
}

// normalizeTitle reduces a filename stem to comparable title text. The step
// order matters for stems with numerals inside titles and is deliberate:
// separators become spaces before any truncation happens.
func normalizeTitle(stem string) string {
	title := titleReplacer.Replace(stem)
	title = releaseMarkerPattern.ReplaceAllString(title, "")
	title = doubledSpaces.ReplaceAllString(title, " ")
	if idx := strings.Index(title, " ("); idx >= 0 {
		title = title[:idx]
	}
	if idx := strings.IndexFunc(title, func(r rune) bool { return r >= '0' && r <= '9' }); idx >= 0 {
		title = title[:idx]
	}
	return strings.TrimSpace(lowercaser.String(title))
}

func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
