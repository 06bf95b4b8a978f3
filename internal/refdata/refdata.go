package refdata

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrNotFound is returned by detail lookups when the file or entry does not exist.
	ErrNotFound = errors.New("reference data not found")
	// ErrListingFailed wraps unexpected file-system errors hit while listing.
	ErrListingFailed = errors.New("listing failed")
	// ErrMalformedData marks a reference file that exists but cannot be parsed.
	ErrMalformedData = errors.New("malformed reference data")
)

// Hymn is one hymn file from the hymns directory.
type Hymn struct {
	Number        string
	Title         string
	Lyrics        Lyrics
	Author        string
	Composer      string
	TuneName      string
	TextCopyright string
	TuneCopyright string
}

// HasText reports whether the hymn carries any lyric text to put on slides.
func (h Hymn) HasText() bool {
	return h.Lyrics.HasText()
}

// hymnDocument accepts both snake_case and camelCase keys found in hymn files.
type hymnDocument struct {
	Number           json.RawMessage `json:"number"`
	Title            string          `json:"title"`
	Lyrics           Lyrics          `json:"lyrics"`
	Author           string          `json:"author"`
	Composer         string          `json:"composer"`
	TuneName         string          `json:"tune_name"`
	TuneNameAlt      string          `json:"tuneName"`
	TextCopyright    string          `json:"text_copyright"`
	TextCopyrightAlt string          `json:"textCopyright"`
	TuneCopyright    string          `json:"tune_copyright"`
	TuneCopyrightAlt string          `json:"tuneCopyright"`
}

type hymnJSON struct {
	Number        string `json:"number"`
	Title         string `json:"title"`
	Lyrics        Lyrics `json:"lyrics"`
	Author        string `json:"author,omitempty"`
	Composer      string `json:"composer,omitempty"`
	TuneName      string `json:"tune_name,omitempty"`
	TextCopyright string `json:"text_copyright,omitempty"`
	TuneCopyright string `json:"tune_copyright,omitempty"`
	HasText       bool   `json:"has_text"`
}

func (h Hymn) MarshalJSON() ([]byte, error) {
	return json.Marshal(hymnJSON{
		Number:        h.Number,
		Title:         h.Title,
		Lyrics:        h.Lyrics,
		Author:        h.Author,
		Composer:      h.Composer,
		TuneName:      h.TuneName,
		TextCopyright: h.TextCopyright,
		TuneCopyright: h.TuneCopyright,
		HasText:       h.HasText(),
	})
}

func (h *Hymn) UnmarshalJSON(b []byte) error {
	var doc hymnDocument
	if err := json.Unmarshal(b, &doc); err != nil {
		return err
	}
	*h = Hymn{
		Number:        rawScalar(doc.Number),
		Title:         doc.Title,
		Lyrics:        doc.Lyrics,
		Author:        doc.Author,
		Composer:      doc.Composer,
		TuneName:      firstNonEmpty(doc.TuneName, doc.TuneNameAlt),
		TextCopyright: firstNonEmpty(doc.TextCopyright, doc.TextCopyrightAlt),
		TuneCopyright: firstNonEmpty(doc.TuneCopyright, doc.TuneCopyrightAlt),
	}
	return nil
}

// rawScalar renders a JSON string or number as plain text; anything else is "".
func rawScalar(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Book is a Bible book present in a version directory.
type Book struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// VerseNumber decodes verse numbers written either as JSON numbers or numeric strings.
type VerseNumber int

func (v *VerseNumber) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*v = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("verse number %q: %w", s, err)
	}
	*v = VerseNumber(n)
	return nil
}

// Verse is one verse entry of a chapter file.
type Verse struct {
	Number VerseNumber `json:"verse"`
	Text   string      `json:"text,omitempty"`
}

// Chapter is the decoded content of <BOOK>_chapter_<n>.json.
type Chapter struct {
	Version  string  `json:"version"`
	Book     string  `json:"book"`
	BookName string  `json:"book_name"`
	Number   int     `json:"chapter"`
	Verses   []Verse `json:"verses"`
}

type chapterDocument struct {
	BookName string  `json:"book_name"`
	Verses   []Verse `json:"verses"`
}

// Background is one entry of backgrounds.json.
type Background struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Path        string `json:"path"`
	Type        string `json:"type"`
}
