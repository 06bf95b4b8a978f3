package refdata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// LyricPage is one named block of hymn text (a verse or refrain).
type LyricPage struct {
	PageName string `json:"page_name,omitempty"`
	Text     string `json:"text"`
}

// Lyrics holds hymn text as pages. It decodes from a plain string, a list of
// strings or a list of {page_name, text} objects.
type Lyrics []LyricPage

func (l *Lyrics) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*l = nil
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if strings.TrimSpace(s) == "" {
			*l = nil
			return nil
		}
		*l = Lyrics{{Text: s}}
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(b, &items); err != nil {
		return fmt.Errorf("lyrics: %w", err)
	}
	pages := make(Lyrics, 0, len(items))
	for i, item := range items {
		item = bytes.TrimSpace(item)
		if len(item) > 0 && item[0] == '"' {
			var s string
			if err := json.Unmarshal(item, &s); err != nil {
				return err
			}
			pages = append(pages, LyricPage{PageName: fmt.Sprintf("Verse %d", i+1), Text: s})
			continue
		}
		var page LyricPage
		if err := json.Unmarshal(item, &page); err != nil {
			return fmt.Errorf("lyrics page %d: %w", i+1, err)
		}
		pages = append(pages, page)
	}
	*l = pages
	return nil
}

// HasText reports whether any page contains non-blank text.
func (l Lyrics) HasText() bool {
	for _, p := range l {
		if strings.TrimSpace(p.Text) != "" {
			return true
		}
	}
	return false
}
