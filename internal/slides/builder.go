package slides

import (
	"context"
	"strings"

	"worshipslides/internal/refdata"
)

// DefaultHymnal is sent when no hymnal is chosen.
const DefaultHymnal = "UMH"

// Builder assembles validated generation requests. Every precondition is
// checked before the background is resolved, so rejected input touches
// neither the asset store nor the network.
type Builder struct {
	resolver      *Resolver
	defaultHymnal string
}

func NewBuilder(resolver *Resolver, defaultHymnal string) *Builder {
	if defaultHymnal == "" {
		defaultHymnal = DefaultHymnal
	}
	return &Builder{resolver: resolver, defaultHymnal: defaultHymnal}
}

func (b *Builder) BuildHymn(ctx context.Context, hymn *refdata.Hymn, hymnal string, bg Background) (*HymnRequest, error) {
	if hymn == nil {
		return nil, invalid("number", "Select a hymn first")
	}
	if !hymn.HasText() {
		return nil, invalid("hymn.lyrics", "This hymn has no lyrics available for slides")
	}
	if hymnal = strings.TrimSpace(hymnal); hymnal == "" {
		hymnal = b.defaultHymnal
	}

	image, err := b.resolver.Resolve(ctx, bg)
	if err != nil {
		return nil, err
	}
	req := &HymnRequest{
		Hymn: HymnPayload{
			Number:        hymn.Number,
			Title:         hymn.Title,
			Hymnal:        hymnal,
			Lyrics:        hymn.Lyrics,
			Author:        hymn.Author,
			Composer:      hymn.Composer,
			TuneName:      hymn.TuneName,
			TextCopyright: hymn.TextCopyright,
			TuneCopyright: hymn.TuneCopyright,
		},
		BackgroundImage: image,
	}
	if err := ValidateStruct(req); err != nil {
		return nil, err
	}
	return req, nil
}

func (b *Builder) BuildCallToWorship(ctx context.Context, text string, bg Background) (*CallToWorshipRequest, error) {
	pairs, err := ParsePairs(text)
	if err != nil {
		return nil, err
	}

	image, err := b.resolver.Resolve(ctx, bg)
	if err != nil {
		return nil, err
	}
	req := &CallToWorshipRequest{Pairs: pairs, BackgroundImage: image}
	if err := ValidateStruct(req); err != nil {
		return nil, err
	}
	return req, nil
}

// ScriptureSelection is a verse range of one chapter, optionally paired with
// the same chapter in an alternate version. Zero bounds leave the range open.
type ScriptureSelection struct {
	Chapter    *refdata.Chapter
	Alt        *refdata.Chapter
	VerseStart int
	VerseEnd   int
}

func (s ScriptureSelection) contains(n int) bool {
	if s.VerseStart > 0 && n < s.VerseStart {
		return false
	}
	if s.VerseEnd > 0 && n > s.VerseEnd {
		return false
	}
	return true
}

func (s ScriptureSelection) verses(ch *refdata.Chapter) []ScriptureVerse {
	if ch == nil {
		return nil
	}
	var out []ScriptureVerse
	for _, v := range ch.Verses {
		n := int(v.Number)
		if !s.contains(n) || strings.TrimSpace(v.Text) == "" {
			continue
		}
		out = append(out, ScriptureVerse{Verse: n, Text: strings.TrimSpace(v.Text)})
	}
	return out
}

func (b *Builder) BuildScripture(ctx context.Context, sel ScriptureSelection, bg Background) (*ScriptureRequest, error) {
	if sel.Chapter == nil {
		return nil, invalid("chapter", "Select a book and chapter first")
	}
	if sel.VerseStart > 0 && sel.VerseEnd > 0 && sel.VerseEnd < sel.VerseStart {
		return nil, invalid("verse_end", "verse_end must not be before verse_start")
	}
	verses := sel.verses(sel.Chapter)
	if len(verses) == 0 {
		return nil, invalid("verses", "No verse text in the selected range")
	}

	image, err := b.resolver.Resolve(ctx, bg)
	if err != nil {
		return nil, err
	}
	req := &ScriptureRequest{
		Reference: ScriptureReference{
			Book:    sel.Chapter.Book,
			Chapter: sel.Chapter.Number,
		},
		Verses:          verses,
		VersesAlt:       sel.verses(sel.Alt),
		BackgroundImage: image,
	}
	if err := ValidateStruct(req); err != nil {
		return nil, err
	}
	return req, nil
}
