package slides

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worshipslides/internal/refdata"
)

var defaultBytes = []byte("default-background")

func amazingGrace() *refdata.Hymn {
	return &refdata.Hymn{
		Number:   "378",
		Title:    "Amazing Grace! How Sweet the Sound",
		Lyrics:   refdata.Lyrics{{PageName: "Verse 1", Text: "Amazing grace, how sweet the sound"}},
		Author:   "John Newton",
		TuneName: "NEW BRITAIN",
	}
}

func newBuilderWithDefault(t *testing.T) (*Builder, *MockReferenceSource) {
	ctrl := gomock.NewController(t)
	src := NewMockReferenceSource(ctrl)
	return NewBuilder(NewResolver(src, defaultAsset), ""), src
}

func decodedBackground(t *testing.T, uri string) []byte {
	t.Helper()
	data, _, err := DecodeDataURI(uri)
	require.NoError(t, err)
	return data
}

func TestBuilder_BuildHymn(t *testing.T) {
	ctx := context.Background()

	t.Run("default background and hymnal", func(t *testing.T) {
		b, src := newBuilderWithDefault(t)
		src.EXPECT().ReadAsset(gomock.Any(), defaultAsset).Return(defaultBytes, nil)

		req, err := b.BuildHymn(ctx, amazingGrace(), "  ", Default{})
		require.NoError(t, err)

		want := HymnPayload{
			Number:   "378",
			Title:    "Amazing Grace! How Sweet the Sound",
			Hymnal:   DefaultHymnal,
			Lyrics:   refdata.Lyrics{{PageName: "Verse 1", Text: "Amazing grace, how sweet the sound"}},
			Author:   "John Newton",
			TuneName: "NEW BRITAIN",
		}
		if diff := cmp.Diff(want, req.Hymn); diff != "" {
			t.Errorf("hymn payload mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, defaultBytes, decodedBackground(t, req.BackgroundImage))
		assert.Equal(t, "hymn_378_Amazing_Grace_How_Sweet_the_Sound.pptx", req.Filename())
	})

	t.Run("no text blocks before any I/O", func(t *testing.T) {
		b, _ := newBuilderWithDefault(t)
		hymn := amazingGrace()
		hymn.Lyrics = refdata.Lyrics{{PageName: "Verse 1", Text: "   "}}

		_, err := b.BuildHymn(ctx, hymn, "", Default{})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("no selection", func(t *testing.T) {
		b, _ := newBuilderWithDefault(t)

		_, err := b.BuildHymn(ctx, nil, "", Default{})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("explicit hymnal and upload", func(t *testing.T) {
		b, _ := newBuilderWithDefault(t)

		req, err := b.BuildHymn(ctx, amazingGrace(), "FWS", Upload{Data: pngHeader})
		require.NoError(t, err)
		assert.Equal(t, "FWS", req.Hymn.Hymnal)
		assert.Equal(t, pngHeader, decodedBackground(t, req.BackgroundImage))
	})
}

func TestBuilder_BuildCallToWorship(t *testing.T) {
	ctx := context.Background()

	t.Run("default background", func(t *testing.T) {
		b, src := newBuilderWithDefault(t)
		src.EXPECT().ReadAsset(gomock.Any(), defaultAsset).Return(defaultBytes, nil)

		req, err := b.BuildCallToWorship(ctx, "Leader: A\nPeople: B\nLeader: C", Default{})
		require.NoError(t, err)
		assert.Equal(t, []Pair{{Leader: "A", People: "B"}, {Leader: "C"}}, req.Pairs)
		assert.Equal(t, defaultBytes, decodedBackground(t, req.BackgroundImage))
		assert.Equal(t, "call_to_worship.pptx", req.Filename())
	})

	t.Run("empty text blocks before any I/O", func(t *testing.T) {
		b, _ := newBuilderWithDefault(t)

		_, err := b.BuildCallToWorship(ctx, "", Gallery{ID: "lent"})
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestBuilder_BuildScripture(t *testing.T) {
	ctx := context.Background()
	chapter := &refdata.Chapter{
		Version: "NRSVUE", Book: "PSA", BookName: "Psalms", Number: 23,
		Verses: []refdata.Verse{
			{Number: 1, Text: "The Lord is my shepherd"},
			{Number: 2, Text: "He makes me lie down"},
			{Number: 3, Text: " "},
			{Number: 4, Text: "Even though I walk"},
		},
	}
	alt := &refdata.Chapter{
		Version: "TMB", Book: "PSA", Number: 23,
		Verses: []refdata.Verse{{Number: 1, Text: "Ko Sihova"}, {Number: 4, Text: "Neongo"}},
	}

	t.Run("range with alternate", func(t *testing.T) {
		b, src := newBuilderWithDefault(t)
		src.EXPECT().ReadAsset(gomock.Any(), defaultAsset).Return(defaultBytes, nil)

		req, err := b.BuildScripture(ctx, ScriptureSelection{Chapter: chapter, Alt: alt, VerseStart: 2, VerseEnd: 4}, Default{})
		require.NoError(t, err)
		assert.Equal(t, ScriptureReference{Book: "PSA", Chapter: 23}, req.Reference)
		assert.Equal(t, []ScriptureVerse{{Verse: 2, Text: "He makes me lie down"}, {Verse: 4, Text: "Even though I walk"}}, req.Verses)
		assert.Equal(t, []ScriptureVerse{{Verse: 4, Text: "Neongo"}}, req.VersesAlt)
		assert.Equal(t, "scripture_PSA_23.pptx", req.Filename())
	})

	t.Run("empty range", func(t *testing.T) {
		b, _ := newBuilderWithDefault(t)

		_, err := b.BuildScripture(ctx, ScriptureSelection{Chapter: chapter, VerseStart: 10}, Default{})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("inverted range", func(t *testing.T) {
		b, _ := newBuilderWithDefault(t)

		_, err := b.BuildScripture(ctx, ScriptureSelection{Chapter: chapter, VerseStart: 4, VerseEnd: 2}, Default{})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("no chapter", func(t *testing.T) {
		b, _ := newBuilderWithDefault(t)

		_, err := b.BuildScripture(ctx, ScriptureSelection{}, Default{})
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestHymnRequest_Filename(t *testing.T) {
	tests := map[string]HymnPayload{
		"hymn_57.pptx":                   {Number: "57"},
		"hymn_57_O_For_a_Thousand.pptx":  {Number: "57", Title: "O For a  Thousand!"},
		"hymn_2_Fairest_Lord_Jesus.pptx": {Number: "2", Title: "../Fairest/Lord\\Jesus"},
	}
	for want, payload := range tests {
		req := HymnRequest{Hymn: payload}
		assert.Equal(t, want, req.Filename())
	}
}
