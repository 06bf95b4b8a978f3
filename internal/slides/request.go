package slides

import (
	"fmt"
	"regexp"
	"strings"

	"worshipslides/internal/platform/slidegen"
	"worshipslides/internal/refdata"
)

const presentationExt = ".pptx"

// Request is an outbound generation payload.
type Request interface {
	Endpoint() string
	Filename() string
}

type HymnPayload struct {
	Number        string         `json:"number" validate:"required"`
	Title         string         `json:"title"`
	Hymnal        string         `json:"hymnal" validate:"required"`
	Lyrics        refdata.Lyrics `json:"lyrics" validate:"required,min=1"`
	Author        string         `json:"author"`
	Composer      string         `json:"composer"`
	TuneName      string         `json:"tune_name"`
	TextCopyright string         `json:"text_copyright"`
	TuneCopyright string         `json:"tune_copyright"`
}

type HymnRequest struct {
	Hymn            HymnPayload `json:"hymn"`
	BackgroundImage string      `json:"background_image" validate:"required,datauri"`
}

func (r *HymnRequest) Endpoint() string { return slidegen.PathHymn }

// Filename is hymn_<number>_<title>.pptx with the title reduced to letters,
// digits and underscores.
func (r *HymnRequest) Filename() string {
	name := "hymn_" + sanitizeName(r.Hymn.Number)
	if title := sanitizeName(r.Hymn.Title); title != "" {
		name += "_" + title
	}
	return name + presentationExt
}

type CallToWorshipRequest struct {
	Pairs           []Pair `json:"pairs" validate:"required,min=1,dive"`
	BackgroundImage string `json:"background_image" validate:"required,datauri"`
}

func (r *CallToWorshipRequest) Endpoint() string { return slidegen.PathCallToWorship }
func (r *CallToWorshipRequest) Filename() string { return "call_to_worship" + presentationExt }

type ScriptureReference struct {
	Book    string `json:"book" validate:"required"`
	Chapter int    `json:"chapter" validate:"gte=1"`
}

type ScriptureVerse struct {
	Verse int    `json:"verse" validate:"gte=1"`
	Text  string `json:"text"`
}

type ScriptureRequest struct {
	Reference       ScriptureReference `json:"reference"`
	Verses          []ScriptureVerse   `json:"verses" validate:"required,min=1,dive"`
	VersesAlt       []ScriptureVerse   `json:"verses_alt,omitempty" validate:"omitempty,dive"`
	BackgroundImage string             `json:"background_image" validate:"required,datauri"`
}

func (r *ScriptureRequest) Endpoint() string { return slidegen.PathScripture }

func (r *ScriptureRequest) Filename() string {
	return fmt.Sprintf("scripture_%s_%d%s", sanitizeName(r.Reference.Book), r.Reference.Chapter, presentationExt)
}

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9]+`)

const maxNamePart = 60

func sanitizeName(s string) string {
	s = strings.Trim(unsafeName.ReplaceAllString(s, "_"), "_")
	if len(s) > maxNamePart {
		s = strings.TrimRight(s[:maxNamePart], "_")
	}
	return s
}
