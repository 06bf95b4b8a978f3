package slides

import (
	"context"

	"worshipslides/internal/refdata"
)

// ReferenceSource is the read side the HTTP handler and CLI need;
// *refdata.Service implements it.
type ReferenceSource interface {
	AssetSource
	GetHymn(ctx context.Context, number string) (*refdata.Hymn, error)
	GetChapter(ctx context.Context, version, book string, chapter int) (*refdata.Chapter, error)
}
