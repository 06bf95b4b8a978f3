package slides

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"worshipslides/internal/platform/slidegen"
)

const presentationContentType = "application/vnd.openxmlformats-officedocument.presentationml.presentation"

// ErrInProgress is returned by Form.Submit while an earlier submission on the
// same form has not finished.
var ErrInProgress = errors.New("generation already in progress")

type Generator interface {
	Generate(ctx context.Context, path string, payload any) (*slidegen.Response, error)
}

// Artifact is a generated deck ready to download or save.
type Artifact struct {
	Filename    string
	ContentType string
	Body        []byte
}

// Generate posts req once and wraps the response as an Artifact.
func Generate(ctx context.Context, gen Generator, req Request) (*Artifact, error) {
	resp, err := gen.Generate(ctx, req.Endpoint(), req)
	if err != nil {
		return nil, fmt.Errorf("generate %s: %w", req.Filename(), err)
	}
	ct := resp.ContentType
	if ct == "" || ct == "application/octet-stream" {
		ct = presentationContentType
	}
	return &Artifact{Filename: req.Filename(), ContentType: ct, Body: resp.Body}, nil
}

// Form allows one outstanding submission at a time. Overlapping calls fail
// fast with ErrInProgress; nothing is queued or retried.
type Form struct {
	gen  Generator
	busy atomic.Bool
}

func NewForm(gen Generator) *Form {
	return &Form{gen: gen}
}

func (f *Form) Submit(ctx context.Context, req Request) (*Artifact, error) {
	if !f.busy.CompareAndSwap(false, true) {
		return nil, ErrInProgress
	}
	defer f.busy.Store(false)
	return Generate(ctx, f.gen, req)
}

// Busy reports whether a submission is outstanding.
func (f *Form) Busy() bool {
	return f.busy.Load()
}
