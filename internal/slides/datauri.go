package slides

import (
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const dataURIPrefix = "data:"

var ErrInvalidDataURI = errors.New("invalid data URI")

// EncodeDataURI renders data as data:<mime>;base64,<payload>. An empty
// contentType is detected from the bytes.
func EncodeDataURI(data []byte, contentType string) string {
	ct := mediaType(contentType)
	if ct == "" {
		ct = mediaType(mimetype.Detect(data).String())
	}
	return dataURIPrefix + ct + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURI returns the payload and media type of a base64 data URI.
func DecodeDataURI(uri string) ([]byte, string, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(uri), dataURIPrefix)
	if !ok {
		return nil, "", fmt.Errorf("%w: missing data: prefix", ErrInvalidDataURI)
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, "", fmt.Errorf("%w: missing payload", ErrInvalidDataURI)
	}
	ct, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return nil, "", fmt.Errorf("%w: payload is not base64", ErrInvalidDataURI)
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrInvalidDataURI, err)
	}
	if ct = mediaType(ct); ct == "" {
		ct = mediaType(mimetype.Detect(data).String())
	}
	return data, ct, nil
}

// mediaType drops parameters such as charset from a content type.
func mediaType(ct string) string {
	ct = strings.TrimSpace(ct)
	if ct == "" {
		return ""
	}
	if mt, _, err := mime.ParseMediaType(ct); err == nil {
		return mt
	}
	mt, _, _ := strings.Cut(ct, ";")
	return strings.ToLower(strings.TrimSpace(mt))
}
