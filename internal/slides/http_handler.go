package slides

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"worshipslides/internal/httpx"
	"worshipslides/internal/platform/slidegen"
	"worshipslides/internal/refdata"
)

const defaultMaxUpload = 10 << 20

type HTTPHandler struct {
	ref       ReferenceSource
	builder   *Builder
	gen       Generator
	maxUpload int64
	logger    *zap.Logger
}

func NewHTTPHandler(ref ReferenceSource, builder *Builder, gen Generator, maxUpload int64, logger *zap.Logger) *HTTPHandler {
	if maxUpload <= 0 {
		maxUpload = defaultMaxUpload
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPHandler{ref: ref, builder: builder, gen: gen, maxUpload: maxUpload, logger: logger}
}

// generationInput is the union of fields accepted by the generation endpoints,
// from JSON or from a (multipart) form.
type generationInput struct {
	Number          string `json:"number"`
	Hymnal          string `json:"hymnal"`
	Text            string `json:"text"`
	Version         string `json:"version"`
	Book            string `json:"book"`
	Chapter         int    `json:"chapter"`
	VerseStart      int    `json:"verse_start"`
	VerseEnd        int    `json:"verse_end"`
	AltVersion      string `json:"alt_version"`
	BackgroundID    string `json:"background_id"`
	BackgroundImage string `json:"background_image"`

	upload *Upload
}

func (in *generationInput) background() Background {
	return BackgroundChoice{Upload: in.upload, GalleryID: strings.TrimSpace(in.BackgroundID)}.Background()
}

func (h *HTTPHandler) readInput(r *http.Request) (*generationInput, error) {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	var in generationInput
	switch ct {
	case "application/json":
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				return nil, err
			}
			return nil, invalid("body", "Invalid JSON body")
		}
	case "multipart/form-data":
		if err := r.ParseMultipartForm(h.maxUpload); err != nil {
			return nil, formError(err)
		}
		if err := h.readUpload(r, &in); err != nil {
			return nil, err
		}
		if err := readFormFields(r, &in); err != nil {
			return nil, err
		}
	default:
		if err := r.ParseForm(); err != nil {
			return nil, formError(err)
		}
		if err := readFormFields(r, &in); err != nil {
			return nil, err
		}
	}

	if in.upload == nil && strings.TrimSpace(in.BackgroundImage) != "" {
		data, ct, err := DecodeDataURI(in.BackgroundImage)
		if err != nil {
			return nil, invalid("background_image", "background_image must be a base64 data URI")
		}
		in.upload = &Upload{Data: data, ContentType: ct}
	}
	return &in, nil
}

func (h *HTTPHandler) readUpload(r *http.Request, in *generationInput) error {
	file, header, err := r.FormFile("background")
	if errors.Is(err, http.ErrMissingFile) {
		return nil
	}
	if err != nil {
		return formError(err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxUpload+1))
	if err != nil {
		return formError(err)
	}
	if int64(len(data)) > h.maxUpload {
		return &http.MaxBytesError{Limit: h.maxUpload}
	}
	ct := header.Header.Get("Content-Type")
	if mediaType(ct) == "application/octet-stream" {
		ct = ""
	}
	in.upload = &Upload{Data: data, ContentType: ct}
	return nil
}

func readFormFields(r *http.Request, in *generationInput) error {
	in.Number = r.FormValue("number")
	in.Hymnal = r.FormValue("hymnal")
	in.Text = r.FormValue("text")
	in.Version = r.FormValue("version")
	in.Book = r.FormValue("book")
	in.AltVersion = r.FormValue("alt_version")
	in.BackgroundID = r.FormValue("background_id")
	in.BackgroundImage = r.FormValue("background_image")

	ints := []struct {
		name string
		dst  *int
	}{
		{"chapter", &in.Chapter},
		{"verse_start", &in.VerseStart},
		{"verse_end", &in.VerseEnd},
	}
	for _, f := range ints {
		v := strings.TrimSpace(r.FormValue(f.name))
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return invalid(f.name, f.name+" must be a number")
		}
		*f.dst = n
	}
	return nil
}

func formError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return err
	}
	return invalid("body", "Invalid form body")
}

// GenerateHymn handles POST /api/slides/hymn
// @Summary Generate hymn slides
// @Accept json,mpfd
// @Produce application/vnd.openxmlformats-officedocument.presentationml.presentation
// @Success 200 {file} binary
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 502 {object} httpx.ErrorResponse
// @Router /api/slides/hymn [post]
func (h *HTTPHandler) GenerateHymn(w http.ResponseWriter, r *http.Request) {
	in, err := h.readInput(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	number := strings.TrimSpace(in.Number)
	if number == "" {
		h.writeError(w, r, invalid("number", "Select a hymn first"))
		return
	}

	hymn, err := h.ref.GetHymn(r.Context(), number)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	req, err := h.builder.BuildHymn(r.Context(), hymn, in.Hymnal, in.background())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.generate(w, r, req)
}

// GenerateCallToWorship handles POST /api/slides/call-to-worship
// @Summary Generate call-to-worship slides
// @Accept json,mpfd
// @Success 200 {file} binary
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 502 {object} httpx.ErrorResponse
// @Router /api/slides/call-to-worship [post]
func (h *HTTPHandler) GenerateCallToWorship(w http.ResponseWriter, r *http.Request) {
	in, err := h.readInput(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	req, err := h.builder.BuildCallToWorship(r.Context(), in.Text, in.background())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.generate(w, r, req)
}

// GenerateScripture handles POST /api/slides/scripture
func (h *HTTPHandler) GenerateScripture(w http.ResponseWriter, r *http.Request) {
	in, err := h.readInput(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if strings.TrimSpace(in.Book) == "" || in.Chapter < 1 {
		h.writeError(w, r, invalid("chapter", "Select a book and chapter first"))
		return
	}

	ch, err := h.ref.GetChapter(r.Context(), in.Version, in.Book, in.Chapter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	sel := ScriptureSelection{Chapter: ch, VerseStart: in.VerseStart, VerseEnd: in.VerseEnd}
	if alt := strings.TrimSpace(in.AltVersion); alt != "" {
		sel.Alt, err = h.ref.GetChapter(r.Context(), alt, in.Book, in.Chapter)
		if errors.Is(err, refdata.ErrNotFound) {
			h.logger.Info("alternate chapter missing",
				zap.String("version", alt),
				zap.String("book", in.Book),
				zap.Int("chapter", in.Chapter))
		} else if err != nil {
			h.writeError(w, r, err)
			return
		}
	}

	req, err := h.builder.BuildScripture(r.Context(), sel, in.background())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.generate(w, r, req)
}

func (h *HTTPHandler) generate(w http.ResponseWriter, r *http.Request, req Request) {
	art, err := Generate(r.Context(), h.gen, req)
	if err != nil {
		h.generationError(w, r, err)
		return
	}

	h.logger.Info("slides generated",
		zap.String("filename", art.Filename),
		zap.Int("bytes", len(art.Body)),
		zap.String("request_id", httpx.RequestIDFrom(r)))

	w.Header().Set("Content-Type", art.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": art.Filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(art.Body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(art.Body)
}

func (h *HTTPHandler) generationError(w http.ResponseWriter, r *http.Request, err error) {
	var genErr *slidegen.GenerationError
	switch {
	case errors.As(err, &genErr):
		h.logger.Warn("slide generator rejected request",
			zap.Int("status", genErr.Status),
			zap.String("request_id", httpx.RequestIDFrom(r)),
			zap.Error(err))
		httpx.JSONError(w, r, http.StatusBadGateway, "GENERATION_FAILED", genErr.Message, nil)
	case isTimeout(err):
		h.logger.Warn("slide generator timed out",
			zap.String("request_id", httpx.RequestIDFrom(r)),
			zap.Error(err))
		httpx.JSONError(w, r, http.StatusGatewayTimeout, "GENERATION_TIMEOUT", "Slide generator did not respond in time", nil)
	case errors.Is(err, context.Canceled):
		h.logger.Info("generation canceled", zap.String("request_id", httpx.RequestIDFrom(r)))
	default:
		h.logger.Error("slide generator unavailable",
			zap.String("request_id", httpx.RequestIDFrom(r)),
			zap.Error(err))
		httpx.JSONError(w, r, http.StatusBadGateway, "GENERATION_FAILED", "Failed to generate slides", nil)
	}
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *ValidationError
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &verr):
		details := make([]httpx.ErrorDetail, len(verr.Fields))
		for i, f := range verr.Fields {
			details[i] = httpx.ErrorDetail{Field: f.Field, Message: f.Message}
		}
		msg := "Invalid input"
		if len(verr.Fields) == 1 {
			msg = verr.Fields[0].Message
		}
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", msg, details)
	case errors.As(err, &tooLarge):
		httpx.JSONError(w, r, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "Request body too large", nil)
	case errors.Is(err, ErrBackgroundUnavailable):
		h.logger.Error("background unavailable",
			zap.String("request_id", httpx.RequestIDFrom(r)),
			zap.Error(err))
		httpx.JSONError(w, r, http.StatusInternalServerError, "BACKGROUND_UNAVAILABLE", "Background image could not be loaded", nil)
	case errors.Is(err, refdata.ErrNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Selected item not found", nil)
	default:
		h.logger.Error("slide request failed",
			zap.String("path", r.URL.Path),
			zap.String("request_id", httpx.RequestIDFrom(r)),
			zap.Error(err))
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
