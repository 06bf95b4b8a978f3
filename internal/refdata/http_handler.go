package refdata

import (
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"worshipslides/internal/httpx"
)

type HTTPHandler struct {
	svc    *Service
	logger *zap.Logger
}

func NewHTTPHandler(svc *Service, logger *zap.Logger) *HTTPHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPHandler{svc: svc, logger: logger}
}

func (h *HTTPHandler) listingError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("listing failed",
		zap.String("path", r.URL.Path),
		zap.String("request_id", httpx.RequestIDFrom(r)),
		zap.Error(err))
	httpx.JSONError(w, r, http.StatusInternalServerError, "LISTING_FAILED", "Failed to list reference data", nil)
}

// ListHymns handles GET /api/list-hymns
// @Summary List hymn files
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} httpx.ErrorResponse
// @Router /api/list-hymns [get]
func (h *HTTPHandler) ListHymns(w http.ResponseWriter, r *http.Request) {
	hymns, err := h.svc.ListHymns(r.Context())
	if err != nil {
		h.listingError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, hymns)
}

// ListBooks handles GET /api/list-books?version=
// @Summary List Bible books of a version
// @Produce json
// @Param version query string false "Bible version"
// @Success 200 {array} Book
// @Failure 500 {object} httpx.ErrorResponse
// @Router /api/list-books [get]
func (h *HTTPHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.svc.ListBooks(r.Context(), r.URL.Query().Get("version"))
	if err != nil {
		h.listingError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, books)
}

// ListChapters handles GET /api/list-chapters?version=&book=
// @Summary List chapter numbers of a book
// @Produce json
// @Param version query string false "Bible version"
// @Param book query string true "Book code"
// @Success 200 {array} int
// @Failure 500 {object} httpx.ErrorResponse
// @Router /api/list-chapters [get]
func (h *HTTPHandler) ListChapters(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	chapters, err := h.svc.ListChapters(r.Context(), query.Get("version"), query.Get("book"))
	if err != nil {
		h.listingError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, chapters)
}

// ListVerses handles GET /api/list-verses?version=&book=&chapter=
// @Summary List verse numbers of a chapter
// @Produce json
// @Param version query string false "Bible version"
// @Param book query string true "Book code"
// @Param chapter query int true "Chapter number"
// @Success 200 {array} int
// @Failure 500 {object} httpx.ErrorResponse
// @Router /api/list-verses [get]
func (h *HTTPHandler) ListVerses(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	chapter, err := strconv.Atoi(query.Get("chapter"))
	if err != nil {
		httpx.JSONSuccess(w, []int{})
		return
	}
	verses, err := h.svc.ListVerses(r.Context(), query.Get("version"), query.Get("book"), chapter)
	if err != nil {
		h.listingError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, verses)
}

// GetHymn handles GET /api/hymns/{number}
func (h *HTTPHandler) GetHymn(w http.ResponseWriter, r *http.Request) {
	hymn, err := h.svc.GetHymn(r.Context(), r.PathValue("number"))
	if err != nil {
		h.detailError(w, r, err, "Hymn not found")
		return
	}
	httpx.JSONSuccess(w, hymn)
}

// GetChapter handles GET /api/chapters?version=&book=&chapter=
func (h *HTTPHandler) GetChapter(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	chapter, _ := strconv.Atoi(query.Get("chapter"))
	ch, err := h.svc.GetChapter(r.Context(), query.Get("version"), query.Get("book"), chapter)
	if err != nil {
		h.detailError(w, r, err, "Chapter not found")
		return
	}
	httpx.JSONSuccess(w, ch)
}

// ListBackgrounds handles GET /api/backgrounds
func (h *HTTPHandler) ListBackgrounds(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.ListBackgrounds(r.Context())
	if err != nil {
		h.listingError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, entries)
}

func (h *HTTPHandler) detailError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	if errors.Is(err, ErrNotFound) {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", notFound, nil)
		return
	}
	h.logger.Error("reference lookup failed",
		zap.String("path", r.URL.Path),
		zap.String("request_id", httpx.RequestIDFrom(r)),
		zap.Error(err))
	httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
}
