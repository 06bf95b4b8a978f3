package refdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// bookNameWorkers bounds concurrent chapter reads while resolving book names.
const bookNameWorkers = 8

type Service struct {
	repo           Repository
	defaultVersion string
	logger         *zap.Logger
}

func NewService(repo Repository, defaultVersion string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, defaultVersion: defaultVersion, logger: logger}
}

func listingFailed(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrListingFailed, err)
}

// Version returns the requested version, or the default when it is blank.
func (s *Service) Version(version string) string {
	if v := strings.TrimSpace(version); v != "" {
		return v
	}
	return s.defaultVersion
}

// ListHymns returns the hymn file names ending in .json.
func (s *Service) ListHymns(ctx context.Context) ([]string, error) {
	names, err := s.repo.HymnFiles(ctx)
	if err != nil {
		return nil, listingFailed("list hymns", err)
	}
	out := make([]string, 0, len(names))
	for _, name := range names {
		if strings.HasSuffix(name, jsonExt) {
			out = append(out, name)
		}
	}
	slices.SortFunc(out, compareHymnNames)
	return out, nil
}

// ListBooks returns every book with at least one chapter file in the version,
// sorted by display name.
func (s *Service) ListBooks(ctx context.Context, version string) ([]Book, error) {
	version = s.Version(version)
	names, err := s.repo.ChapterFiles(ctx, version)
	if err != nil {
		return nil, listingFailed("list books", err)
	}

	// representative chapter per book: 1 when present, otherwise the lowest
	reps := make(map[string]int)
	for _, name := range names {
		code, chapter, ok := parseChapterFileName(name)
		if !ok {
			continue
		}
		if cur, seen := reps[code]; !seen || chapter < cur {
			reps[code] = chapter
		}
	}

	books := make([]Book, 0, len(reps))
	for code := range reps {
		books = append(books, Book{Code: code, Name: code})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(bookNameWorkers)
	for i := range books {
		g.Go(func() error {
			name, err := s.bookName(gctx, version, books[i].Code, reps[books[i].Code])
			if err != nil {
				return err
			}
			books[i].Name = name
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, listingFailed("list books", err)
	}

	slices.SortFunc(books, func(a, b Book) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.Code, b.Code)
	})
	return books, nil
}

// bookName reads book_name from one chapter file. Unreadable or malformed
// files fall back to the code; only context cancellation is returned.
func (s *Service) bookName(ctx context.Context, version, code string, chapter int) (string, error) {
	raw, err := s.repo.ReadChapter(ctx, version, chapterFileName(code, chapter))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		s.logger.Debug("book name unavailable",
			zap.String("version", version),
			zap.String("book", code),
			zap.Error(err))
		return code, nil
	}
	var doc chapterDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		s.logger.Warn("malformed chapter file",
			zap.String("version", version),
			zap.String("book", code),
			zap.Int("chapter", chapter),
			zap.Error(err))
		return code, nil
	}
	if name := strings.TrimSpace(doc.BookName); name != "" {
		return name, nil
	}
	return code, nil
}

// ListChapters returns the chapter numbers available for a book.
func (s *Service) ListChapters(ctx context.Context, version, book string) ([]int, error) {
	book = normalizeBook(book)
	if book == "" {
		return []int{}, nil
	}
	names, err := s.repo.ChapterFiles(ctx, s.Version(version))
	if err != nil {
		return nil, listingFailed("list chapters", err)
	}

	seen := make(map[int]struct{})
	chapters := make([]int, 0)
	for _, name := range names {
		code, chapter, ok := parseChapterFileName(name)
		if !ok || normalizeBook(code) != book {
			continue
		}
		if _, dup := seen[chapter]; dup {
			continue
		}
		seen[chapter] = struct{}{}
		chapters = append(chapters, chapter)
	}
	slices.Sort(chapters)
	return chapters, nil
}

// ListVerses returns the verse numbers present in one chapter file. A missing
// or malformed file yields an empty list.
func (s *Service) ListVerses(ctx context.Context, version, book string, chapter int) ([]int, error) {
	book = normalizeBook(book)
	if book == "" || chapter < 1 {
		return []int{}, nil
	}
	version = s.Version(version)

	doc, err := s.readChapter(ctx, version, book, chapter)
	switch {
	case errors.Is(err, ErrNotFound):
		return []int{}, nil
	case errors.Is(err, ErrMalformedData):
		s.logger.Warn("malformed chapter file",
			zap.String("version", version),
			zap.String("book", book),
			zap.Int("chapter", chapter),
			zap.Error(err))
		return []int{}, nil
	case err != nil:
		return nil, listingFailed("list verses", err)
	}

	seen := make(map[int]struct{}, len(doc.Verses))
	verses := make([]int, 0, len(doc.Verses))
	for _, v := range doc.Verses {
		n := int(v.Number)
		if n < 1 {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		verses = append(verses, n)
	}
	slices.Sort(verses)
	return verses, nil
}

// GetChapter returns a chapter with its verses ordered by number. Duplicate
// verse numbers keep the first entry.
func (s *Service) GetChapter(ctx context.Context, version, book string, chapter int) (*Chapter, error) {
	book = normalizeBook(book)
	if book == "" || chapter < 1 {
		return nil, fmt.Errorf("chapter %s %d: %w", book, chapter, ErrNotFound)
	}
	version = s.Version(version)

	doc, err := s.readChapter(ctx, version, book, chapter)
	if err != nil {
		return nil, err
	}

	seen := make(map[VerseNumber]struct{}, len(doc.Verses))
	verses := make([]Verse, 0, len(doc.Verses))
	for _, v := range doc.Verses {
		if v.Number < 1 {
			continue
		}
		if _, dup := seen[v.Number]; dup {
			continue
		}
		seen[v.Number] = struct{}{}
		verses = append(verses, v)
	}
	slices.SortStableFunc(verses, func(a, b Verse) int { return int(a.Number) - int(b.Number) })

	name := strings.TrimSpace(doc.BookName)
	if name == "" {
		name = book
	}
	return &Chapter{
		Version:  version,
		Book:     book,
		BookName: name,
		Number:   chapter,
		Verses:   verses,
	}, nil
}

func (s *Service) readChapter(ctx context.Context, version, book string, chapter int) (*chapterDocument, error) {
	raw, err := s.repo.ReadChapter(ctx, version, chapterFileName(book, chapter))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("chapter %s/%s %d: %w", version, book, chapter, ErrNotFound)
		}
		return nil, fmt.Errorf("read chapter %s/%s %d: %w", version, book, chapter, err)
	}
	var doc chapterDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("chapter %s/%s %d: %w: %w", version, book, chapter, ErrMalformedData, err)
	}
	return &doc, nil
}

// GetHymn loads one hymn by number. The number from the file name is used
// when the document does not carry one.
func (s *Service) GetHymn(ctx context.Context, number string) (*Hymn, error) {
	number = strings.TrimSuffix(strings.TrimSpace(number), jsonExt)
	if number == "" {
		return nil, fmt.Errorf("hymn: %w", ErrNotFound)
	}
	raw, err := s.repo.ReadHymn(ctx, number+jsonExt)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("hymn %s: %w", number, ErrNotFound)
		}
		return nil, fmt.Errorf("read hymn %s: %w", number, err)
	}
	var h Hymn
	if err := json.Unmarshal(raw, &h); err != nil {
		return nil, fmt.Errorf("hymn %s: %w: %w", number, ErrMalformedData, err)
	}
	if h.Number == "" {
		h.Number = number
	}
	return &h, nil
}

// ListBackgrounds returns the manifest entries in file order. The manifest
// may be a bare array or an object with a "backgrounds" array.
func (s *Service) ListBackgrounds(ctx context.Context) ([]Background, error) {
	raw, err := s.repo.ReadManifest(ctx)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []Background{}, nil
		}
		return nil, listingFailed("list backgrounds", err)
	}

	var entries []Background
	if err := json.Unmarshal(raw, &entries); err != nil {
		var wrapped struct {
			Backgrounds []Background `json:"backgrounds"`
		}
		if err2 := json.Unmarshal(raw, &wrapped); err2 != nil {
			return nil, listingFailed("list backgrounds", fmt.Errorf("%w: %w", ErrMalformedData, err))
		}
		entries = wrapped.Backgrounds
	}
	if entries == nil {
		entries = []Background{}
	}
	return entries, nil
}

func (s *Service) GetBackground(ctx context.Context, id string) (Background, error) {
	entries, err := s.ListBackgrounds(ctx)
	if err != nil {
		return Background{}, err
	}
	for _, e := range entries {
		if e.ID == id {
			return e, nil
		}
	}
	return Background{}, fmt.Errorf("background %q: %w", id, ErrNotFound)
}

func (s *Service) ReadAsset(ctx context.Context, assetPath string) ([]byte, error) {
	data, err := s.repo.ReadAsset(ctx, assetPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("asset %q: %w", assetPath, ErrNotFound)
		}
		return nil, fmt.Errorf("read asset %q: %w", assetPath, err)
	}
	return data, nil
}
