package refdata

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

const (
	jsonExt       = ".json"
	chapterMarker = "_chapter_"
)

func chapterFileName(book string, chapter int) string {
	return fmt.Sprintf("%s%s%d%s", book, chapterMarker, chapter, jsonExt)
}

// parseChapterFileName splits "<BOOK>_chapter_<n>.json". ok is false when the
// name does not follow the pattern or the chapter suffix is not a positive integer.
func parseChapterFileName(name string) (book string, chapter int, ok bool) {
	stem, found := strings.CutSuffix(name, jsonExt)
	if !found {
		return "", 0, false
	}
	i := strings.LastIndex(stem, chapterMarker)
	if i <= 0 {
		return "", 0, false
	}
	n, err := strconv.Atoi(stem[i+len(chapterMarker):])
	if err != nil || n < 1 {
		return "", 0, false
	}
	return stem[:i], n, true
}

func normalizeBook(book string) string {
	return strings.ToUpper(strings.TrimSpace(book))
}

// compareHymnNames orders numeric stems by value ahead of everything else,
// then falls back to plain string comparison so the order stays total.
func compareHymnNames(a, b string) int {
	na, errA := strconv.Atoi(strings.TrimSuffix(a, jsonExt))
	nb, errB := strconv.Atoi(strings.TrimSuffix(b, jsonExt))
	switch {
	case errA == nil && errB == nil:
		if c := cmp.Compare(na, nb); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	default:
		return strings.Compare(a, b)
	}
}
