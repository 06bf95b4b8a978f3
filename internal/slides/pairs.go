package slides

import (
	"fmt"
	"strings"
)

// Pair is one responsive reading exchange. Field names match the generator's
// expected keys.
type Pair struct {
	Leader string `json:"Leader" validate:"required"`
	People string `json:"People"`
}

var speakerLabels = []string{"leader:", "people:"}

// ParsePairs splits call-to-worship text into Leader/People pairs. Lines are
// trimmed, blank lines dropped and a leading speaker label removed; a final
// leader line without a response gets an empty People value.
func ParsePairs(text string) ([]Pair, error) {
	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, stripLabel(line))
	}
	if len(lines) == 0 {
		return nil, invalid("text", "Enter at least one Leader line")
	}

	pairs := make([]Pair, 0, (len(lines)+1)/2)
	for i := 0; i < len(lines); i += 2 {
		p := Pair{Leader: lines[i]}
		if i+1 < len(lines) {
			p.People = lines[i+1]
		}
		if p.Leader == "" {
			return nil, invalid(fmt.Sprintf("pairs[%d].Leader", len(pairs)), "Leader line is empty")
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

func stripLabel(line string) string {
	for _, label := range speakerLabels {
		if len(line) >= len(label) && strings.EqualFold(line[:len(label)], label) {
			return strings.TrimSpace(line[len(label):])
		}
	}
	return line
}
