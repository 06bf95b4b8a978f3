package slides

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePairs(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Pair
	}{
		{
			name: "labelled with trailing leader",
			text: "Leader: A\nPeople: B\nLeader: C",
			want: []Pair{{Leader: "A", People: "B"}, {Leader: "C", People: ""}},
		},
		{
			name: "unlabelled lines pair sequentially",
			text: "The Lord be with you\nAnd also with you\nLift up your hearts\nWe lift them up to the Lord",
			want: []Pair{
				{Leader: "The Lord be with you", People: "And also with you"},
				{Leader: "Lift up your hearts", People: "We lift them up to the Lord"},
			},
		},
		{
			name: "whitespace blank lines and case",
			text: "\r\n  LEADER:   Come   \r\n\r\n\tpeople: We come\n\n",
			want: []Pair{{Leader: "Come", People: "We come"}},
		},
		{
			name: "label text kept when not a prefix",
			text: "Our Leader: Christ\nAmen",
			want: []Pair{{Leader: "Our Leader: Christ", People: "Amen"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePairs(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePairs_Rejects(t *testing.T) {
	for name, text := range map[string]string{
		"empty":        "",
		"only spaces":  "   \n\t\n",
		"empty leader": "Leader:\nPeople: B",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParsePairs(text)
			assert.ErrorIs(t, err, ErrValidation)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.NotEmpty(t, verr.Fields[0].Message)
		})
	}
}
