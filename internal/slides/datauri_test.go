package slides

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

func TestDataURI_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 25; i++ {
		data := make([]byte, 1+rng.Intn(4096))
		rng.Read(data)

		uri := EncodeDataURI(data, "image/jpeg")
		got, ct, err := DecodeDataURI(uri)

		require.NoError(t, err)
		assert.Equal(t, "image/jpeg", ct)
		if diff := cmp.Diff(data, got); diff != "" {
			t.Fatalf("round trip changed bytes (-want +got):\n%s", diff)
		}
	}
}

func TestEncodeDataURI(t *testing.T) {
	t.Run("sniffs png", func(t *testing.T) {
		uri := EncodeDataURI(pngHeader, "")
		assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"), uri)
	})

	t.Run("drops parameters", func(t *testing.T) {
		uri := EncodeDataURI([]byte("hello"), "text/plain; charset=utf-8")
		assert.True(t, strings.HasPrefix(uri, "data:text/plain;base64,"), uri)
	})

	t.Run("sniffed parameters dropped too", func(t *testing.T) {
		uri := EncodeDataURI([]byte("plain words"), "")
		assert.True(t, strings.HasPrefix(uri, "data:text/plain;base64,"), uri)
	})

	t.Run("passes datauri validation", func(t *testing.T) {
		req := CallToWorshipRequest{
			Pairs:           []Pair{{Leader: "A"}},
			BackgroundImage: EncodeDataURI(pngHeader, ""),
		}
		assert.NoError(t, ValidateStruct(&req))
	})
}

func TestDecodeDataURI_Invalid(t *testing.T) {
	for _, uri := range []string{
		"/images/backgrounds/default.jpg",
		"data:image/png;base64",
		"data:image/png,rawdata",
		"data:image/png;base64,***",
	} {
		_, _, err := DecodeDataURI(uri)
		assert.ErrorIs(t, err, ErrInvalidDataURI, uri)
	}
}
