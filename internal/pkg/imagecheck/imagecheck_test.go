package imagecheck

import (
	"bytes"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngOf(t *testing.T, w, h int) *bytes.Reader {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return bytes.NewReader(buf.Bytes())
}

func TestDecode(t *testing.T) {
	d, err := Decode(pngOf(t, 350, 350))
	require.NoError(t, err)
	assert.Equal(t, "png", d.Format)
	assert.True(t, d.Matches(350, 350))
	assert.Equal(t, ".png", d.Extension())

	d, err = Decode(pngOf(t, 200, 350))
	require.NoError(t, err)
	assert.False(t, d.Matches(350, 350))
}

func TestDecode_NotAnImage(t *testing.T) {
	_, err := Decode(strings.NewReader("hello"))
	assert.Error(t, err)
}

func TestExtension(t *testing.T) {
	assert.Equal(t, ".jpg", Dimensions{Format: "jpeg"}.Extension())
	assert.Equal(t, ".webp", Dimensions{Format: "webp"}.Extension())
	assert.Equal(t, "", Dimensions{}.Extension())
}
