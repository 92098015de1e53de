package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func decodeInlineJPEG(t *testing.T, ref string) image.Image {
	t.Helper()
	require.True(t, strings.HasPrefix(ref, "data:image/jpeg;base64,"), ref)
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(ref, "data:image/jpeg;base64,"))
	require.NoError(t, err)
	img, err := jpeg.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	return img
}

func TestInlineRefEmptyInput(t *testing.T) {
	assert.Equal(t, PlaceholderRef, InlineRef(""))
}

func TestInlineRefInvalidBase64(t *testing.T) {
	assert.Equal(t, PlaceholderRef, InlineRef("not base64 at all!!"))
}

func TestInlineRefNonImagePayload(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte("just some text"))
	assert.Equal(t, PlaceholderRef, InlineRef(encoded))
}

func TestInlineRefValidPNG(t *testing.T) {
	ref := InlineRef(encodePNG(t, 100, 80))

	img := decodeInlineJPEG(t, ref)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 80, img.Bounds().Dy())
}

func TestInlineRefStripsDataURLPrefix(t *testing.T) {
	ref := InlineRef("data:image/png;base64," + encodePNG(t, 10, 10))
	assert.True(t, strings.HasPrefix(ref, "data:image/jpeg;base64,"), ref)
}

func TestInlineRefDownscalesLargeImages(t *testing.T) {
	ref := InlineRef(encodePNG(t, 2048, 512))

	img := decodeInlineJPEG(t, ref)
	assert.Equal(t, MaxDimension, img.Bounds().Dx())
	assert.Equal(t, 256, img.Bounds().Dy())
}

func TestInlineRefKeepsSmallImagesUnscaled(t *testing.T) {
	ref := InlineRef(encodePNG(t, MaxDimension, MaxDimension))

	img := decodeInlineJPEG(t, ref)
	assert.Equal(t, MaxDimension, img.Bounds().Dx())
	assert.Equal(t, MaxDimension, img.Bounds().Dy())
}

func TestProcessRejectsUnknownFormat(t *testing.T) {
	_, err := process([]byte{0x00, 0x01, 0x02, 0x03})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported image format")
}
