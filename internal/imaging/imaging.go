// Package imaging converts uploaded medicine photos into a portable inline
// reference the dashboard can render without any file storage. Anything that
// cannot be decoded degrades to the placeholder reference; this package never
// fails a listing creation.
package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"
	"strings"

	"golang.org/x/image/draw"
)

// PlaceholderRef is the well-known image reference used when no usable
// picture was submitted.
const PlaceholderRef = "https://via.placeholder.com/150?text=Medicine"

// MaxDimension is the maximum width or height for stored images.
const MaxDimension = 1024

// JPEGQuality is the compression quality for JPEG output.
const JPEGQuality = 85

// AllowedMIME lists the accepted input MIME types.
var AllowedMIME = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// InlineRef turns a base64-encoded upload (optionally carrying a data-URL
// prefix) into a data:image/jpeg data URL, downscaled and re-encoded. An
// empty or undecodable payload yields PlaceholderRef.
func InlineRef(encoded string) string {
	if encoded == "" {
		return PlaceholderRef
	}

	// Strip a "data:...;base64," prefix if the client sent a full data URL.
	if idx := strings.Index(encoded, ";base64,"); idx >= 0 {
		encoded = encoded[idx+len(";base64,"):]
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return PlaceholderRef
	}

	data, err := process(raw)
	if err != nil {
		return PlaceholderRef
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(data)
}

// process validates the format by sniffing bytes, downscales if larger than
// MaxDimension, and re-encodes with compression. Always outputs JPEG for
// consistency and smaller payloads.
func process(raw []byte) ([]byte, error) {
	// Sniff actual MIME type from bytes (not trusting client headers).
	detected := http.DetectContentType(raw)
	if !AllowedMIME[detected] {
		return nil, fmt.Errorf("unsupported image format: %s (only JPEG and PNG accepted)", detected)
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	img = downscale(img, MaxDimension)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, fmt.Errorf("encoding JPEG: %w", err)
	}
	return buf.Bytes(), nil
}

// downscale resizes the image so neither dimension exceeds maxDim, using
// Catmull-Rom interpolation. Returns the original if already within bounds.
func downscale(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	if w <= maxDim && h <= maxDim {
		return img
	}

	newW, newH := w, h
	if w > h {
		newW = maxDim
		newH = int(float64(h) * float64(maxDim) / float64(w))
	} else {
		newH = maxDim
		newW = int(float64(w) * float64(maxDim) / float64(h))
	}
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

func init() {
	// Register decoders (jpeg is registered by default, but be explicit).
	image.RegisterFormat("jpeg", "\xff\xd8", jpeg.Decode, jpeg.DecodeConfig)
	image.RegisterFormat("png", "\x89PNG", png.Decode, png.DecodeConfig)
}
