package vollmacht

import (
	"bytes"
	"image"

	// Raster formats accepted for signature uploads. WebP and BMP cover
	// browser canvas exports and legacy scanner output.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// decodedSignature is the successful branch of signature decoding.
type decodedSignature struct {
	width  int
	height int
	format string
}

// decodeSignature reads the image header of raw signature bytes.
// The ok result makes the "no signature" path an explicit branch rather
// than a silent catch-all: malformed input returns ok=false and the
// document still renders without a signature.
func decodeSignature(raw []byte) (decodedSignature, bool) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return decodedSignature{}, false
	}
	return decodedSignature{width: cfg.Width, height: cfg.Height, format: format}, true
}

// NormalizeSignature decodes raw signature bytes and computes the rendered
// size: width fixed at targetWidth, height scaled by the intrinsic aspect
// ratio but clamped to maxHeight. The clamp can distort unusually tall
// signatures; that trade-off favors a predictable layout height and is kept
// deliberately. Returns nil for absent or undecodable input.
func NormalizeSignature(raw []byte, targetWidth, maxHeight float64) *ImageBlock {
	if len(raw) == 0 {
		return nil
	}

	dec, ok := decodeSignature(raw)
	if !ok {
		return nil
	}

	aspect := 1.0
	if dec.width > 0 {
		aspect = float64(dec.height) / float64(dec.width)
	}

	height := targetWidth * aspect
	if height > maxHeight {
		height = maxHeight
	}

	return &ImageBlock{
		Data:   raw,
		Format: dec.format,
		Width:  targetWidth,
		Height: height,
	}
}
