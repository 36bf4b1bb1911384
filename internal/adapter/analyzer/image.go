package analyzer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/disintegration/imaging"
)

// Media types accepted by the Messages API for image blocks.
var supportedMedia = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// prepareImage fits the image into maxPx on its longest side and re-encodes
// it as JPEG. Images already small enough, or in a format imaging cannot
// decode but the API accepts, are passed through unchanged.
func prepareImage(data []byte, contentType string, maxPx int) ([]byte, string, error) {
	mediaType := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.IndexByte(mediaType, ';'); i >= 0 {
		mediaType = strings.TrimSpace(mediaType[:i])
	}
	if mediaType == "image/jpg" {
		mediaType = "image/jpeg"
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		if supportedMedia[mediaType] {
			return data, mediaType, nil
		}
		return nil, "", fmt.Errorf("unsupported image %q: %w", contentType, err)
	}

	b := img.Bounds()
	if maxPx <= 0 || (b.Dx() <= maxPx && b.Dy() <= maxPx) {
		if supportedMedia[mediaType] {
			return data, mediaType, nil
		}
	} else {
		img = imaging.Fit(img, maxPx, maxPx, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return nil, "", fmt.Errorf("encode image: %w", err)
	}
	return buf.Bytes(), "image/jpeg", nil
}
