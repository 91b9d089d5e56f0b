package s3

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"strings"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
)

// Image is a decoded upload.
type Image struct {
	Data        []byte
	ContentType string
	Ext         string
}

// DecodeImage parses a base64 image payload, either a data URI
// ("data:image/png;base64,....") or bare base64. The bytes must decode as
// PNG, JPEG or GIF and be at most maxBytes long.
// Every failure wraps domain.ErrInvalidImage.
func DecodeImage(payload string, maxBytes int) (Image, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return Image{}, fmt.Errorf("empty payload: %w", domain.ErrInvalidImage)
	}

	if strings.HasPrefix(payload, "data:") {
		header, body, ok := strings.Cut(payload, ",")
		if !ok || !strings.HasSuffix(header, ";base64") {
			return Image{}, fmt.Errorf("malformed data URI: %w", domain.ErrInvalidImage)
		}
		if !strings.HasPrefix(header, "data:image/") {
			return Image{}, fmt.Errorf("not an image data URI: %w", domain.ErrInvalidImage)
		}
		payload = body
	}

	if base64.StdEncoding.DecodedLen(len(payload)) > maxBytes+2 {
		return Image{}, fmt.Errorf("image larger than %d bytes: %w", maxBytes, domain.ErrInvalidImage)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return Image{}, fmt.Errorf("decode base64: %v: %w", err, domain.ErrInvalidImage)
	}
	if len(data) > maxBytes {
		return Image{}, fmt.Errorf("image larger than %d bytes: %w", maxBytes, domain.ErrInvalidImage)
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Image{}, fmt.Errorf("decode image: %v: %w", err, domain.ErrInvalidImage)
	}

	ext := format
	if format == "jpeg" {
		ext = "jpg"
	}
	return Image{Data: data, ContentType: "image/" + format, Ext: ext}, nil
}
