package utils

import (
	"encoding/base64"
	"errors"
	"strings"
)

// DecodeDataURL splits a "data:image/...;base64,..." string into raw bytes
// and its mime type. Only image payloads are accepted.
func DecodeDataURL(dataURL string) ([]byte, string, error) {
	if !strings.HasPrefix(dataURL, "data:image/") {
		return nil, "", errors.New("invalid image format")
	}

	idx := strings.Index(dataURL, ";base64,")
	if idx < 0 {
		return nil, "", errors.New("invalid image format")
	}

	mimeType := dataURL[len("data:"):idx]
	data, err := base64.StdEncoding.DecodeString(dataURL[idx+len(";base64,"):])
	if err != nil {
		return nil, "", err
	}
	return data, mimeType, nil
}
