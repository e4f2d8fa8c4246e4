package services

import (
	"net/http"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// DetectImageType sniffs data and returns its content type if it is an
// accepted upload no larger than maxBytes. maxBytes <= 0 disables the limit.
func DetectImageType(data []byte, maxBytes int64) (string, error) {
	if len(data) == 0 {
		return "", ErrInvalidImage
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return "", ErrImageTooLarge
	}

	contentType := http.DetectContentType(data)
	if !allowedImageTypes[contentType] {
		return "", ErrInvalidImage
	}
	return contentType, nil
}
