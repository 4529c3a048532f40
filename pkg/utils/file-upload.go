package utils

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// ValidateFileTypeFromContent sniffs the real content type of an uploaded
// file from its first 512 bytes and checks it against the allowed MIME
// types. The client-declared Content-Type header is never trusted. Returns
// the detected content type.
func ValidateFileTypeFromContent(fileHeader *multipart.FileHeader, allowedTypes []string) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	if n < 1 {
		return "", errors.New("file is empty")
	}

	contentType := http.DetectContentType(buffer[:n])
	if !ContainsString(allowedTypes, contentType) {
		return "", fmt.Errorf("invalid file type: %s", contentType)
	}

	// gin reopens the file handle when SaveUploadedFile is called
	_, _ = file.Seek(0, 0)

	return contentType, nil
}

var extensionsByContentType = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"application/pdf": ".pdf",
}

// GetFileExtensionFromContentType returns the file extension (with leading
// dot) for a detected content type, or an empty string for unknown types.
func GetFileExtensionFromContentType(contentType string) string {
	return extensionsByContentType[contentType]
}
