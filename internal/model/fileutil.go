package model

import (
	"os"
	"unicode/utf8"
)

// ReadContents loads the whole file at filePath as text.
// The file handle is held only for the duration of the read.
func ReadContents(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", &ReadError{Path: filePath, Err: err}
	}

	if !utf8.Valid(data) {
		return "", &ReadError{Path: filePath, Err: ErrInvalidText}
	}

	return string(data), nil
}
