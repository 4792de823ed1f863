package reader

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Decode reads all of r and returns its contents as UTF-8 text. A
// leading byte order mark selects the decoding: UTF-16LE and UTF-16BE
// are converted, a UTF-8 mark is dropped, and unmarked input is taken
// as UTF-8 with invalid sequences replaced by U+FFFD.
func Decode(r io.Reader) (string, error) {
	bom := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(r, bom))
	if err != nil {
		return "", fmt.Errorf("failed to decode text: %w", err)
	}
	return string(data), nil
}

// Hash returns the revision token for a text: the hex form of its
// SHA-256 digest.
func Hash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// ReadFile opens the named file, decodes it and closes it.
func ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	text, err := Decode(f)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return text, nil
}
