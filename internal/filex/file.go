// Package filex holds helpers for reading local files into listing fields.
package filex

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// MaxImageSize bounds images embedded into a listing.
const MaxImageSize = 5 << 20

var ErrNotImage = errors.New("not an image")

// DataURI reads the image at path and returns it as a base64 data: URI
// suitable for Property.ImageURL.
func DataURI(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxImageSize+1))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if len(data) > MaxImageSize {
		return "", fmt.Errorf("%s is larger than %d bytes", path, MaxImageSize)
	}

	mt := contentType(path, data)
	if !strings.HasPrefix(mt, "image/") {
		return "", fmt.Errorf("%w: %s is %s", ErrNotImage, path, mt)
	}

	return "data:" + mt + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// contentType sniffs data and falls back to the file extension, which is
// the only way to recognise formats such as SVG.
func contentType(path string, data []byte) string {
	mt := http.DetectContentType(data)
	if strings.HasPrefix(mt, "image/") {
		return mt
	}
	if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); byExt != "" {
		mt, _, _ = strings.Cut(byExt, ";")
	}
	return mt
}
