package filestorage

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/findjobsyria/api/internal/pkg/logger"
	"github.com/google/uuid"
)

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// LocalStorage handles saving files to the local filesystem.
type LocalStorage struct {
	basePath string // The root directory where files will be stored
	baseURL  string // Public URL prefix the root directory is served under
	maxBytes int64
}

// NewLocalStorage creates a new LocalStorage instance and ensures basePath exists.
// baseURL is the prefix of returned URLs, e.g. http://localhost:8080/uploads.
// A non-positive maxBytes selects DefaultMaxImageSize.
func NewLocalStorage(basePath, baseURL string, maxBytes int64) (*LocalStorage, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxImageSize
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
		maxBytes: maxBytes,
	}, nil
}

// BasePath returns the directory served under the public URL prefix
func (ls *LocalStorage) BasePath() string {
	return ls.basePath
}

// SaveImage validates and stores an image under <kind>s/<uuid><ext>.
// The type is sniffed from the content, not taken from the client.
func (ls *LocalStorage) SaveImage(fileHeader *multipart.FileHeader, kind ImageKind) (string, error) {
	if fileHeader == nil {
		return "", ErrNoFile
	}
	if !kind.IsValid() {
		return "", ErrInvalidKind
	}
	if fileHeader.Size > ls.maxBytes {
		return "", ErrFileTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(file, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", fmt.Errorf("failed to read uploaded file: %w", err)
	}
	ext, ok := imageExtensions[http.DetectContentType(head[:n])]
	if !ok {
		return "", ErrUnsupportedType
	}

	dir := filepath.Join(ls.basePath, kind.dir())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create subdirectory: %w", err)
	}

	name := uuid.NewString() + ext
	dstPath := filepath.Join(dir, name)
	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	// Reassemble the sniffed prefix with the rest, capped one byte past the limit
	written, err := io.Copy(dst, io.LimitReader(io.MultiReader(bytes.NewReader(head[:n]), file), ls.maxBytes+1))
	if err != nil {
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}
	if written > ls.maxBytes {
		_ = os.Remove(dstPath)
		return "", ErrFileTooLarge
	}

	url := ls.baseURL + "/" + kind.dir() + "/" + name
	logger.Info().Str("filename", fileHeader.Filename).Str("url", url).Int64("size", written).Msg("Image saved")
	return url, nil
}
