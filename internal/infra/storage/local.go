// Package storage keeps uploaded deal images on the local filesystem.
package storage

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"travel-deals/internal/pkg/config"
	"travel-deals/internal/pkg/errs"
	"travel-deals/internal/usecase/commands"
)

var (
	ErrImageTooLarge       = errs.New("file too large")
	ErrUnsupportedImage    = errs.New("unsupported image type")
	allowedImageExtensions = map[string]string{
		"image/jpeg": ".jpg",
		"image/png":  ".png",
		"image/webp": ".webp",
	}
)

type LocalImageStore struct {
	dir      string
	urlPath  string
	maxBytes int64
	now      func() time.Time
}

func NewLocalImageStore(cfg config.UploadConfig) *LocalImageStore {
	return &LocalImageStore{
		dir:      cfg.Dir,
		urlPath:  strings.TrimRight(cfg.URLPath, "/"),
		maxBytes: cfg.MaxBytes,
		now:      time.Now,
	}
}

// Save sniffs the content instead of trusting the client's file name or
// content type; the original name is ignored apart from logging.
func (s *LocalImageStore) Save(_ context.Context, _ string, data []byte) (string, error) {
	if int64(len(data)) > s.maxBytes {
		return "", errs.Mark(errs.Mark(errs.Newf("image is %d bytes, max %d", len(data), s.maxBytes), ErrImageTooLarge), commands.ErrInvalidImage)
	}

	contentType := http.DetectContentType(data)
	ext, ok := allowedImageExtensions[contentType]
	if !ok {
		return "", errs.Mark(errs.Mark(errs.Newf("content type %s", contentType), ErrUnsupportedImage), commands.ErrInvalidImage)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", errs.Wrap(err, "create upload dir")
	}

	name, err := s.fileName(ext)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", errs.Wrap(err, "write upload")
	}

	return s.urlPath + "/" + name, nil
}

// Remove ignores URLs this store did not issue, such as external image links.
func (s *LocalImageStore) Remove(_ context.Context, publicURL string) error {
	if !strings.HasPrefix(publicURL, s.urlPath+"/") {
		return nil
	}
	name := path.Base(publicURL)
	if name == "." || name == "/" || name == ".." {
		return nil
	}

	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errs.Wrap(err, "remove upload")
	}
	return nil
}

func (s *LocalImageStore) fileName(ext string) (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", errs.Wrap(err, "random file name")
	}
	return fmt.Sprintf("%d_%s%s", s.now().UnixMilli(), hex.EncodeToString(buf), ext), nil
}
