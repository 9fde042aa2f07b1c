package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/rafaelnuansa/faculty-backend/internal/logger"
)

// MaxImageSize is the upload limit for post images (2048 KB).
const MaxImageSize = 2048 * 1024

// publicPrefix is the URL path under which stored images are served.
const publicPrefix = "images"

var (
	// ErrImageTooLarge is returned for uploads above MaxImageSize.
	ErrImageTooLarge = errors.New("image exceeds 2048 kilobytes")
	// ErrImageType is returned when extension or content is not an allowed image type.
	ErrImageType = errors.New("image type not allowed")
)

var allowedExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var allowedMIMEs = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

// ImageStore persists uploaded images and hands back their public path.
type ImageStore interface {
	Validate(fh *multipart.FileHeader) error
	Save(fh *multipart.FileHeader) (string, error)
	Delete(publicPath string) error
}

// LocalImageStore saves images on the local filesystem.
type LocalImageStore struct {
	basePath string
	now      func() time.Time
}

var _ ImageStore = (*LocalImageStore)(nil)

// NewLocalImageStore ensures basePath exists.
func NewLocalImageStore(basePath string) (*LocalImageStore, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create image directory %s: %w", basePath, err)
	}
	return &LocalImageStore{basePath: basePath, now: time.Now}, nil
}

// Validate checks size, extension and sniffed content type.
func (s *LocalImageStore) Validate(fh *multipart.FileHeader) error {
	if fh.Size > MaxImageSize {
		return ErrImageTooLarge
	}
	if !allowedExtensions[strings.ToLower(filepath.Ext(fh.Filename))] {
		return ErrImageType
	}

	file, err := fh.Open()
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		return fmt.Errorf("detect upload type: %w", err)
	}
	if !mimetype.EqualsAny(mtype.String(), allowedMIMEs...) {
		return ErrImageType
	}
	return nil
}

// Save writes the upload as <unix-nanos><ext> and returns "images/<name>".
func (s *LocalImageStore) Save(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := fmt.Sprintf("%d%s", s.now().UnixNano(), strings.ToLower(filepath.Ext(fh.Filename)))
	dstPath := filepath.Join(s.basePath, name)

	dst, err := os.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", dstPath, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("write %s: %w", dstPath, err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("close %s: %w", dstPath, err)
	}

	logger.Debug().Str("filename", fh.Filename).Str("saved_as", name).Msg("image stored")
	return path.Join(publicPrefix, name), nil
}

// Delete removes a previously saved image. Missing files are not an error.
func (s *LocalImageStore) Delete(publicPath string) error {
	if publicPath == "" {
		return nil
	}
	name := filepath.Base(publicPath)
	if name == "." || name == "/" || name == publicPrefix {
		return fmt.Errorf("invalid image path: %s", publicPath)
	}

	if err := os.Remove(filepath.Join(s.basePath, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete image %s: %w", name, err)
	}
	return nil
}
