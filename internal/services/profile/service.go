package profile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"milsabores/internal/domain"
	"milsabores/internal/logging"
)

// Service stores and imports profile photos.
type Service struct {
	photos domain.PhotoStore
	dir    string
	log    logging.Logger
}

// New returns a profile service that copies imported images into dir.
func New(photos domain.PhotoStore, dir string, log logging.Logger) *Service {
	return &Service{
		photos: photos,
		dir:    dir,
		log:    log.With("component", "profile"),
	}
}

// SavePhotoForUser records locator as username's photo.
func (s *Service) SavePhotoForUser(
	ctx context.Context,
	username domain.Username,
	locator domain.PhotoLocator,
) error {
	return s.photos.SavePhoto(ctx, username, locator)
}

// LoadPhotoForUser returns username's photo locator, if any.
func (s *Service) LoadPhotoForUser(
	ctx context.Context,
	username domain.Username,
) (domain.PhotoLocator, bool, error) {
	return s.photos.LoadPhoto(ctx, username)
}

// ImportPhoto copies the image produced by src into the photos directory and
// makes it username's photo.
func (s *Service) ImportPhoto(
	ctx context.Context,
	username domain.Username,
	src domain.PhotoSource,
) (domain.PhotoResult, error) {
	cancelled := domain.PhotoResult{Status: domain.PhotoCancelled}

	r, ext, err := src.Open(ctx)
	if isCancel(err) {
		s.log.Debug(ctx, "photo import cancelled", "user", username)
		return cancelled, nil
	}
	if err != nil {
		return domain.PhotoResult{}, fmt.Errorf("open photo source: %w", err)
	}
	defer r.Close()

	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return domain.PhotoResult{}, fmt.Errorf("create photos dir: %w", err)
	}
	path := filepath.Join(s.dir, uuid.NewString()+normalizeExt(ext))

	if err := copyFile(ctx, path, r); err != nil {
		_ = os.Remove(path)
		if isCancel(err) {
			return cancelled, nil
		}
		return domain.PhotoResult{}, fmt.Errorf("store photo: %w", err)
	}

	locator := fileLocator(path)
	if err := s.photos.SavePhoto(ctx, username, locator); err != nil {
		_ = os.Remove(path)
		return domain.PhotoResult{}, err
	}
	s.log.Info(ctx, "photo imported", "user", username, "locator", locator)
	return domain.PhotoResult{Status: domain.PhotoCompleted, Locator: locator}, nil
}

func copyFile(ctx context.Context, path string, r io.Reader) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, &ctxReader{ctx: ctx, r: r}); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// ctxReader stops a copy once ctx is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

func isCancel(err error) bool {
	return errors.Is(err, domain.ErrPhotoCancelled) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ".jpg"
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

func fileLocator(path string) domain.PhotoLocator {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	return domain.PhotoLocator(u.String())
}

// Compile-time assertion that Service implements domain.ProfileService.
var _ domain.ProfileService = (*Service)(nil)
