package profile_test

import (
	"context"
	"errors"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"milsabores/internal/domain"
	"milsabores/internal/logging"
	"milsabores/internal/services/profile"
	"milsabores/internal/store"
)

func newService(t *testing.T) (*profile.Service, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "photos")
	return profile.New(store.NewPhotoPrefStore(store.NewMemoryPrefs()), dir, logging.NewNop()), dir
}

func TestService_SaveLoad(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	_, ok, err := svc.LoadPhotoForUser(ctx, "ana@x.com")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, svc.SavePhotoForUser(ctx, "ana@x.com", "content://media/1"))
	got, ok, err := svc.LoadPhotoForUser(ctx, "ana@x.com")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, domain.PhotoLocator("content://media/1"), got)
}

func TestService_ImportPhoto_Completed(t *testing.T) {
	ctx := context.Background()
	svc, dir := newService(t)

	src := filepath.Join(t.TempDir(), "selfie.PNG")
	require.NoError(t, os.WriteFile(src, []byte("png-bytes"), 0o600))

	res, err := svc.ImportPhoto(ctx, "ana@x.com", profile.FileSource{Path: src})
	require.NoError(t, err)
	assert.Equal(t, domain.PhotoCompleted, res.Status)

	u, err := url.Parse(res.Locator.String())
	require.NoError(t, err)
	assert.Equal(t, "file", u.Scheme)
	assert.True(t, strings.HasSuffix(u.Path, ".png"))

	stored := filepath.FromSlash(u.Path)
	assert.Equal(t, dir, filepath.Dir(stored))
	b, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(b))

	got, ok, err := svc.LoadPhotoForUser(ctx, "ana@x.com")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, res.Locator, got)
}

func TestService_ImportPhoto_CancelledKeepsPrevious(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)
	require.NoError(t, svc.SavePhotoForUser(ctx, "ana@x.com", "file:///old.jpg"))

	res, err := svc.ImportPhoto(ctx, "ana@x.com", profile.FileSource{})
	require.NoError(t, err)
	assert.Equal(t, domain.PhotoCancelled, res.Status)
	assert.Empty(t, res.Locator)

	got, _, err := svc.LoadPhotoForUser(ctx, "ana@x.com")
	require.NoError(t, err)
	assert.Equal(t, domain.PhotoLocator("file:///old.jpg"), got)
}

type cancelOnRead struct {
	cancel context.CancelFunc
}

func (c cancelOnRead) Open(context.Context) (io.ReadCloser, string, error) {
	return io.NopCloser(readerFunc(func(p []byte) (int, error) {
		c.cancel()
		return copy(p, "partial"), nil
	})), "jpg", nil
}

type readerFunc func([]byte) (int, error)

func (f readerFunc) Read(p []byte) (int, error) { return f(p) }

func TestService_ImportPhoto_ContextCancelledMidCopy(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	svc, dir := newService(t)

	res, err := svc.ImportPhoto(ctx, "ana@x.com", cancelOnRead{cancel: cancel})
	require.NoError(t, err)
	assert.Equal(t, domain.PhotoCancelled, res.Status)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "partial file must be removed")
}

type brokenSource struct{}

func (brokenSource) Open(context.Context) (io.ReadCloser, string, error) {
	return nil, "", errors.New("camera unavailable")
}

func TestService_ImportPhoto_SourceError(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.ImportPhoto(context.Background(), "ana@x.com", brokenSource{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "camera unavailable")
}

func TestFileSource_MissingFile(t *testing.T) {
	_, _, err := profile.FileSource{Path: filepath.Join(t.TempDir(), "nope.jpg")}.Open(context.Background())
	require.ErrorIs(t, err, os.ErrNotExist)
}
