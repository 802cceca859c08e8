package local

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/counterparty_portal/internal/core/ports/storage"
)

// FilesRoute is where the HTTP layer serves signed local downloads.
const FilesRoute = "/files"

var (
	ErrInvalidKey       = errors.New("invalid object key")
	ErrInvalidSignature = errors.New("invalid or expired download signature")
)

// Store keeps uploads on the local filesystem and hands out HMAC signed links.
type Store struct {
	root    string
	baseURL string
	secret  []byte
	now     func() time.Time
}

var _ storage.BlobStore = (*Store)(nil)

// NewStore creates root if needed. baseURL is the public origin of the API.
func NewStore(root, baseURL string, secret []byte) (*Store, error) {
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create blob dir %s: %w", root, err)
	}
	return &Store{
		root:    root,
		baseURL: strings.TrimRight(baseURL, "/"),
		secret:  secret,
		now:     time.Now,
	}, nil
}

func (s *Store) Put(_ context.Context, obj storage.Object) (string, error) {
	path, err := s.Path(obj.Key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return "", fmt.Errorf("failed to create dir for %s: %w", obj.Key, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o640)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", obj.Key, err)
	}
	if _, err := io.Copy(f, obj.Body); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to write %s: %w", obj.Key, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", obj.Key, err)
	}
	return obj.Key, nil
}

func (s *Store) URL(_ context.Context, key string, ttl time.Duration) (string, error) {
	if _, err := s.Path(key); err != nil {
		return "", err
	}
	expires := s.now().Add(ttl).Unix()
	q := url.Values{}
	q.Set("expires", strconv.FormatInt(expires, 10))
	q.Set("sig", s.sign(key, expires))
	return fmt.Sprintf("%s%s/%s?%s", s.baseURL, FilesRoute, key, q.Encode()), nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	path, err := s.Path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// Verify checks a download link produced by URL.
func (s *Store) Verify(key, expires, sig string) error {
	exp, err := strconv.ParseInt(expires, 10, 64)
	if err != nil || s.now().Unix() > exp {
		return ErrInvalidSignature
	}
	if !hmac.Equal([]byte(sig), []byte(s.sign(key, exp))) {
		return ErrInvalidSignature
	}
	return nil
}

// Path resolves key inside the store root, refusing keys that escape it.
func (s *Store) Path(key string) (string, error) {
	clean := filepath.Clean("/" + strings.TrimPrefix(key, "/"))
	if key == "" || clean == "/" || clean != "/"+strings.TrimPrefix(key, "/") {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(s.root, filepath.FromSlash(clean)), nil
}

func (s *Store) sign(key string, expires int64) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(key))
	mac.Write([]byte{0})
	mac.Write([]byte(strconv.FormatInt(expires, 10)))
	return hex.EncodeToString(mac.Sum(nil))
}
