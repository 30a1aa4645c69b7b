// Package storage persists uploaded card media on local disk and hands
// back publicly fetchable URLs. Files are namespaced by upload kind and
// time-stamped so concurrent uploads cannot collide. Abandoned edit
// sessions may leave files behind; nothing garbage-collects them.
package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// Upload kind directories.
const (
	KindImage = "card-images"
	KindAudio = "card-music"
)

// MaxAudioSize is the upload ceiling for background music files.
const MaxAudioSize = 10 * 1024 * 1024

// Validation errors surfaced to the caller before any write happens.
var (
	ErrNotAudio    = fmt.Errorf("storage: file is not an audio type")
	ErrAudioTooBig = fmt.Errorf("storage: audio file exceeds %d bytes", MaxAudioSize)
	ErrEmptyUpload = fmt.Errorf("storage: empty upload")
	ErrUnknownKind = fmt.Errorf("storage: unknown upload kind")
)

// Store writes uploads under a base directory and builds their URLs
// from the configured public base URL.
type Store struct {
	dir     string
	baseURL string
	nowFn   func() time.Time
}

// New constructs a Store rooted at dir. baseURL is the externally
// visible origin used in returned URLs.
func New(dir, baseURL string) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("storage: empty directory")
	}
	for _, kind := range []string{KindImage, KindAudio} {
		if errMkdir := os.MkdirAll(filepath.Join(dir, kind), 0755); errMkdir != nil {
			return nil, fmt.Errorf("storage: create %s dir: %w", kind, errMkdir)
		}
	}
	return &Store{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
		nowFn:   time.Now,
	}, nil
}

// Dir returns the root directory uploads are written under.
func (s *Store) Dir() string { return s.dir }

// SaveImage stores a background image upload and returns its URL.
func (s *Store) SaveImage(filename string, src io.Reader) (string, error) {
	return s.save(KindImage, filename, src)
}

// SaveAudio validates and stores a background music upload and returns
// its URL. The declared content type must be audio/* and the declared
// size must not exceed MaxAudioSize; violations abort before writing.
func (s *Store) SaveAudio(filename, contentType string, declaredSize int64, src io.Reader) (string, error) {
	if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "audio/") {
		return "", ErrNotAudio
	}
	if declaredSize > MaxAudioSize {
		return "", ErrAudioTooBig
	}
	// The declared size is client-supplied; cap the copy as well.
	return s.save(KindAudio, filename, io.LimitReader(src, MaxAudioSize+1))
}

func (s *Store) save(kind, filename string, src io.Reader) (string, error) {
	if src == nil {
		return "", ErrEmptyUpload
	}
	if kind != KindImage && kind != KindAudio {
		return "", ErrUnknownKind
	}

	name := fmt.Sprintf("%d_%s", s.nowFn().UnixMilli(), sanitizeFilename(filename))
	target := filepath.Join(s.dir, kind, name)

	dst, errCreate := os.Create(target)
	if errCreate != nil {
		return "", fmt.Errorf("storage: create %s: %w", target, errCreate)
	}
	written, errCopy := io.Copy(dst, src)
	if errClose := dst.Close(); errCopy == nil {
		errCopy = errClose
	}
	if errCopy != nil {
		_ = os.Remove(target)
		return "", fmt.Errorf("storage: write %s: %w", target, errCopy)
	}
	if kind == KindAudio && written > MaxAudioSize {
		_ = os.Remove(target)
		return "", ErrAudioTooBig
	}

	return s.baseURL + "/uploads/" + path.Join(kind, name), nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// sanitizeFilename reduces a client filename to a safe path component,
// keeping the extension so served files retain a usable content type.
func sanitizeFilename(filename string) string {
	base := filepath.Base(strings.TrimSpace(filename))
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	stem = unsafeFilenameChars.ReplaceAllString(stem, "_")
	stem = strings.Trim(stem, "._")
	if stem == "" {
		stem = "upload"
	}
	ext = unsafeFilenameChars.ReplaceAllString(ext, "")
	return stem + ext
}
