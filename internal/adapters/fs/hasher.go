// Package fs implements filesystem-backed hashing.
package fs

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"

	"go.trai.ch/stager/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes SHA-256 content digests of files.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// HashFile returns the hex-encoded SHA-256 digest of the file's current
// byte contents. The digest is a pure function of the content; nothing is
// memoized.
func (h *Hasher) HashFile(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	digest := sha256.New()
	if _, err := io.Copy(digest, f); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hex.EncodeToString(digest.Sum(nil)), nil
}
