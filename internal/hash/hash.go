// Package hash provides file checksumming for copy verification.
//
// When a move degrades to copy-then-remove (cross-device), the source is
// only deleted after the copied bytes hash to the same value. XXH3 is used
// because the comparison is integrity-only, not cryptographic.
package hash

import (
	"fmt"
	"io"
	"os"

	"github.com/zeebo/xxh3"
)

// Hasher provides an abstraction for file hashing operations.
type Hasher interface {
	// HashFile computes the hash of the file at the given path.
	HashFile(path string) (string, error)
}

// XXH3Hasher implements Hasher using XXH3-128.
type XXH3Hasher struct{}

// NewXXH3Hasher creates a new XXH3Hasher.
func NewXXH3Hasher() *XXH3Hasher {
	return &XXH3Hasher{}
}

// HashFile computes the XXH3-128 hash of the file at the given path.
func (h *XXH3Hasher) HashFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	hasher := xxh3.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	sum := hasher.Sum128().Bytes()
	return fmt.Sprintf("%x", sum), nil
}

// FakeHasher implements Hasher with preset hashes for testing.
type FakeHasher struct {
	hashes map[string]string
}

// NewFakeHasher creates a new FakeHasher.
func NewFakeHasher() *FakeHasher {
	return &FakeHasher{hashes: make(map[string]string)}
}

// SetHash sets the hash returned for a specific path.
func (h *FakeHasher) SetHash(path, hash string) {
	h.hashes[path] = hash
}

// HashFile returns the preset hash for the given path.
func (h *FakeHasher) HashFile(path string) (string, error) {
	if hash, ok := h.hashes[path]; ok {
		return hash, nil
	}
	return "fakehash", nil
}
