package embeddings

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
)

// DirName is the cache directory inside the memory directory
const DirName = ".embeddings"

// Cache stores embedding vectors on disk, one file per model and text.
// File format: little-endian float64 array, named by sha256(model + text).
type Cache struct {
	dir string
}

// NewCache returns a cache rooted at dir; the directory is created on first write
func NewCache(dir string) *Cache {
	return &Cache{dir: dir}
}

// Dir returns the cache directory
func (c *Cache) Dir() string {
	return c.dir
}

// Key is the content address of text embedded with model
func Key(model, text string) string {
	sum := sha256.Sum256([]byte(model + "\x00" + text))
	return hex.EncodeToString(sum[:])
}

func (c *Cache) path(key string) string {
	return filepath.Join(c.dir, key+".bin")
}

// Get returns a cached vector; ok is false on a miss
func (c *Cache) Get(model, text string) (vec []float64, ok bool, err error) {
	data, err := os.ReadFile(c.path(Key(model, text)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read embedding: %w", err)
	}

	vec, err = decode(data)
	if err != nil {
		return nil, false, err
	}
	return vec, true, nil
}

// Put stores vec for model and text
func (c *Cache) Put(model, text string, vec []float64) error {
	if err := Validate(vec); err != nil {
		return err
	}
	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return fmt.Errorf("failed to create embedding cache: %w", err)
	}
	if err := os.WriteFile(c.path(Key(model, text)), encode(vec), 0644); err != nil {
		return fmt.Errorf("failed to write embedding: %w", err)
	}
	return nil
}

// Clear removes every cached vector
func (c *Cache) Clear() error {
	return os.RemoveAll(c.dir)
}

func encode(vec []float64) []byte {
	buf := make([]byte, 8*len(vec))
	for i, v := range vec {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(v))
	}
	return buf
}

func decode(data []byte) ([]float64, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("embedding file is empty")
	}
	if len(data)%8 != 0 {
		return nil, fmt.Errorf("invalid embedding file size: %d (not a multiple of 8)", len(data))
	}

	vec := make([]float64, len(data)/8)
	for i := range vec {
		vec[i] = math.Float64frombits(binary.LittleEndian.Uint64(data[i*8:]))
	}
	return vec, nil
}

// Validate rejects empty vectors and NaN or infinite components
func Validate(vec []float64) error {
	if len(vec) == 0 {
		return fmt.Errorf("embedding vector is empty")
	}
	for i, v := range vec {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("embedding contains invalid value at index %d: %v", i, v)
		}
	}
	return nil
}
