package gen

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
)

// Version identifies the generator output format. Bumping it invalidates
// every stamp, forcing regeneration after the templates change.
const Version = "1"

const stampName = ".labelgen-stamp"

// Cache decides whether generation can be skipped. The key is a hash of
// the configuration bytes plus the generator version, written to a stamp
// file in the output directory after a successful run.
type Cache struct {
	// outDir is the directory holding generated files and the stamp.
	outDir string
}

// NewCache creates a cache scoped to the given output directory.
func NewCache(outDir string) *Cache {
	return &Cache{outDir: outDir}
}

// UpToDate reports whether the stamp matches the configuration and every
// expected generated file still exists.
func (c *Cache) UpToDate(configData []byte, filenames []string) bool {
	stamp, err := os.ReadFile(filepath.Join(c.outDir, stampName))
	if err != nil {
		return false
	}
	if strings.TrimSpace(string(stamp)) != computeKey(configData) {
		return false
	}
	for _, name := range filenames {
		info, err := os.Stat(filepath.Join(c.outDir, name))
		if err != nil || info.IsDir() || info.Size() == 0 {
			return false
		}
	}
	return true
}

// Write records the configuration hash after a successful generation.
func (c *Cache) Write(configData []byte) error {
	return os.WriteFile(filepath.Join(c.outDir, stampName), []byte(computeKey(configData)+"\n"), 0o644)
}

func computeKey(configData []byte) string {
	h := sha256.New()
	h.Write(configData)
	h.Write([]byte{0})
	h.Write([]byte(Version))
	return hex.EncodeToString(h.Sum(nil))
}
