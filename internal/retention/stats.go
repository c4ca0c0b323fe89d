package retention

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/pders01/mnemos/internal/config"
)

// FileStats describes one memory document on disk
type FileStats struct {
	Exists    bool   `json:"exists"`
	Path      string `json:"path"`
	SizeBytes int64  `json:"size_bytes,omitempty"`
	LineCount int    `json:"line_count,omitempty"`
}

// Stats summarizes both memory documents
type Stats struct {
	ProjectPath     string    `json:"project_path"`
	ShortTerm       FileStats `json:"short_term"`
	LongTerm        FileStats `json:"long_term"`
	NeedsCompaction bool      `json:"needs_compaction"`
}

// Collect gathers statistics for the memory documents of cfg's project.
// Short-term memory needs compaction once it exceeds compression.max_lines
// or compression.max_kb.
func Collect(cfg *config.Config) (*Stats, error) {
	short, err := fileStats(cfg.ShortTermPath())
	if err != nil {
		return nil, err
	}
	long, err := fileStats(cfg.LongTermPath())
	if err != nil {
		return nil, err
	}

	return &Stats{
		ProjectPath: cfg.ProjectPath,
		ShortTerm:   short,
		LongTerm:    long,
		NeedsCompaction: short.Exists &&
			(short.LineCount > cfg.Compression.MaxLines || short.SizeBytes > int64(cfg.Compression.MaxKB)*1024),
	}, nil
}

func fileStats(path string) (FileStats, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return FileStats{Path: path}, nil
	}
	if err != nil {
		return FileStats{}, err
	}
	return FileStats{
		Exists:    true,
		Path:      path,
		SizeBytes: int64(len(data)),
		LineCount: strings.Count(string(data), "\n") + 1,
	}, nil
}
