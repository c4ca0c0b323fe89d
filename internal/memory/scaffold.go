package memory

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pders01/mnemos/internal/config"
)

// ScaffoldResult describes what happened to one file during initialization
type ScaffoldResult struct {
	Path    string
	Created bool
}

// Scaffold writes the memory documents, the config file and the agent skill
// description for cfg's project. Existing files are kept unless force is set.
func Scaffold(cfg *config.Config, force bool) ([]ScaffoldResult, error) {
	configData, err := config.Encode(cfg)
	if err != nil {
		return nil, err
	}

	files := []struct {
		path    string
		content []byte
	}{
		{cfg.LongTermPath(), []byte(LongTermTemplate(cfg.Memory.ValidSections))},
		{cfg.ShortTermPath(), []byte(ShortTermTemplate)},
		{cfg.FilePath(), configData},
		{cfg.SkillPath(), []byte(SkillTemplate)},
	}

	results := make([]ScaffoldResult, 0, len(files))
	for _, f := range files {
		created, err := scaffoldFile(f.path, f.content, force)
		if err != nil {
			return results, err
		}
		results = append(results, ScaffoldResult{Path: f.path, Created: created})
	}
	return results, nil
}

func scaffoldFile(path string, content []byte, force bool) (bool, error) {
	if _, err := os.Stat(path); err == nil && !force {
		return false, nil
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := writeFileAtomic(path, content); err != nil {
		return false, err
	}
	return true, nil
}
