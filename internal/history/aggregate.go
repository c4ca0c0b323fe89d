package history

import (
	"sort"

	"github.com/pders01/mnemos/internal/models"
)

// MaxHotspots is how many files the report ranks
const MaxHotspots = 5

// Aggregate counts commits per type and ranks files by how many commits
// touched them. Ties keep the order in which files were first seen.
func Aggregate(commits []models.CommitRecord) models.Report {
	types := make(map[string]int)
	index := make(map[string]int)
	var files []models.Hotspot

	for _, c := range commits {
		t := c.Type
		if t == "" {
			t = TypeOther
		}
		types[t]++

		for _, f := range c.Files {
			i, ok := index[f.Filename]
			if !ok {
				i = len(files)
				index[f.Filename] = i
				files = append(files, models.Hotspot{Filename: f.Filename})
			}
			files[i].Count++
			files[i].Added += f.Added
			files[i].Deleted += f.Deleted
		}
	}

	sort.SliceStable(files, func(i, j int) bool {
		return files[i].Count > files[j].Count
	})
	if len(files) > MaxHotspots {
		files = files[:MaxHotspots]
	}

	return models.Report{
		TotalCommits:     len(commits),
		TypeDistribution: types,
		Hotspots:         files,
	}
}
