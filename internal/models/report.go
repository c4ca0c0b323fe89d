package models

// Hotspot is a file ranked among the most frequently modified in a window
type Hotspot struct {
	Filename string `json:"filename"`
	Count    int    `json:"count"`
	Added    int    `json:"added"`
	Deleted  int    `json:"deleted"`
}

// Report is the aggregated view of a set of commits
type Report struct {
	TotalCommits     int            `json:"total_commits"`
	TypeDistribution map[string]int `json:"type_distribution"`
	Hotspots         []Hotspot      `json:"hotspots"`
}
