package models

// FileDelta is one numstat line of a commit.
// Binary files are recorded with zero added and deleted lines.
type FileDelta struct {
	Added    int    `json:"added"`
	Deleted  int    `json:"deleted"`
	Filename string `json:"filename"`
}

// CommitRecord represents a single commit parsed from git log output
type CommitRecord struct {
	Hash    string      `json:"hash"`
	Date    string      `json:"date"` // YYYY-MM-DD
	Message string      `json:"message"`
	Type    string      `json:"type"`
	Files   []FileDelta `json:"files,omitempty"`
}
