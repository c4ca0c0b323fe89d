package models

// SearchMatch is a keyword hit inside a heading-delimited document
type SearchMatch struct {
	Header  string `json:"header"`
	LineNo  int    `json:"line_no"` // 1-based
	Line    string `json:"line"`
	Context string `json:"context"`
}
