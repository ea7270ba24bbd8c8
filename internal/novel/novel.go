package novel

import (
	"crypto/sha256"
	"fmt"
)

// Novel is the structured result of parsing a plain-text manuscript.
// Absent metadata is nil, never an empty placeholder.
type Novel struct {
	Title       *string   `json:"title"`
	Author      *string   `json:"author"`
	Description *string   `json:"description"`
	Chapters    []Chapter `json:"chapters"`
}

// Chapter is one heading and the body text up to the next heading.
type Chapter struct {
	Title   string `json:"title"` // Heading line, outer whitespace trimmed
	Content string `json:"content"`
}

// Empty returns a Novel with no metadata and no chapters.
func Empty() Novel {
	return Novel{Chapters: []Chapter{}}
}

// ListItem is the summarized record kept per manuscript file by library views.
type ListItem struct {
	Title       *string `json:"title"`
	Author      *string `json:"author"`
	ContentHash string  `json:"content_hash"`
	Source      string  `json:"source,omitempty"`
	Chapters    int     `json:"chapters"`
}

// Summarize builds a ListItem for n. The hash and source are supplied by the
// caller; a Novel knows nothing about where its bytes came from.
func Summarize(n Novel, contentHash, source string) ListItem {
	return ListItem{
		Title:       n.Title,
		Author:      n.Author,
		ContentHash: contentHash,
		Source:      source,
		Chapters:    len(n.Chapters),
	}
}

// ContentHash computes SHA-256 of raw manuscript bytes and returns hex.
func ContentHash(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
