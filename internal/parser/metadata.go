package parser

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// MetadataScanLines bounds how far into the text title and author are
	// looked for.
	MetadataScanLines = 12
	// MaxMetadataRunes is the longest title or author accepted.
	MaxMetadataRunes = 40
)

var (
	titleRe  = regexp.MustCompile(`《([^》]+)》`)
	authorRe = regexp.MustCompile(`作者：(.+)`)
)

// DetectTitle returns the text inside the first 《》 pair found in the leading
// lines. Lines containing 章 or 回 are skipped.
func DetectTitle(lines []string) *string {
	for _, line := range head(lines) {
		line = strings.TrimSpace(line)
		if strings.ContainsRune(line, '章') || strings.ContainsRune(line, '回') {
			continue
		}
		m := titleRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if title, ok := acceptMetadata(m[1]); ok {
			return &title
		}
	}
	return nil
}

// DetectAuthor returns the text following the first "作者：" marker in the
// leading lines.
func DetectAuthor(lines []string) *string {
	for _, line := range head(lines) {
		m := authorRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		if author, ok := acceptMetadata(m[1]); ok {
			return &author
		}
	}
	return nil
}

func acceptMetadata(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > MaxMetadataRunes {
		return "", false
	}
	return s, true
}

func head(lines []string) []string {
	if len(lines) > MetadataScanLines {
		return lines[:MetadataScanLines]
	}
	return lines
}
