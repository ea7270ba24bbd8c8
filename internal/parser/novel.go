package parser

import (
	"path/filepath"
	"strings"

	"github.com/dgallion1/txtnovel/internal/novel"
	"github.com/dgallion1/txtnovel/internal/textenc"
)

// ParseTxt turns raw manuscript bytes of any encoding into a Novel.
// It never fails: undetectable structure yields nil metadata and no chapters.
func ParseTxt(data []byte) novel.Novel {
	return ParseLines(SplitLines(textenc.Decode(data)))
}

// SourceCharset names the encoding the text containers decode data with.
// Binary containers (PDF, DOCX) carry their own encoding and report "".
func SourceCharset(filename string, data []byte) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf", ".docx":
		return ""
	}
	return textenc.Charset(data)
}

// ParseLines runs metadata detection and chapter segmentation over decoded lines.
func ParseLines(lines []string) novel.Novel {
	return novel.Novel{
		Title:    DetectTitle(lines),
		Author:   DetectAuthor(lines),
		Chapters: Segment(lines),
	}
}

// SplitLines splits text on line feeds, dropping a trailing carriage return
// from each line. A final terminator does not produce an extra empty line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
