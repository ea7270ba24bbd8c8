package parser

import (
	"regexp"
	"strings"

	"github.com/dgallion1/txtnovel/internal/novel"
)

// headingRe matches a whole trimmed line in one of two forms:
// 第<numerals><unit>… (unit is 章, 节, 回 or 卷) or "Chapter <digits>…".
var headingRe = regexp.MustCompile(`^(?:第[0-9零一二三四五六七八九十百千万]+[章节回卷].*|Chapter[\s\p{Zs}]+\p{Nd}+.*)$`)

// IsHeading reports whether line, after trimming, is a chapter heading.
func IsHeading(line string) bool {
	return headingRe.MatchString(strings.TrimSpace(line))
}

// Segment splits lines into chapters in document order. Text before the first
// heading is dropped; a document without headings yields no chapters.
func Segment(lines []string) []novel.Chapter {
	s := &segmenter{chapters: []novel.Chapter{}}
	for _, line := range lines {
		s.feed(line)
	}
	s.flush()
	return s.chapters
}

// segmenter is the two-state sweep: no chapter open, or a chapter open with
// its heading and the body accumulated so far.
type segmenter struct {
	heading  string
	open     bool
	body     strings.Builder
	chapters []novel.Chapter
}

func (s *segmenter) feed(line string) {
	if !IsHeading(line) {
		s.body.WriteString(line)
		s.body.WriteByte('\n')
		return
	}
	s.flush()
	s.heading = strings.TrimSpace(line)
	s.open = true
}

// flush emits the open chapter, if any, and always resets the body so
// pre-heading text never reaches a chapter.
func (s *segmenter) flush() {
	if s.open {
		s.chapters = append(s.chapters, novel.Chapter{
			Title:   s.heading,
			Content: trimBlankLines(s.body.String()),
		})
	}
	s.body.Reset()
}

// trimBlankLines drops leading and trailing whitespace-only lines and the
// final line break, keeping the indentation of the remaining lines.
func trimBlankLines(text string) string {
	lines := strings.Split(text, "\n")
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}
