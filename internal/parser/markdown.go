package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/txtnovel/internal/novel"
	"github.com/dgallion1/txtnovel/internal/textenc"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser handles Markdown manuscripts using goldmark. Heading markers
// are stripped so "# 第一章 开端" segments like the bare heading line.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*novel.Novel, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}
	src := []byte(textenc.Decode(data))

	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var lines []string
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		lines = appendBlockLines(lines, n, src)
		// Blank line between blocks, as in the source.
		lines = append(lines, "")
	}

	nv := ParseLines(lines)
	return &nv, nil
}

// appendBlockLines appends one line per source line of a leaf block, or
// recurses into container blocks such as lists and block quotes.
func appendBlockLines(lines []string, n ast.Node, src []byte) []string {
	if n.Type() != ast.TypeBlock {
		return lines
	}
	if segs := n.Lines(); segs != nil && segs.Len() > 0 {
		for i := 0; i < segs.Len(); i++ {
			seg := segs.At(i)
			lines = append(lines, strings.TrimRight(string(seg.Value(src)), "\r\n"))
		}
		return lines
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		lines = appendBlockLines(lines, c, src)
	}
	return lines
}
