package parser

import (
	"fmt"
	"io"

	"github.com/dgallion1/txtnovel/internal/novel"
)

// TextParser handles plain text manuscripts in any encoding.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*novel.Novel, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}
	n := ParseTxt(data)
	return &n, nil
}
