package textenc

import (
	"bytes"
	"unicode/utf8"

	"github.com/gogs/chardet"
	"golang.org/x/text/transform"
)

// ambiguousConfidence is the chardet score below which a guess is treated as
// a tie. Short CJK buffers (ten or fewer double-byte characters) score 10 for
// every multi-byte charset they happen to be valid in, and single-byte code
// pages can outscore them slightly on byte frequencies alone.
const ambiguousConfidence = 50

// cjkCharsets are the chardet multi-byte candidates, in the order preferred
// when detection is ambiguous. GB-18030 comes first since it also covers GBK
// and GB2312.
var cjkCharsets = []string{"GB-18030", "Big5", "EUC-JP", "Shift_JIS", "EUC-KR"}

// ChardetDetector guesses charsets from byte-pattern and character-frequency
// statistics. It covers UTF-8, the CJK legacy encodings (GB-18030, Big5,
// EUC-JP, Shift_JIS, EUC-KR) and the common single-byte code pages.
//
// A fresh chardet detector is built per call so the value is safe to share
// between goroutines.
type ChardetDetector struct{}

func NewChardetDetector() *ChardetDetector {
	return &ChardetDetector{}
}

// Detect returns the best candidate. A confident multi-byte guess is taken
// as is; otherwise the first CJK candidate that decodes data without
// replacement characters wins over the top score.
func (d *ChardetDetector) Detect(data []byte) (string, bool) {
	results, err := chardet.NewTextDetector().DetectAll(data)
	if err != nil || len(results) == 0 || results[0].Charset == "" {
		return "", false
	}
	top := results[0]
	if top.Confidence > ambiguousConfidence || (isCJK(top.Charset) && top.Confidence > 10) {
		return top.Charset, true
	}

	listed := make(map[string]bool, len(results))
	for _, r := range results {
		listed[r.Charset] = true
	}
	for _, name := range cjkCharsets {
		if listed[name] && decodesCleanly(name, data) {
			return name, true
		}
	}
	return top.Charset, true
}

func isCJK(name string) bool {
	for _, c := range cjkCharsets {
		if c == name {
			return true
		}
	}
	return false
}

// decodesCleanly reports whether data decodes in the named charset without
// producing U+FFFD.
func decodesCleanly(name string, data []byte) bool {
	enc, _ := lookup(name)
	if enc == nil {
		return false
	}
	out, _, err := transform.Bytes(enc.NewDecoder(), data)
	return err == nil && !bytes.ContainsRune(out, utf8.RuneError)
}
