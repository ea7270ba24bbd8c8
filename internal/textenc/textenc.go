// Package textenc turns manuscript bytes of unknown encoding into UTF-8 text.
//
// Resolution never fails: undecodable input degrades to U+FFFD replacement
// characters rather than an error.
package textenc

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"
)

// Detector guesses the charset of a complete byte buffer.
type Detector interface {
	Detect(data []byte) (charset string, ok bool)
}

// Decoded is the outcome of resolving a buffer.
type Decoded struct {
	Text    string
	Charset string // Canonical name of the encoding used to decode
}

// Resolver picks an encoding for a buffer and decodes it.
type Resolver struct {
	Detector Detector
}

// NewResolver returns a Resolver that consults d for non-UTF-8 input.
// A nil detector means everything is decoded as UTF-8.
func NewResolver(d Detector) *Resolver {
	return &Resolver{Detector: d}
}

var defaultResolver = NewResolver(NewChardetDetector())

// Decode resolves data with the chardet-backed default resolver.
func Decode(data []byte) string {
	return defaultResolver.Resolve(data).Text
}

// Charset names the encoding the default resolver picks for data.
func Charset(data []byte) string {
	return defaultResolver.Charset(data)
}

// Resolve decodes data. A byte-order mark wins over detection, valid UTF-8
// is taken as UTF-8, and anything else goes through the detector.
func (r *Resolver) Resolve(data []byte) Decoded {
	enc, name, body := r.choose(data)
	if enc == nil {
		return Decoded{Text: lossyUTF8(body), Charset: name}
	}
	return decodeWith(enc, name, body)
}

// Charset names the encoding Resolve picks for data without decoding it.
func (r *Resolver) Charset(data []byte) string {
	_, name, _ := r.choose(data)
	return name
}

// choose returns the decoder, its canonical name and the bytes to decode
// (data minus any byte-order mark). A nil encoding means lossy UTF-8.
func (r *Resolver) choose(data []byte) (encoding.Encoding, string, []byte) {
	switch {
	case len(data) == 0:
		return nil, "utf-8", data
	case bytes.HasPrefix(data, bomUTF8):
		return nil, "utf-8", data[len(bomUTF8):]
	case bytes.HasPrefix(data, bomUTF16LE):
		return xunicode.UTF16(xunicode.LittleEndian, xunicode.IgnoreBOM), "utf-16le", data[2:]
	case bytes.HasPrefix(data, bomUTF16BE):
		return xunicode.UTF16(xunicode.BigEndian, xunicode.IgnoreBOM), "utf-16be", data[2:]
	}

	if utf8.Valid(data) || r.Detector == nil {
		return nil, "utf-8", data
	}
	guess, ok := r.Detector.Detect(data)
	if !ok {
		return nil, "utf-8", data
	}
	enc, name := lookup(guess)
	if enc == nil {
		return nil, "utf-8", data
	}
	return enc, name, data
}

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Detector names that are not WHATWG labels.
var aliases = map[string]string{
	"gb-18030":   "gb18030",
	"ibm420_ltr": "",
	"ibm420_rtl": "",
	"ibm424_ltr": "",
	"ibm424_rtl": "",
}

// lookup maps a detector charset name to an encoding.
func lookup(name string) (encoding.Encoding, string) {
	label := strings.ToLower(strings.TrimSpace(name))
	switch label {
	case "utf-32be":
		return utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM), label
	case "utf-32le":
		return utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM), label
	}
	if alias, ok := aliases[label]; ok {
		if alias == "" {
			return nil, ""
		}
		label = alias
	}
	return charset.Lookup(label)
}

func decodeWith(enc encoding.Encoding, name string, data []byte) Decoded {
	out, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return Decoded{Text: lossyUTF8(data), Charset: "utf-8"}
	}
	return Decoded{Text: lossyUTF8(out), Charset: name}
}

func lossyUTF8(b []byte) string {
	return strings.ToValidUTF8(string(b), string(utf8.RuneError))
}
