package sie

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// decoderFunc attempts a strict decode of the raw bytes.
type decoderFunc func([]byte) (string, error)

// decoders in priority order. CP437 is the historical SIE default and maps
// every byte value, so in practice it always wins; the ladder still exists so
// a decoder that does fail falls through to the next one. The ISO 8859-1
// entry replaces rather than fails and acts as the terminal fallback.
var decoders = []struct {
	name   string
	decode decoderFunc
}{
	{"cp437", func(b []byte) (string, error) {
		return charmap.CodePage437.NewDecoder().String(string(b))
	}},
	{"utf-8", decodeUTF8},
	{"iso8859-1", func(b []byte) (string, error) {
		return charmap.ISO8859_1.NewDecoder().String(string(b))
	}},
}

func decodeUTF8(b []byte) (string, error) {
	// x/text's UTF-8 decoder substitutes invalid sequences instead of
	// failing, so validate first to keep this attempt strict.
	if !utf8.Valid(b) {
		return "", &FormatError{Attempts: []string{"utf-8"}}
	}
	return unicode.UTF8BOM.NewDecoder().String(string(b))
}

// decode resolves the file encoding: the first decoder in priority order
// that succeeds is used for the whole file. Encoding is never mixed
// line-by-line.
func decode(content []byte) (text string, encoding string, err error) {
	attempts := make([]string, 0, len(decoders))
	for _, d := range decoders {
		attempts = append(attempts, d.name)
		s, err := d.decode(content)
		if err != nil {
			continue
		}
		return s, d.name, nil
	}
	return "", "", &FormatError{Attempts: attempts}
}
