// Package encoding turns user-supplied bytes of unknown charset into UTF-8 text.
// Messages typed on older Windows or feature-phone gateways still arrive as
// Windows-1252 or UTF-16.
package encoding

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	xencoding "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const sniffSize = 4096

var ErrTooLarge = errors.New("text exceeds size limit")

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// NewUTF8Reader wraps r with a decoder chosen from its first bytes. A UTF-8 BOM
// is dropped; anything undetectable is read as Windows-1252.
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReaderSize(r, sniffSize)

	head, err := br.Peek(sniffSize)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, fmt.Errorf("peek: %w", err)
	}

	if bytes.HasPrefix(head, bomUTF8) {
		_, _ = br.Discard(len(bomUTF8))
		return br, nil
	}

	enc := detect(head)
	if enc == nil {
		return br, nil
	}

	return transform.NewReader(br, enc.NewDecoder()), nil
}

// ReadText reads at most limit bytes from r and returns them as trimmed UTF-8.
func ReadText(r io.Reader, limit int64) (string, error) {
	raw, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return "", fmt.Errorf("reading text: %w", err)
	}

	if int64(len(raw)) > limit {
		return "", ErrTooLarge
	}

	ur, err := NewUTF8Reader(bytes.NewReader(raw))
	if err != nil {
		return "", err
	}

	decoded, err := io.ReadAll(ur)
	if err != nil {
		return "", fmt.Errorf("decoding text: %w", err)
	}

	return strings.TrimSpace(string(decoded)), nil
}

// detect returns nil when head is already UTF-8.
func detect(head []byte) xencoding.Encoding {
	switch {
	case bytes.HasPrefix(head, bomUTF16LE):
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	case bytes.HasPrefix(head, bomUTF16BE):
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
	case utf8.Valid(trimPartialRune(head)):
		return nil
	}

	res, err := chardet.NewTextDetector().DetectBest(head)
	if err != nil {
		return charmap.Windows1252
	}

	switch res.Charset {
	case "UTF-8":
		return nil
	case "ISO-8859-9":
		return charmap.ISO8859_9
	default:
		return charmap.Windows1252
	}
}

// trimPartialRune drops a multi-byte rune cut off by the sniff window.
func trimPartialRune(b []byte) []byte {
	for i := len(b) - 1; i >= 0 && i >= len(b)-utf8.UTFMax; i-- {
		if !utf8.RuneStart(b[i]) {
			continue
		}

		if !utf8.FullRune(b[i:]) {
			return b[:i]
		}

		break
	}

	return b
}
