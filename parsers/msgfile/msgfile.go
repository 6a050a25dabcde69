// Package msgfile extracts the plain-text body from Outlook .msg files.
// A .msg file is an OLE2 compound document; the body lives in the MAPI
// property stream __substg1.0_1000001F (UTF-16LE) or, in older writers,
// __substg1.0_1000001E (8-bit).
package msgfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf16"

	"github.com/richardlehane/mscfb"
)

// MAPI stream names for PR_BODY in its unicode and ANSI encodings.
const (
	bodyStreamUnicode = "__substg1.0_1000001F"
	bodyStreamANSI    = "__substg1.0_1000001E"
)

// oleMagic is the OLE2 compound document signature.
var oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

// ErrNoBody is returned when the container holds no recognizable body
// stream.
var ErrNoBody = errors.New("msgfile: no body stream found")

// Match reports whether data begins with the OLE2 magic bytes.
func Match(data []byte) bool {
	return len(data) >= len(oleMagic) && bytes.Equal(data[:len(oleMagic)], oleMagic)
}

// ReadBody extracts the message body text from a .msg container. The
// unicode stream wins when both encodings are present. Line endings are
// normalized to \n for the line-oriented extractors downstream.
func ReadBody(r io.ReaderAt) (string, error) {
	doc, err := mscfb.New(r)
	if err != nil {
		return "", fmt.Errorf("opening compound document: %w", err)
	}

	var unicodeBody, ansiBody []byte
	for entry, err := doc.Next(); err == nil; entry, err = doc.Next() {
		switch entry.Name {
		case bodyStreamUnicode, bodyStreamANSI:
			buf := make([]byte, entry.Size)
			n, rerr := io.ReadFull(entry, buf)
			if rerr != nil && rerr != io.ErrUnexpectedEOF {
				continue
			}
			if entry.Name == bodyStreamUnicode {
				unicodeBody = buf[:n]
			} else {
				ansiBody = buf[:n]
			}
		}
	}

	switch {
	case len(unicodeBody) > 0:
		return normalizeNewlines(decodeUTF16LE(unicodeBody)), nil
	case len(ansiBody) > 0:
		return normalizeNewlines(string(ansiBody)), nil
	}
	return "", ErrNoBody
}

// ReadBodyFile extracts the message body from a .msg file on disk.
func ReadBodyFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	body, err := ReadBody(f)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return body, nil
}

// decodeUTF16LE converts little-endian UTF-16 bytes to a Go string. An odd
// trailing byte is dropped.
func decodeUTF16LE(b []byte) string {
	u := make([]uint16, 0, len(b)/2)
	for i := 0; i+1 < len(b); i += 2 {
		u = append(u, uint16(b[i])|uint16(b[i+1])<<8)
	}
	return strings.TrimRight(string(utf16.Decode(u)), "\x00")
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
