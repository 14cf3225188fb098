// Package iofiletype classifies image files by their content. The
// classification looks only at the leading bytes of the file; it never
// decodes the image. This is an impure I/O package.
package iofiletype

import (
	"bytes"
	"io"
	"os"

	"github.com/optimg/optimg/pkg/optimizer"
)

// sniffLen bytes are enough for every supported signature, including an
// SVG root element behind an XML prolog and comments.
const sniffLen = 512

var (
	pngMagic  = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	jpegMagic = []byte{0xff, 0xd8, 0xff}
	gifMagic  = []byte("GIF8")
)

// contentGuesser implements optimizer.TypeGuesser.
type contentGuesser struct{}

// NewGuesser creates a TypeGuesser based on file signatures.
func NewGuesser() optimizer.TypeGuesser {
	return &contentGuesser{}
}

// Guess returns the type tag of the file at path. It fails when the
// file cannot be read or matches no supported format.
func (g *contentGuesser) Guess(path string) (optimizer.Type, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", NewReadError(path, err)
	}
	defer f.Close()

	head := make([]byte, sniffLen)
	n, err := f.Read(head)
	if err != nil && err != io.EOF {
		return "", NewReadError(path, err)
	}
	head = head[:n]

	switch {
	case bytes.HasPrefix(head, pngMagic):
		return optimizer.PNG, nil
	case bytes.HasPrefix(head, jpegMagic):
		return optimizer.JPEG, nil
	case bytes.HasPrefix(head, gifMagic):
		return optimizer.GIF, nil
	case looksLikeSVG(head):
		return optimizer.SVG, nil
	}

	return "", NewUnknownTypeError(path)
}

// looksLikeSVG reports whether the head of a file is an SVG document:
// an <svg> root element, optionally preceded by an XML prolog,
// comments, or a doctype.
func looksLikeSVG(head []byte) bool {
	return bytes.Contains(head, []byte("<svg"))
}
