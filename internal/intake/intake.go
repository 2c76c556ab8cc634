// Package intake validates and decodes the PNG files that become overlays.
// Nothing that fails here ever reaches the board.
package intake

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"io/fs"
	"path"
)

// RejectMessage is the user-facing notice for a file that is not a PNG.
const RejectMessage = "Please select a PNG file for the overlay."

// maxFileSize bounds how much of a file is read before giving up.
const maxFileSize = 32 << 20

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// InvalidPayloadError reports a file that cannot become an overlay. Its
// message is the user-facing notice; Reason carries the detail for logs.
type InvalidPayloadError struct {
	Src    string
	Reason string
}

func (e *InvalidPayloadError) Error() string {
	return RejectMessage
}

// Payload is a decoded, validated image ready for placement.
type Payload struct {
	Src   string
	Image image.Image
}

// NaturalSize returns the image's pixel dimensions.
func (p Payload) NaturalSize() (w, h int) {
	s := p.Image.Bounds().Size()
	return s.X, s.Y
}

// IsPNG reports whether data starts with the PNG signature.
func IsPNG(data []byte) bool {
	return bytes.HasPrefix(data, pngSignature)
}

// Decode validates data as a PNG with a non-empty image and decodes it.
func Decode(src string, data []byte) (Payload, error) {
	if !IsPNG(data) {
		return Payload{}, &InvalidPayloadError{Src: src, Reason: "not a PNG file"}
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return Payload{}, &InvalidPayloadError{Src: src, Reason: fmt.Sprintf("decode: %v", err)}
	}
	if s := img.Bounds().Size(); s.X <= 0 || s.Y <= 0 {
		return Payload{}, &InvalidPayloadError{Src: src, Reason: "empty image"}
	}
	return Payload{Src: src, Image: img}, nil
}

// Read reads all of r (up to the size limit) and decodes it.
func Read(src string, r io.Reader) (Payload, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxFileSize+1))
	if err != nil {
		return Payload{}, fmt.Errorf("intake: read %s: %w", src, err)
	}
	if len(data) > maxFileSize {
		return Payload{}, &InvalidPayloadError{Src: src, Reason: "file too large"}
	}
	return Decode(src, data)
}

// ReadFile opens name in fsys and decodes it.
func ReadFile(fsys fs.FS, name string) (Payload, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return Payload{}, fmt.Errorf("intake: open %s: %w", name, err)
	}
	defer f.Close()
	return Read(name, f)
}

// ReadAll decodes every regular file in fsys, in lexical order. Rejected and
// unreadable files are returned as errors alongside the accepted payloads.
func ReadAll(fsys fs.FS) ([]Payload, []error) {
	var payloads []Payload
	var errs []error
	err := fs.WalkDir(fsys, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		if d.IsDir() || path.Base(name)[0] == '.' {
			return nil
		}
		p, err := ReadFile(fsys, name)
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		payloads = append(payloads, p)
		return nil
	})
	if err != nil {
		errs = append(errs, err)
	}
	return payloads, errs
}
