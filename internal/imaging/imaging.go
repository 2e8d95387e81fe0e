// Copyright (c) 2026 Hanvil Academy
// All rights reserved. See LICENSE for details.

// Package imaging normalises uploaded passport photos. Parents upload
// whatever their phone produced; the office wants one small JPEG per child.
// Images wider than the target are scaled down; narrower ones are only
// re-encoded, never upscaled.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Variant describes one output size.
type Variant struct {
	Name    string // e.g., "photo"
	Width   int    // Maximum width in pixels
	Quality int    // JPEG quality 1-100
}

// PassportPhoto is the variant stored for admissions photos.
var PassportPhoto = Variant{Name: "photo", Width: 600, Quality: 85}

// maxSourcePixels bounds the decoded size so a crafted header cannot make
// the server allocate gigabytes.
const maxSourcePixels = 40_000_000

// ErrTooLarge is returned when the source image has too many pixels.
var ErrTooLarge = errors.New("imaging: image dimensions too large")

// ProcessedImage holds one generated variant ready for upload.
type ProcessedImage struct {
	Name        string // Variant name (e.g., "photo")
	Width       int    // Actual output width
	Height      int    // Actual output height
	Data        []byte // JPEG-encoded image bytes
	ContentType string // Always "image/jpeg"
}

// Process decodes original (JPEG, PNG, GIF or WebP) and encodes it as a
// JPEG no wider than v.Width, keeping the aspect ratio.
func Process(original []byte, v Variant) (*ProcessedImage, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(original))
	if err != nil {
		return nil, fmt.Errorf("imaging: probe failed: %w", err)
	}
	if cfg.Width*cfg.Height > maxSourcePixels {
		return nil, ErrTooLarge
	}

	src, _, err := image.Decode(bytes.NewReader(original))
	if err != nil {
		return nil, fmt.Errorf("imaging: decode failed: %w", err)
	}

	out := src
	b := src.Bounds()
	if b.Dx() > v.Width {
		h := b.Dy() * v.Width / b.Dx()
		if h < 1 {
			h = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, v.Width, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
		out = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, out, &jpeg.Options{Quality: v.Quality}); err != nil {
		return nil, fmt.Errorf("imaging: encode %s: %w", v.Name, err)
	}

	ob := out.Bounds()
	return &ProcessedImage{
		Name:        v.Name,
		Width:       ob.Dx(),
		Height:      ob.Dy(),
		Data:        buf.Bytes(),
		ContentType: "image/jpeg",
	}, nil
}
