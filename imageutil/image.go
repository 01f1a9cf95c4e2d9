// Package imageutil provides pure Go image decoding and pixel access for
// tile sheet analysis.
package imageutil

import (
	"image"
	"image/draw"
)

// Image wraps image.NRGBA with convenience methods for pixel access. The
// straight (non-premultiplied) alpha representation keeps the authored RGB
// values of partially transparent pixels intact, which matters when they
// are diffed against an opaque reference.
type Image struct {
	*image.NRGBA
}

// New creates a fully transparent Image with the specified dimensions.
func New(width, height int) *Image {
	return &Image{
		NRGBA: image.NewNRGBA(image.Rect(0, 0, width, height)),
	}
}

// FromImage converts any image.Image to an origin-anchored Image.
func FromImage(img image.Image) *Image {
	bounds := img.Bounds()
	dst := New(bounds.Dx(), bounds.Dy())
	draw.Draw(dst.NRGBA, dst.Bounds(), img, bounds.Min, draw.Src)
	return dst
}

// Width returns the image width.
func (img *Image) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *Image) Height() int {
	return img.Bounds().Dy()
}

// Clone creates a deep copy of the image.
func (img *Image) Clone() *Image {
	clone := New(img.Width(), img.Height())
	copy(clone.Pix, img.Pix)
	return clone
}
