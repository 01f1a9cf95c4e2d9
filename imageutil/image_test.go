package imageutil

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"
)

func TestNewImage(t *testing.T) {
	img := New(100, 50)
	if img.Width() != 100 {
		t.Errorf("Expected width 100, got %d", img.Width())
	}
	if img.Height() != 50 {
		t.Errorf("Expected height 50, got %d", img.Height())
	}
	// New images start fully transparent.
	if img.NRGBAAt(0, 0).A != 0 {
		t.Error("New image should be transparent")
	}
}

func TestFromImageNormalizesOrigin(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 10, 14, 12))
	src.SetNRGBA(10, 10, color.NRGBA{R: 9, G: 8, B: 7, A: 255})

	img := FromImage(src)
	if img.Bounds().Min != (image.Point{}) {
		t.Errorf("Expected origin-anchored bounds, got %v", img.Bounds())
	}
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{R: 9, G: 8, B: 7, A: 255}) {
		t.Errorf("Expected shifted pixel, got %v", got)
	}
}

func TestClone(t *testing.T) {
	img := New(10, 10)
	img.SetNRGBA(5, 5, color.NRGBA{R: 255, A: 255})

	clone := img.Clone()
	if clone.NRGBAAt(5, 5) != img.NRGBAAt(5, 5) {
		t.Error("Clone should have same pixel values")
	}

	// Modify clone, original should be unchanged
	clone.SetNRGBA(5, 5, color.NRGBA{G: 255, A: 255})
	if img.NRGBAAt(5, 5).G != 0 {
		t.Error("Modifying clone should not affect original")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	img := New(4, 4)
	img.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 40, G: 50, B: 60, A: 128})

	path := filepath.Join(t.TempDir(), "roundtrip.png")
	if err := SavePNG(img, path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Width() != 4 || loaded.Height() != 4 {
		t.Errorf("Expected 4x4, got %dx%d", loaded.Width(), loaded.Height())
	}
	if got := loaded.NRGBAAt(0, 0); got != (color.NRGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("Opaque pixel changed in round trip: %v", got)
	}
	if loaded.NRGBAAt(1, 0).A != 128 {
		t.Errorf("Alpha not preserved: %v", loaded.NRGBAAt(1, 0))
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("Expected error for missing file")
	}
}
