package assets

import "testing"

func TestPlaceholderEarthDimensions(t *testing.T) {
	img := PlaceholderEarth(256, 128)

	b := img.Bounds()
	if b.Dx() != 256 || b.Dy() != 128 {
		t.Errorf("Expected 256x128, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestPlaceholderEarthOpaque(t *testing.T) {
	img := PlaceholderEarth(64, 32)

	for y := 0; y < 32; y++ {
		for x := 0; x < 64; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0xffff {
				t.Fatalf("Pixel (%d,%d) is not opaque", x, y)
			}
		}
	}
}

func TestPlaceholderEarthHasOceanAndLand(t *testing.T) {
	img := PlaceholderEarth(512, 256)

	var ocean, land int
	for y := 0; y < 256; y++ {
		for x := 0; x < 512; x++ {
			c := img.RGBAAt(x, y)
			if c == oceanColor {
				ocean++
			} else {
				land++
			}
		}
	}

	if ocean == 0 {
		t.Error("Placeholder globe should contain ocean")
	}
	if land == 0 {
		t.Error("Placeholder globe should contain land or coast")
	}
}

func TestPlaceholderEarthDeterministic(t *testing.T) {
	a := PlaceholderEarth(64, 32)
	b := PlaceholderEarth(64, 32)

	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatal("Placeholder generation should be deterministic for a fixed seed")
		}
	}
}
