package graphics

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestBakeAtlas(t *testing.T) {
	baked, err := bakeAtlas(goregular.TTF, 16)
	if err != nil {
		t.Fatalf("bakeAtlas: %v", err)
	}
	for r := 'A'; r <= 'Z'; r++ {
		if _, ok := baked.characters[r]; !ok {
			t.Errorf("Missing glyph %q", r)
		}
	}
	b := baked.img.Bounds()
	if b.Dx() != atlasWidth {
		t.Errorf("Expected width %d, got %d", atlasWidth, b.Dx())
	}
	if h := b.Dy(); h&(h-1) != 0 {
		t.Errorf("Expected power of two height, got %d", h)
	}

	if space := baked.characters[' ']; space.Advance <= 0 {
		t.Errorf("Expected space to advance, got %+v", space)
	}
	for r, fc := range baked.characters {
		if fc.AtlasX+fc.Width > float32(b.Dx()) || fc.AtlasY+fc.Height > float32(b.Dy()) {
			t.Errorf("Glyph %q outside atlas: %+v", r, fc)
		}
	}

	// Some pixel of 'A' must be inked.
	a := baked.characters['A']
	inked := false
	for y := int(a.AtlasY); y < int(a.AtlasY+a.Height) && !inked; y++ {
		for x := int(a.AtlasX); x < int(a.AtlasX+a.Width); x++ {
			if baked.img.AlphaAt(x, y).A > 0 {
				inked = true
				break
			}
		}
	}
	if !inked {
		t.Errorf("Expected glyph 'A' to be drawn into the atlas")
	}
}

func TestBakeAtlasRejectsGarbage(t *testing.T) {
	if _, err := bakeAtlas([]byte("not a font"), 16); err == nil {
		t.Errorf("Expected parse error")
	}
}

func TestMeasure(t *testing.T) {
	chars := map[rune]FontCharacter{
		' ': {Advance: 4},
		'a': {Advance: 8, Height: 10},
		'b': {Advance: 9, Height: 14},
	}
	w, h := measure(chars, "ab a", 0.5)
	if w != 14.5 || h != 7 {
		t.Errorf("Expected (14.5, 7), got (%v, %v)", w, h)
	}
	// Unknown runes take the width of a space.
	if w, _ := measure(chars, "?", 1); w != 4 {
		t.Errorf("Expected 4, got %v", w)
	}
}

func TestGlyphQuad(t *testing.T) {
	fc := FontCharacter{AtlasX: 10, AtlasY: 20, Width: 5, Height: 8, BearingX: 1, BearingY: 6}
	q := glyphQuad(fc, 100, 50, 2, 100, 200)
	if len(q) != 24 {
		t.Fatalf("Expected 24 floats, got %d", len(q))
	}
	// Second vertex is the top-left corner.
	want := []float32{102, 38, 0.1, 0.1}
	for i, v := range want {
		if q[4+i] != v {
			t.Errorf("Top-left[%d]: expected %v, got %v", i, v, q[4+i])
		}
	}
	// Last vertex is the bottom-right corner.
	want = []float32{112, 54, 0.15, 0.14}
	for i, v := range want {
		if d := q[20+i] - v; d > 1e-6 || d < -1e-6 {
			t.Errorf("Bottom-right[%d]: expected %v, got %v", i, v, q[20+i])
		}
	}
}
