package framebuffer

import "testing"

func TestNewResetsToUnresolvedAndBlack(t *testing.T) {
	fb := New(4, 4)

	if got := fb.Iteration(0, 0); got != Unresolved {
		t.Errorf("Iteration(0,0) = %d, want Unresolved", got)
	}

	pixels, w, h, pitch := fb.Snapshot()
	if w != 4 || h != 4 || pitch != 16 {
		t.Fatalf("Snapshot dims = (%d,%d,%d), want (4,4,16)", w, h, pitch)
	}
	for _, b := range pixels {
		if b != 0 {
			t.Fatalf("expected all-zero pixel buffer on New")
		}
	}
}

func TestResolveThenColorAndIteration(t *testing.T) {
	fb := New(4, 4)
	fb.Resolve(1, 2, 42, 0xFFAABBCC)

	if got := fb.Iteration(1, 2); got != 42 {
		t.Errorf("Iteration(1,2) = %d, want 42", got)
	}
	if got := fb.Color(1, 2); got != 0xFFAABBCC {
		t.Errorf("Color(1,2) = %#08x, want 0xFFAABBCC", got)
	}
	// untouched pixel stays unresolved
	if got := fb.Iteration(0, 0); got != Unresolved {
		t.Errorf("Iteration(0,0) = %d, want Unresolved", got)
	}
}

func TestPaintBlockWritesARGBBytes(t *testing.T) {
	fb := New(4, 4)
	fb.PaintBlock(0, 0, 2, 0xFFAABBCC)

	pixels, _, _, pitch := fb.Snapshot()
	// byte layout is B,G,R,A (native ARGB8888 memory order)
	b, g, r, a := pixels[0], pixels[1], pixels[2], pixels[3]
	if b != 0xCC || g != 0xBB || r != 0xAA || a != 0xFF {
		t.Errorf("pixel(0,0) = (%#x,%#x,%#x,%#x), want (cc,bb,aa,ff)", b, g, r, a)
	}

	// (2,2) should remain untouched since the block was 2x2
	off := 2*pitch + 2*4
	if pixels[off+3] != 0 {
		t.Errorf("pixel(2,2) alpha = %#x, want untouched (0)", pixels[off+3])
	}
}

func TestPaintBlockClipsAtBounds(t *testing.T) {
	fb := New(4, 4)
	// should not panic even though the block runs past the edge
	fb.PaintBlock(3, 3, 4, 0xFF112233)

	pixels, _, _, pitch := fb.Snapshot()
	off := 3*pitch + 3*4
	if pixels[off+3] != 0xFF {
		t.Errorf("pixel(3,3) alpha = %#x, want 0xFF", pixels[off+3])
	}
}

func TestResetClearsPriorGeneration(t *testing.T) {
	fb := New(4, 4)
	fb.Resolve(0, 0, 10, 0xFFFFFFFF)
	fb.PaintBlock(0, 0, 1, 0xFFFFFFFF)

	fb.Reset()

	if got := fb.Iteration(0, 0); got != Unresolved {
		t.Errorf("after Reset, Iteration(0,0) = %d, want Unresolved", got)
	}
	pixels, _, _, _ := fb.Snapshot()
	for _, b := range pixels {
		if b != 0 {
			t.Fatalf("after Reset, expected all-zero pixel buffer")
		}
	}
}
