package bitutil

import "testing"

func TestBitMatrixGetSet(t *testing.T) {
	bm := NewBitMatrixWithSize(10, 10)
	bm.Set(3, 5)
	if !bm.Get(3, 5) {
		t.Error("bit (3,5) should be set")
	}
	if bm.Get(5, 3) {
		t.Error("bit (5,3) should not be set")
	}
}

func TestBitMatrixFlip(t *testing.T) {
	bm := NewBitMatrixWithSize(4, 4)
	bm.Flip(1, 2)
	if !bm.Get(1, 2) {
		t.Error("bit should be set after flip")
	}
	bm.Flip(1, 2)
	if bm.Get(1, 2) {
		t.Error("bit should be unset after double flip")
	}
}

func TestBitMatrixSetRegion(t *testing.T) {
	bm := NewBitMatrixWithSize(8, 8)
	bm.SetRegion(2, 2, 4, 4)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			expected := x >= 2 && x < 6 && y >= 2 && y < 6
			if bm.Get(x, y) != expected {
				t.Errorf("(%d,%d) = %v, want %v", x, y, bm.Get(x, y), expected)
			}
		}
	}
}

func TestBitMatrixRow(t *testing.T) {
	bm := NewBitMatrixWithSize(8, 4)
	bm.Set(3, 2)
	bm.Set(5, 2)
	row := bm.Row(2, nil)
	if !row.Get(3) || !row.Get(5) {
		t.Error("row should have bits 3 and 5 set")
	}
	if row.Get(4) {
		t.Error("row bit 4 should not be set")
	}
}

func TestBitMatrixClone(t *testing.T) {
	bm := NewBitMatrixWithSize(8, 8)
	bm.Set(1, 1)
	clone := bm.Clone()
	clone.Set(2, 2)
	if bm.Get(2, 2) {
		t.Error("modifying clone should not affect original")
	}
}

func TestBitMatrixEquals(t *testing.T) {
	a := NewBitMatrixWithSize(4, 4)
	b := NewBitMatrixWithSize(4, 4)
	a.Set(1, 2)
	b.Set(1, 2)
	if !a.Equals(b) {
		t.Error("equal matrices should be equal")
	}
	b.Set(3, 3)
	if a.Equals(b) {
		t.Error("different matrices should not be equal")
	}
}

func TestBitMatrixString(t *testing.T) {
	bm := NewBitMatrixWithSize(2, 1)
	bm.Set(0, 0)
	if got, want := bm.String(), "X   \n"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
