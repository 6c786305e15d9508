package bitutil

import "testing"

func TestBitArrayGetSet(t *testing.T) {
	ba := NewBitArray(33)
	for i := 0; i < 33; i++ {
		if ba.Get(i) {
			t.Errorf("bit %d should not be set", i)
		}
	}
	ba.Set(0)
	ba.Set(31)
	ba.Set(32)
	if !ba.Get(0) || !ba.Get(31) || !ba.Get(32) {
		t.Error("bits should be set")
	}
	if ba.Get(1) || ba.Get(30) {
		t.Error("bits should not be set")
	}
}

func TestBitArrayFlip(t *testing.T) {
	ba := NewBitArray(8)
	ba.Flip(3)
	if !ba.Get(3) {
		t.Error("bit 3 should be set after flip")
	}
	ba.Flip(3)
	if ba.Get(3) {
		t.Error("bit 3 should be unset after double flip")
	}
}

func TestBitArrayAppendBit(t *testing.T) {
	ba := &BitArray{}
	ba.AppendBit(true)
	ba.AppendBit(false)
	ba.AppendBit(true)
	if ba.Size() != 3 {
		t.Errorf("size = %d, want 3", ba.Size())
	}
	if !ba.Get(0) || ba.Get(1) || !ba.Get(2) {
		t.Error("incorrect bits after append")
	}
}

func TestBitArrayAppendBits(t *testing.T) {
	ba := &BitArray{}
	ba.AppendBits(0x1E, 6) // 011110
	if ba.Size() != 6 {
		t.Fatalf("size = %d, want 6", ba.Size())
	}
	expected := []bool{false, true, true, true, true, false}
	for i, exp := range expected {
		if ba.Get(i) != exp {
			t.Errorf("bit %d = %v, want %v", i, ba.Get(i), exp)
		}
	}
}

func TestBitArrayAppendBitArray(t *testing.T) {
	a := &BitArray{}
	a.AppendBits(0x3, 2) // 11
	b := &BitArray{}
	b.AppendBits(0x1, 2) // 01
	a.AppendBitArray(b)
	if a.Size() != 4 {
		t.Fatalf("size = %d, want 4", a.Size())
	}
	expected := []bool{true, true, false, true}
	for i, exp := range expected {
		if a.Get(i) != exp {
			t.Errorf("bit %d = %v, want %v", i, a.Get(i), exp)
		}
	}
}

func TestBitArrayToBytes(t *testing.T) {
	ba := &BitArray{}
	ba.AppendBits(0xA5, 8) // 10100101
	out := make([]byte, 1)
	ba.ToBytes(0, out, 0, 1)
	if out[0] != 0xA5 {
		t.Errorf("ToBytes = %#x, want 0xa5", out[0])
	}
}

func TestBitArrayClone(t *testing.T) {
	ba := NewBitArray(16)
	ba.Set(5)
	clone := ba.Clone()
	clone.Set(10)
	if ba.Get(10) {
		t.Error("modifying clone should not affect original")
	}
	if !clone.Get(5) || !clone.Get(10) {
		t.Error("clone should have both bits set")
	}
}
