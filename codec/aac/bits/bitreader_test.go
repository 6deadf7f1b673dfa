/*
DESCRIPTION
  bitreader_test.go provides testing for bitreader.go.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2025 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package bits

import (
	"testing"

	"pgregory.net/rapid"
)

func TestReadUint(t *testing.T) {
	tests := []struct {
		data []byte
		n    []uint
		want []uint32
	}{
		{
			data: []byte{0x8f, 0xe3},
			n:    []uint{4, 2, 4, 6},
			want: []uint32{0x8, 0x3, 0xf, 0x23},
		},
		{
			data: []byte{0xff, 0xf1, 0x50},
			n:    []uint{12, 1, 2, 1, 2, 4},
			want: []uint32{0xfff, 0, 0, 1, 1, 4},
		},
		{
			data: []byte{0xab},
			n:    []uint{8, 8},
			want: []uint32{0xab, 0},
		},
	}

	for i, tt := range tests {
		r := NewReader(tt.data)
		for j, n := range tt.n {
			if got := r.ReadUint(n); got != tt.want[j] {
				t.Errorf("test %d read %d: ReadUint(%d) = %#x, want %#x", i, j, n, got, tt.want[j])
			}
		}
	}
}

func TestReadBit(t *testing.T) {
	r := NewReader([]byte{0xa5})
	want := []uint32{1, 0, 1, 0, 0, 1, 0, 1, 0, 0}
	for i, w := range want {
		if got := r.ReadBit(); got != w {
			t.Errorf("bit %d: got %d, want %d", i, got, w)
		}
	}
	if !r.IsComplete() {
		t.Error("reader should be complete")
	}
}

func TestReadByteAligned(t *testing.T) {
	r := NewReader([]byte{0x12, 0x34, 0x56})
	if got := r.ReadByte(); got != 0x12 {
		t.Errorf("ReadByte() = %#x, want 0x12", got)
	}
	r.ReadBit()
	if got := r.ReadByte(); got != 0x68 {
		t.Errorf("unaligned ReadByte() = %#x, want 0x68", got)
	}
}

func TestAlignToBit(t *testing.T) {
	tests := []struct {
		skip     uint // Bits consumed before aligning.
		align    uint
		wantPos  int
		wantNext uint32 // Next 4 bits after aligning, over data 0xff, 0x0f.
	}{
		{skip: 0, align: 0, wantPos: 0, wantNext: 0xf},
		{skip: 3, align: 0, wantPos: 1, wantNext: 0x0},
		{skip: 8, align: 0, wantPos: 1, wantNext: 0x0},
		{skip: 2, align: 4, wantPos: 0, wantNext: 0xf},
		{skip: 6, align: 4, wantPos: 1, wantNext: 0xf},
	}

	for i, tt := range tests {
		r := NewReader([]byte{0xff, 0x0f})
		r.SkipBits(tt.skip)
		r.AlignToBit(tt.align)
		if r.pos != tt.wantPos || r.bit != tt.align {
			t.Errorf("test %d: position (%d,%d), want (%d,%d)", i, r.pos, r.bit, tt.wantPos, tt.align)
			continue
		}
		if got := r.ReadUint(4); got != tt.wantNext {
			t.Errorf("test %d: next nibble %#x, want %#x", i, got, tt.wantNext)
		}
	}
}

func TestSkipSaturates(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02})
	r.SkipBytes(10)
	if !r.IsComplete() {
		t.Error("SkipBytes should saturate at end")
	}
	if got := r.ReadUint(8); got != 0 {
		t.Errorf("read past end = %#x, want 0", got)
	}

	r = NewReader([]byte{0x01, 0x02})
	r.SkipBits(100)
	if !r.IsComplete() {
		t.Error("SkipBits should saturate at end")
	}
}

// TestReadConcatenation checks that reading n bits then m bits is
// equivalent to reading n+m bits in one call.
func TestReadConcatenation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		data := rapid.SliceOfN(rapid.Byte(), 8, 8).Draw(t, "data")
		n := rapid.UintRange(1, 16).Draw(t, "n")
		m := rapid.UintRange(1, 16).Draw(t, "m")

		a := NewReader(data)
		hi := uint64(a.ReadUint(n))
		lo := uint64(a.ReadUint(m))

		b := NewReader(data)
		whole := uint64(b.ReadUint(n + m))

		if got := hi<<m | lo; got != whole {
			t.Fatalf("split read %#x != whole read %#x (n=%d m=%d)", got, whole, n, m)
		}
	})
}
