/*
NAME
  tables_test.go

DESCRIPTION
  tables_test.go provides testing for tables.go.

AUTHOR
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2025 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package aac

import "testing"

// TestBandTablesWellFormed checks that every band table is strictly
// ascending, starts at zero, ends at the transform length, and has
// swbCount+1 offsets.
func TestBandTablesWellFormed(t *testing.T) {
	for i, bi := range bandInfoMap {
		for _, tbl := range []struct {
			name   string
			bands  *bandOffsets
			length int
		}{
			{"long", bi.long, longSampleCount},
			{"short", bi.short, shortSampleCount},
		} {
			off := tbl.bands.offsets
			if len(off) != tbl.bands.swbCount+1 {
				t.Errorf("index %d %s: %d offsets for %d bands", i, tbl.name, len(off), tbl.bands.swbCount)
				continue
			}
			if off[0] != 0 {
				t.Errorf("index %d %s: first offset %d", i, tbl.name, off[0])
			}
			if last := off[len(off)-1]; last != tbl.length {
				t.Errorf("index %d %s: last offset %d, want %d", i, tbl.name, last, tbl.length)
			}
			for b := 1; b < len(off); b++ {
				if off[b] <= off[b-1] {
					t.Errorf("index %d %s: offsets not ascending at band %d", i, tbl.name, b)
					break
				}
			}
		}
	}
}

func TestIndexBySampleRate(t *testing.T) {
	tests := []struct {
		rate    int
		want    int
		wantErr bool
	}{
		{96000, 0, false},
		{88200, 1, false},
		{64000, 2, false},
		{48000, 3, false},
		{44100, 4, false},
		{32000, 5, false},
		{24000, 6, false},
		{22050, 7, false},
		{16000, 8, false},
		{12000, 9, false},
		{11025, 10, false},
		{8000, 11, false},

		// Arbitrary rates bin onto the nearest index.
		{44000, 4, false},
		{46008, 4, false},
		{46009, 3, false},
		{1, 11, false},
		{200000, 0, false},

		{0, 0, true},
		{-5, 0, true},
	}

	for _, tt := range tests {
		got, err := indexBySampleRate(tt.rate)
		if (err != nil) != tt.wantErr {
			t.Errorf("indexBySampleRate(%d) error = %v, wantErr %v", tt.rate, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("indexBySampleRate(%d) = %d, want %d", tt.rate, got, tt.want)
		}
	}
}

func TestSampleRateRoundTrip(t *testing.T) {
	for i, rate := range sampleRateMap {
		if got := sampleRateByIndex(i); got != rate {
			t.Errorf("sampleRateByIndex(%d) = %d, want %d", i, got, rate)
		}
		idx, err := indexBySampleRate(rate)
		if err != nil {
			t.Errorf("indexBySampleRate(%d): %v", rate, err)
			continue
		}
		if idx != i {
			t.Errorf("indexBySampleRate(%d) = %d, want %d", rate, idx, i)
		}
	}

	if got := sampleRateByIndex(12); got != 0 {
		t.Errorf("reserved index should map to 0, got %d", got)
	}
}

func TestBandInfoByIndex(t *testing.T) {
	bi, err := bandInfoByIndex(4)
	if err != nil {
		t.Fatalf("bandInfoByIndex(4): %v", err)
	}
	if bi.long.swbCount != 49 || bi.short.swbCount != 14 {
		t.Errorf("44100 band counts = (%d, %d), want (49, 14)", bi.long.swbCount, bi.short.swbCount)
	}

	if _, err := bandInfoByIndex(12); err == nil {
		t.Error("expected error for reserved index")
	}
}
