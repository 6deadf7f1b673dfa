/*
NAME
  parse_test.go

DESCRIPTION
  parse_test.go provides testing for parse.go.

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

import (
	stderrors "errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ausocean/aac/codec/aac/bits"
)

func newTestDecoder(t *testing.T) *Decoder {
	t.Helper()
	d, err := NewDecoder(44100)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestParseIcsInfoLong(t *testing.T) {
	d := newTestDecoder(t)

	w := &bitWriter{}
	w.writeBits(0, 1)           // ics_reserved_bit.
	w.writeBits(winSeqLong, 2)  // window_sequence.
	w.writeBits(winShapeKBD, 1) // window_shape.
	w.writeBits(40, 6)          // max_sfb.
	w.writeBits(0, 1)           // predictor_data_present.

	var ics icsInfo
	if err := d.parseIcsInfo(bits.NewReader(w.data), &ics); err != nil {
		t.Fatal(err)
	}

	if !ics.isLong || ics.windowCount != 1 || ics.windowLen != longSampleCount {
		t.Errorf("long window config wrong: %+v", ics)
	}
	if ics.windowShape != winShapeKBD {
		t.Errorf("windowShape = %d, want KBD", ics.windowShape)
	}
	if ics.sfbCount != 40 {
		t.Errorf("sfbCount = %d, want 40", ics.sfbCount)
	}
	if want := d.bandInfo.long.offsets[40]; ics.samplesPerWindow != want {
		t.Errorf("samplesPerWindow = %d, want %d", ics.samplesPerWindow, want)
	}
	wantGroups := []windowGroup{{winStart: 0, winLength: 1}}
	if diff := cmp.Diff(wantGroups, ics.groups, cmp.AllowUnexported(windowGroup{})); diff != "" {
		t.Errorf("groups mismatch (-want +got):\n%s", diff)
	}
}

func TestParseIcsInfoShortGrouping(t *testing.T) {
	d := newTestDecoder(t)

	w := &bitWriter{}
	w.writeBits(0, 1)
	w.writeBits(winSeq8Short, 2)
	w.writeBits(winShapeSin, 1)
	w.writeBits(10, 4)   // max_sfb.
	w.writeBits(0x37, 7) // scale_factor_grouping = 0110111.

	var ics icsInfo
	if err := d.parseIcsInfo(bits.NewReader(w.data), &ics); err != nil {
		t.Fatal(err)
	}

	if ics.isLong || ics.windowCount != 8 || ics.windowLen != shortSampleCount {
		t.Errorf("short window config wrong: %+v", ics)
	}
	wantGroups := []windowGroup{
		{winStart: 0, winLength: 1},
		{winStart: 1, winLength: 3},
		{winStart: 4, winLength: 4},
	}
	if diff := cmp.Diff(wantGroups, ics.groups, cmp.AllowUnexported(windowGroup{})); diff != "" {
		t.Errorf("groups mismatch (-want +got):\n%s", diff)
	}
}

func TestParseIcsInfoRejects(t *testing.T) {
	d := newTestDecoder(t)

	// Predictor data present in an LC stream.
	w := &bitWriter{}
	w.writeBits(0, 1)
	w.writeBits(winSeqLong, 2)
	w.writeBits(winShapeSin, 1)
	w.writeBits(10, 6)
	w.writeBits(1, 1)

	var ics icsInfo
	if err := d.parseIcsInfo(bits.NewReader(w.data), &ics); !stderrors.Is(err, ErrUnsupportedFeature) {
		t.Errorf("predictor: error = %v, want ErrUnsupportedFeature", err)
	}

	// max_sfb beyond the band table.
	w = &bitWriter{}
	w.writeBits(0, 1)
	w.writeBits(winSeqLong, 2)
	w.writeBits(winShapeSin, 1)
	w.writeBits(50, 6) // 44.1kHz long table has 49 bands.
	w.writeBits(0, 1)

	if err := d.parseIcsInfo(bits.NewReader(w.data), &ics); !stderrors.Is(err, ErrInvalidSectionLayout) {
		t.Errorf("sfb overflow: error = %v, want ErrInvalidSectionLayout", err)
	}
}

// longSectionStream writes section_data for a long window as a list
// of (codebook, length) runs.
func longSectionStream(w *bitWriter, runs [][2]int) {
	for _, run := range runs {
		w.writeBits(uint32(run[0]), 4)
		length := run[1]
		for length >= 31 {
			w.writeBits(31, 5)
			length -= 31
		}
		w.writeBits(uint32(length), 5)
	}
}

func TestParseSectionInfo(t *testing.T) {
	d := newTestDecoder(t)

	var info decodeInfo
	info.ics = longIcs(t) // 49 bands.

	w := &bitWriter{}
	longSectionStream(w, [][2]int{{1, 2}, {0, 33}, {7, 14}})

	if err := d.parseSectionInfo(bits.NewReader(w.data), &info); err != nil {
		t.Fatal(err)
	}

	secs := info.section.sections[0]
	if len(secs) != 3 {
		t.Fatalf("parsed %d sections, want 3", len(secs))
	}

	// The esc-chained 33-band run must parse as one section.
	if secs[1].sfbStart != 2 || secs[1].sfbLength != 33 || secs[1].codebook != 0 {
		t.Errorf("section 1 = %+v", secs[1])
	}

	// Sum of section lengths equals the coded band count, and the
	// interleaved sample extents tile the spectrum in order.
	total := 0
	samples := 0
	for _, s := range secs {
		total += s.sfbLength
		if s.sampleStart != samples {
			t.Errorf("section at band %d starts at sample %d, want %d", s.sfbStart, s.sampleStart, samples)
		}
		samples += s.sampleCount
	}
	if total != info.ics.sfbCount {
		t.Errorf("section lengths sum to %d, want %d", total, info.ics.sfbCount)
	}
	if samples > longSampleCount {
		t.Errorf("sections cover %d samples", samples)
	}

	// Codebook map mirrors the runs.
	if info.section.codebooks[0][0] != 1 || info.section.codebooks[0][2] != 0 || info.section.codebooks[0][48] != 7 {
		t.Error("codebook map mismatch")
	}
}

func TestParseSectionInfoOverrun(t *testing.T) {
	d := newTestDecoder(t)

	var info decodeInfo
	info.ics = longIcs(t)

	w := &bitWriter{}
	longSectionStream(w, [][2]int{{1, 30}, {1, 30}})

	err := d.parseSectionInfo(bits.NewReader(w.data), &info)
	if !stderrors.Is(err, ErrInvalidSectionLayout) {
		t.Errorf("error = %v, want ErrInvalidSectionLayout", err)
	}
}

func TestParseScalefactorInfo(t *testing.T) {
	d := newTestDecoder(t)

	var info decodeInfo
	info.ics = longIcs(t)
	info.globalGain = 100
	info.ics.sfbCount = 3
	info.section.codebooks[0][0] = 1
	info.section.codebooks[0][1] = hcbZero
	info.section.codebooks[0][2] = 2

	w := &bitWriter{}
	w.writeBits(sfCodeword(t, 1))  // Band 0: 101.
	w.writeBits(sfCodeword(t, -3)) // Band 2: 98. Band 1 reads nothing.

	if err := d.parseScalefactorInfo(bits.NewReader(w.data), &info); err != nil {
		t.Fatal(err)
	}

	if got := info.sf.scalefactors[0][0]; got != 101 {
		t.Errorf("band 0 scalefactor = %d, want 101", got)
	}
	if got := info.sf.scalefactors[0][2]; got != 98 {
		t.Errorf("band 2 scalefactor = %d, want 98", got)
	}
}

func TestParseScalefactorOverflow(t *testing.T) {
	d := newTestDecoder(t)

	var info decodeInfo
	info.ics = longIcs(t)
	info.ics.sfbCount = 1
	info.globalGain = 250
	info.section.codebooks[0][0] = 1

	w := &bitWriter{}
	w.writeBits(sfCodeword(t, 10))

	err := d.parseScalefactorInfo(bits.NewReader(w.data), &info)
	if !stderrors.Is(err, ErrInvalidScalefactor) {
		t.Errorf("error = %v, want ErrInvalidScalefactor", err)
	}
}

func TestParseScalefactorIntensity(t *testing.T) {
	d := newTestDecoder(t)

	var info decodeInfo
	info.ics = longIcs(t)
	info.ics.sfbCount = 2
	info.globalGain = 100
	info.section.codebooks[0][0] = hcbIntensity
	info.section.codebooks[0][1] = hcbIntensity2

	w := &bitWriter{}
	w.writeBits(sfCodeword(t, 4))  // Position 4.
	w.writeBits(sfCodeword(t, -6)) // Position -2.

	if err := d.parseScalefactorInfo(bits.NewReader(w.data), &info); err != nil {
		t.Fatal(err)
	}

	if got := info.sf.scalefactors[0][0]; got != 132 {
		t.Errorf("band 0 stereo position = %d, want 132", got)
	}
	if got := info.sf.scalefactors[0][1]; got != 126 {
		t.Errorf("band 1 stereo position = %d, want 126", got)
	}
}

func TestParseTnsOrderTooHigh(t *testing.T) {
	d := newTestDecoder(t)

	var info decodeInfo
	info.ics = longIcs(t)

	w := &bitWriter{}
	w.writeBits(1, 1)  // tns_data_present.
	w.writeBits(1, 2)  // One filter in window 0.
	w.writeBits(0, 1)  // 3-bit coefficients.
	w.writeBits(5, 6)  // Band length.
	w.writeBits(13, 5) // Order 13: above the LC long limit of 12.

	err := d.parseTnsInfo(bits.NewReader(w.data), &info)
	if !stderrors.Is(err, ErrInvalidTnsOrder) {
		t.Errorf("error = %v, want ErrInvalidTnsOrder", err)
	}
}

func TestParseTnsCoefficients(t *testing.T) {
	d := newTestDecoder(t)

	var info decodeInfo
	info.ics = longIcs(t)

	w := &bitWriter{}
	w.writeBits(1, 1)   // tns_data_present.
	w.writeBits(1, 2)   // One filter.
	w.writeBits(1, 1)   // 4-bit coefficients.
	w.writeBits(8, 6)   // Band length.
	w.writeBits(2, 5)   // Order 2.
	w.writeBits(1, 1)   // Downward.
	w.writeBits(0, 1)   // No compression.
	w.writeBits(0x9, 4) // -7 in 4-bit two's complement.
	w.writeBits(0x3, 4) // 3.

	if err := d.parseTnsInfo(bits.NewReader(w.data), &info); err != nil {
		t.Fatal(err)
	}

	f := info.tns.filters[0][0]
	if f.sfbCount != 8 || f.order != 2 || !f.downward {
		t.Errorf("filter = %+v", f)
	}
	if f.coefficients[0] != -7 || f.coefficients[1] != 3 {
		t.Errorf("coefficients = (%d, %d), want (-7, 3)", f.coefficients[0], f.coefficients[1])
	}
	if info.tns.coefBits[0] != 4 {
		t.Errorf("coefBits = %d, want 4", info.tns.coefBits[0])
	}
}

func TestParsePulseWithShortWindows(t *testing.T) {
	d := newTestDecoder(t)

	var info decodeInfo
	ics := longIcs(t)
	ics.isLong = false
	info.ics = ics

	w := &bitWriter{}
	w.writeBits(1, 1) // pulse_data_present.

	if err := d.parsePulseInfo(bits.NewReader(w.data), &info); err == nil {
		t.Error("expected error for pulse data with short windows")
	}
}

func TestDeinterleaveShort(t *testing.T) {
	bi, err := bandInfoByIndex(4)
	if err != nil {
		t.Fatal(err)
	}

	ics := &icsInfo{
		isLong:      false,
		sfbCount:    bi.short.swbCount,
		swbCount:    bi.short.swbCount,
		windowLen:   shortSampleCount,
		windowCount: 8,
		groups:      []windowGroup{{winStart: 0, winLength: 8}},
		offsets:     bi.short.offsets,
	}

	// Interleaved order with one group of eight windows is
	// band-major: band 0 of windows 0..7, then band 1, and so on.
	var quant [longSampleCount]int16
	for i := range quant {
		quant[i] = int16(i)
	}
	deinterleaveShort(ics, quant[:])

	// Window w, band b must hold the run that was at position
	// (bandStart*8 + w*width).
	off := ics.offsets
	for w := 0; w < 8; w++ {
		for b := 0; b < ics.sfbCount; b++ {
			width := off[b+1] - off[b]
			src := off[b]*8 + w*width
			for k := 0; k < width; k++ {
				got := quant[w*shortSampleCount+off[b]+k]
				if got != int16(src+k) {
					t.Fatalf("window %d band %d bin %d = %d, want %d", w, b, k, got, src+k)
				}
			}
		}
	}
}

func TestParseSpectralData(t *testing.T) {
	d := newTestDecoder(t)

	var info decodeInfo
	info.ics = longIcs(t)
	info.ics.sfbCount = 1 // Band 0 is 4 samples wide: one quad.
	info.section.sections = [][]section{{
		{sfbStart: 0, sfbLength: 1, sampleStart: 0, sampleCount: 4, codebook: 1},
	}}

	e := &huffSpectrum1.entries[0]
	w := &bitWriter{}
	w.writeBits(e.code, uint(e.len))

	var quant [longSampleCount]int16
	if err := d.parseSpectralData(bits.NewReader(w.data), &info, quant[:]); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 4; i++ {
		if quant[i] != int16(e.vals[i]) {
			t.Errorf("quant[%d] = %d, want %d", i, quant[i], e.vals[i])
		}
	}
}

func TestParseProgramConfig(t *testing.T) {
	d := newTestDecoder(t)

	w := &bitWriter{}
	w.writeBits(3, 4) // element_instance_tag.
	w.writeBits(1, 2) // object_type (LC).
	w.writeBits(4, 4) // sampling_frequency_index.
	w.writeBits(1, 4) // num_front_channel_elements.
	w.writeBits(0, 4) // num_side_channel_elements.
	w.writeBits(0, 4) // num_back_channel_elements.
	w.writeBits(0, 2) // num_lfe_channel_elements.
	w.writeBits(0, 3) // num_assoc_data_elements.
	w.writeBits(0, 4) // num_valid_cc_elements.
	w.writeBits(0, 1) // mono_mixdown_present.
	w.writeBits(0, 1) // stereo_mixdown_present.
	w.writeBits(0, 1) // matrix_mixdown_idx_present.
	w.writeBits(1, 1) // front element: is_cpe.
	w.writeBits(5, 4) // front element: instance.
	// Byte alignment, then comment.
	for w.n%8 != 0 {
		w.writeBits(0, 1)
	}
	w.writeBits(2, 8) // comment_field_bytes.
	w.writeBits('h', 8)
	w.writeBits('i', 8)

	pce, err := d.parseProgramConfig(bits.NewReader(w.data))
	if err != nil {
		t.Fatal(err)
	}

	if pce.instance != 3 || pce.profile != 1 || pce.sampleRateIndex != 4 {
		t.Errorf("pce header = %+v", pce)
	}
	if len(pce.frontElements) != 1 || !pce.frontElements[0].isPair || pce.frontElements[0].instance != 5 {
		t.Errorf("front elements = %+v", pce.frontElements)
	}
	if pce.comment != "hi" {
		t.Errorf("comment = %q, want %q", pce.comment, "hi")
	}
}
