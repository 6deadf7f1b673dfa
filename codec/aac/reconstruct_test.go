/*
NAME
  reconstruct_test.go

DESCRIPTION
  reconstruct_test.go provides testing for reconstruct.go.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2025 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package aac

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

// longIcs returns an ICS describing a full-range long window at
// 44100 Hz.
func longIcs(t *testing.T) *icsInfo {
	t.Helper()
	bi, err := bandInfoByIndex(4)
	if err != nil {
		t.Fatal(err)
	}
	return &icsInfo{
		windowSequence:   winSeqLong,
		windowShape:      winShapeSin,
		isLong:           true,
		sfbCount:         bi.long.swbCount,
		swbCount:         bi.long.swbCount,
		samplesPerWindow: longSampleCount,
		windowLen:        longSampleCount,
		windowCount:      1,
		groups:           []windowGroup{{winStart: 0, winLength: 1}},
		offsets:          bi.long.offsets,
	}
}

func TestDequantize(t *testing.T) {
	quant := []int16{0, 1, -1, 8, -8, 2}
	out := make([]float64, len(quant))
	dequantize(quant, out)

	want := []float64{0, 1, -1, 16, -16, math.Pow(2, 4.0/3.0)}
	if !floats.EqualApprox(out, want, 1e-12) {
		t.Errorf("dequantize = %v, want %v", out, want)
	}
}

// TestDequantizeOddSymmetry checks dequant(-x) = -dequant(x).
func TestDequantizeOddSymmetry(t *testing.T) {
	for _, q := range []int16{1, 3, 100, 8191} {
		pos := make([]float64, 1)
		neg := make([]float64, 1)
		dequantize([]int16{q}, pos)
		dequantize([]int16{-q}, neg)
		if pos[0] != -neg[0] {
			t.Errorf("dequant(%d) = %g, dequant(%d) = %g", q, pos[0], -q, neg[0])
		}
	}
}

func TestRescaleGain(t *testing.T) {
	ics := longIcs(t)

	var info decodeInfo
	info.ics = ics
	for sfb := 0; sfb < ics.sfbCount; sfb++ {
		info.section.codebooks[0][sfb] = 1
		info.sf.scalefactors[0][sfb] = 100 // Unity gain.
	}
	// Band 1 at double gain; band 2 inactive.
	info.sf.scalefactors[0][1] = 104
	info.section.codebooks[0][2] = hcbZero

	spec := make([]float64, longSampleCount)
	for i := range spec {
		spec[i] = 1
	}
	rescale(&info, spec)

	off := ics.offsets
	if spec[off[0]] != 1 {
		t.Errorf("unity band scaled to %g", spec[off[0]])
	}
	if spec[off[1]] != 2 {
		t.Errorf("sf 104 band scaled to %g, want 2", spec[off[1]])
	}
	if spec[off[2]] != 1 {
		t.Errorf("ZERO band scaled to %g, want 1", spec[off[2]])
	}
}

// TestMidSideFullMask checks (l, r) <- (l+r, l-r) over the whole
// spectrum with an ALL mask.
func TestMidSideFullMask(t *testing.T) {
	ics := longIcs(t)

	var info decodeInfo
	info.ics = ics
	for sfb := 0; sfb < ics.sfbCount; sfb++ {
		info.section.codebooks[0][sfb] = 1
	}
	mask := &msMaskInfo{typ: msMaskAll}

	left := make([]float64, longSampleCount)
	right := make([]float64, longSampleCount)
	for i := range left {
		left[i] = float64(i)
		right[i] = 2 * float64(i)
	}

	applyMidSide(&info, mask, left, right)

	for i := range left {
		x, y := float64(i), 2*float64(i)
		if left[i] != x+y || right[i] != x-y {
			t.Fatalf("sample %d: got (%g, %g), want (%g, %g)", i, left[i], right[i], x+y, x-y)
		}
	}
}

// TestMidSideSubbandMask checks that only flagged bands are combined
// and intensity bands are left alone.
func TestMidSideSubbandMask(t *testing.T) {
	ics := longIcs(t)

	var info decodeInfo
	info.ics = ics
	for sfb := 0; sfb < ics.sfbCount; sfb++ {
		info.section.codebooks[0][sfb] = 1
	}
	info.section.codebooks[0][2] = hcbIntensity

	mask := &msMaskInfo{typ: msMaskSubband}
	mask.flags[0][1] = true
	mask.flags[0][2] = true // Intensity band: must stay untouched.

	left := make([]float64, longSampleCount)
	right := make([]float64, longSampleCount)
	for i := range left {
		left[i] = 3
		right[i] = 1
	}

	applyMidSide(&info, mask, left, right)

	off := ics.offsets
	if left[off[0]] != 3 || right[off[0]] != 1 {
		t.Error("unflagged band modified")
	}
	if left[off[1]] != 4 || right[off[1]] != 2 {
		t.Errorf("flagged band = (%g, %g), want (4, 2)", left[off[1]], right[off[1]])
	}
	if left[off[2]] != 3 || right[off[2]] != 1 {
		t.Error("intensity band modified by M/S")
	}
}

func TestIntensityStereo(t *testing.T) {
	ics := longIcs(t)

	var info decodeInfo
	info.ics = ics
	info.section.codebooks[0][0] = hcbIntensity
	info.section.codebooks[0][1] = hcbIntensity2
	info.sf.scalefactors[0][0] = 128 // Position 0: unit scale.
	info.sf.scalefactors[0][1] = 132 // Position 4: scale 0.5.

	mask := &msMaskInfo{typ: msMaskNone}

	left := make([]float64, longSampleCount)
	right := make([]float64, longSampleCount)
	for i := range left {
		left[i] = 8
	}

	applyIntensity(&info, mask, left, right)

	off := ics.offsets
	if right[off[0]] != 8 {
		t.Errorf("position 0 band: right = %g, want 8", right[off[0]])
	}
	if right[off[1]] != -4 {
		t.Errorf("INTENSITY2 position 4 band: right = %g, want -4", right[off[1]])
	}
	if right[off[2]] != 0 {
		t.Errorf("non-intensity band: right = %g, want 0", right[off[2]])
	}
}

// TestIntensityPolarityInversion checks that a subband M/S flag on an
// intensity band flips the polarity.
func TestIntensityPolarityInversion(t *testing.T) {
	ics := longIcs(t)

	var info decodeInfo
	info.ics = ics
	info.section.codebooks[0][0] = hcbIntensity
	info.sf.scalefactors[0][0] = 128

	mask := &msMaskInfo{typ: msMaskSubband}
	mask.flags[0][0] = true

	left := make([]float64, longSampleCount)
	right := make([]float64, longSampleCount)
	left[0] = 5

	applyIntensity(&info, mask, left, right)

	if right[0] != -5 {
		t.Errorf("right[0] = %g, want -5", right[0])
	}
}

// TestTnsFilterUpwards checks the § 14.4 worked example: order 1,
// lpc[1] = 0.5 over an impulse.
func TestTnsFilterUpwards(t *testing.T) {
	coef := []float64{1, 0, 0, 0}
	tnsFilterUpwards(coef, len(coef), 1, []float64{1, 0.5})

	want := []float64{1, -0.5, 0.25, -0.125}
	if !floats.EqualApprox(coef, want, 1e-15) {
		t.Errorf("filtered = %v, want %v", coef, want)
	}
}

func TestTnsFilterDownwards(t *testing.T) {
	coef := []float64{0, 0, 0, 1}
	tnsFilterDownwards(coef, len(coef), 1, []float64{1, 0.5})

	want := []float64{-0.125, 0.25, -0.5, 1}
	if !floats.EqualApprox(coef, want, 1e-15) {
		t.Errorf("filtered = %v, want %v", coef, want)
	}
}

// TestTransformTnsCoefficients checks the inverse quantization of a
// single reflection coefficient: with 4-bit coefficients the
// quantizer step is pi/15, so quant 1 gives sin(pi/15).
func TestTransformTnsCoefficients(t *testing.T) {
	lpc := make([]float64, 2)
	transformTnsCoefficients([]int8{1}, lpc, 4, 1)

	if lpc[0] != 1 {
		t.Errorf("lpc[0] = %g, want 1", lpc[0])
	}
	if want := math.Sin(math.Pi / 15); math.Abs(lpc[1]-want) > 1e-15 {
		t.Errorf("lpc[1] = %g, want %g", lpc[1], want)
	}
}

// TestTransformTnsZero checks that zero reflection coefficients give
// a pass-through filter.
func TestTransformTnsZero(t *testing.T) {
	lpc := make([]float64, 4)
	transformTnsCoefficients([]int8{0, 0, 0}, lpc, 3, 3)

	if lpc[0] != 1 || lpc[1] != 0 || lpc[2] != 0 || lpc[3] != 0 {
		t.Errorf("lpc = %v, want [1 0 0 0]", lpc)
	}
}

// TestApplyTnsRange checks that a filter covering the top bands only
// touches samples inside its clamped range.
func TestApplyTnsRange(t *testing.T) {
	ics := longIcs(t)

	var info decodeInfo
	info.ics = ics
	info.tns.enabled = true
	info.tns.filterCount[0] = 1
	info.tns.coefBits[0] = 4
	info.tns.filters[0][0] = tnsFilter{sfbCount: 10, order: 1}
	info.tns.filters[0][0].coefficients[0] = 1

	spec := make([]float64, longSampleCount)
	for i := range spec {
		spec[i] = 1
	}

	applyTns(&info, 4, spec)

	// At 44.1kHz the long-window TNS limit is band 42, so a 10-band
	// filter from the top (49) is clamped to [39, 42).
	start := ics.offsets[39]
	end := ics.offsets[42]
	for i := 0; i < start; i++ {
		if spec[i] != 1 {
			t.Fatalf("sample %d below filter range modified", i)
		}
	}
	changed := false
	for i := start + 1; i < end; i++ {
		if spec[i] != 1 {
			changed = true
			break
		}
	}
	if !changed {
		t.Error("filter range not modified")
	}
	for i := end; i < longSampleCount; i++ {
		if spec[i] != 1 {
			t.Fatalf("sample %d above filter range modified", i)
		}
	}
}
