/*
NAME
  reconstruct.go

DESCRIPTION
  reconstruct.go provides the spectral reconstruction passes that turn
  decoded quantized coefficients into the spectrum handed to the
  filterbank: dequantization, scalefactor rescaling, M/S and intensity
  joint stereo, and temporal noise shaping.

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

import "math"

// The dequantization exponent of § 10.3.
const dequantPower = 4.0 / 3.0

// dequantize expands quantized coefficients: sign(q)*|q|^(4/3).
func dequantize(quant []int16, out []float64) {
	for i, q := range quant {
		if q == 0 {
			out[i] = 0
			continue
		}
		v := math.Pow(math.Abs(float64(q)), dequantPower)
		if q < 0 {
			v = -v
		}
		out[i] = v
	}
}

// rescale applies the per-band gain 2^(0.25*(sf-100)) to every window
// of every group, skipping ZERO, intensity and noise bands (§ 11.3.3).
func rescale(info *decodeInfo, spec []float64) {
	ics := info.ics
	off := ics.offsets

	for g, grp := range ics.groups {
		for sfb := 0; sfb < ics.sfbCount; sfb++ {
			switch info.section.codebooks[g][sfb] {
			case hcbZero, hcbNoise, hcbIntensity, hcbIntensity2:
				continue
			}

			gain := math.Pow(2, 0.25*(float64(info.sf.scalefactors[g][sfb])-100))

			for w := 0; w < grp.winLength; w++ {
				base := (grp.winStart + w) * ics.windowLen
				for k := off[sfb]; k < off[sfb+1]; k++ {
					spec[base+k] *= gain
				}
			}
		}
	}
}

// applyMidSide undoes M/S joint stereo on a common-window channel
// pair: (l, r) <- (l+r, l-r) for every masked band that is not coded
// as intensity.
func applyMidSide(info *decodeInfo, msMask *msMaskInfo, left, right []float64) {
	if msMask.typ == msMaskNone {
		return
	}
	ics := info.ics
	off := ics.offsets

	for g, grp := range ics.groups {
		for sfb := 0; sfb < ics.sfbCount; sfb++ {
			switch info.section.codebooks[g][sfb] {
			case hcbIntensity, hcbIntensity2:
				continue
			}
			if msMask.typ == msMaskSubband && !msMask.flags[g][sfb] {
				continue
			}

			for w := 0; w < grp.winLength; w++ {
				base := (grp.winStart + w) * ics.windowLen
				for k := off[sfb]; k < off[sfb+1]; k++ {
					l := left[base+k]
					r := right[base+k]
					left[base+k] = l + r
					right[base+k] = l - r
				}
			}
		}
	}
}

// applyIntensity reconstructs the right channel of intensity-stereo
// bands from the left channel and the coded stereo position. An M/S
// subband flag on the band inverts the intensity polarity.
func applyIntensity(info *decodeInfo, msMask *msMaskInfo, left, right []float64) {
	ics := info.ics
	off := ics.offsets

	for g, grp := range ics.groups {
		for sfb := 0; sfb < ics.sfbCount; sfb++ {
			cb := info.section.codebooks[g][sfb]
			if cb != hcbIntensity && cb != hcbIntensity2 {
				continue
			}

			polarity := 1.0
			if cb == hcbIntensity2 {
				polarity = -1
			}
			if msMask.typ == msMaskSubband && msMask.flags[g][sfb] {
				polarity = -polarity
			}

			stereoPos := float64(info.sf.scalefactors[g][sfb]) - 128
			scale := math.Pow(0.5, 0.25*stereoPos) * polarity

			for w := 0; w < grp.winLength; w++ {
				base := (grp.winStart + w) * ics.windowLen
				for k := off[sfb]; k < off[sfb+1]; k++ {
					right[base+k] = left[base+k] * scale
				}
			}
		}
	}
}

// transformTnsCoefficients inverse-quantizes the coded reflection
// coefficients and converts them to LPC form (§ 14.3). lpc must have
// room for order+1 values; lpc[0] is 1.
func transformTnsCoefficients(quant []int8, lpc []float64, bitCount, order int) {
	iqfac := (float64(int(1)<<(bitCount-1)) - 0.5) / (math.Pi / 2)
	iqfacM := (float64(int(1)<<(bitCount-1)) + 0.5) / (math.Pi / 2)

	dq := make([]float64, order)
	for i := 0; i < order; i++ {
		f := iqfac
		if quant[i] < 0 {
			f = iqfacM
		}
		dq[i] = math.Sin(float64(quant[i]) / f)
	}

	// Reflection to LPC by the standard's iterative update.
	lpc[0] = 1
	b := make([]float64, order+1)
	for o := 1; o <= order; o++ {
		for i := 1; i < o; i++ {
			b[i] = lpc[i] + dq[o-1]*lpc[o-i]
		}
		for i := 1; i < o; i++ {
			lpc[i] = b[i]
		}
		lpc[o] = dq[o-1]
	}
}

// tnsFilterUpwards runs the all-pole filter y[n] = x[n] - sum
// lpc[i]*y[n-i] from low to high index over coef[0:count].
func tnsFilterUpwards(coef []float64, count, order int, lpc []float64) {
	for n := 0; n < count; n++ {
		v := coef[n]
		for i := 1; i <= order && i <= n; i++ {
			v -= lpc[i] * coef[n-i]
		}
		coef[n] = v
	}
}

// tnsFilterDownwards runs the same filter from high to low index.
func tnsFilterDownwards(coef []float64, count, order int, lpc []float64) {
	for n := count - 1; n >= 0; n-- {
		v := coef[n]
		for i := 1; i <= order && n+i < count; i++ {
			v -= lpc[i] * coef[n+i]
		}
		coef[n] = v
	}
}

// applyTns runs every coded TNS filter over its band range (§ 14.4).
// Filters apply per window, from the top band downward: each filter
// occupies filter.sfbCount bands below the previous filter's start.
func applyTns(info *decodeInfo, srIndex int, spec []float64) {
	if !info.tns.enabled {
		return
	}
	ics := info.ics

	maxBands := tnsMaxBandsLong[srIndex]
	swbCount := ics.swbCount
	if !ics.isLong {
		maxBands = tnsMaxBandsShort[srIndex]
	}

	for w := 0; w < ics.windowCount; w++ {
		top := swbCount
		bits := int(info.tns.coefBits[w])

		for f := 0; f < int(info.tns.filterCount[w]); f++ {
			filter := &info.tns.filters[w][f]
			order := int(filter.order)

			sfbEnd := top
			top -= int(filter.sfbCount)
			sfbStart := top
			if sfbStart < 0 {
				sfbStart = 0
			}

			if order == 0 {
				continue
			}

			// Clamp the band range by the per-rate TNS limit and the
			// coded band count.
			sfbStart = minInt(sfbStart, maxBands, ics.sfbCount)
			sfbEnd = minInt(sfbEnd, maxBands, ics.sfbCount)

			start := ics.offsets[sfbStart]
			end := ics.offsets[sfbEnd]
			if end <= start {
				continue
			}

			lpc := make([]float64, order+1)
			transformTnsCoefficients(filter.coefficients[:order], lpc, bits, order)

			window := spec[w*ics.windowLen : (w+1)*ics.windowLen]
			if filter.downward {
				tnsFilterDownwards(window[start:end], end-start, order, lpc)
			} else {
				tnsFilterUpwards(window[start:end], end-start, order, lpc)
			}
		}
	}
}

func minInt(vs ...int) int {
	m := vs[0]
	for _, v := range vs[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
