/*
NAME
  tables.go

DESCRIPTION
  tables.go contains the static constants of the decoder: sample rate
  maps, scalefactor band offset tables for long and short windows at
  each sample rate index, and the per-index TNS band limits.

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

import "github.com/pkg/errors"

// Spectral and transform dimensions.
const (
	longSampleCount  = 1024 // Spectral coefficients per long window.
	shortSampleCount = 128  // Spectral coefficients per short window.
	longWindowSize   = 2048 // IMDCT output length, long.
	shortWindowSize  = 256  // IMDCT output length, short.
	halfLong         = 1024 // Half-window length, long.
	halfShort        = 128  // Half-window length, short.

	maxSfbCount     = 51 // Largest scalefactor band count of any table.
	maxWindowCount  = 8
	maxWindowGroups = 8
	maxPulseCount   = 4

	maxTnsFilterCount = 3
	maxTnsOrderLongLC = 12
	maxTnsOrderShort  = 7
)

// Syntactic element identifiers.
const (
	idSCE = 0x0 // Single channel element.
	idCPE = 0x1 // Channel pair element.
	idCCE = 0x2 // Coupling channel element.
	idLFE = 0x3 // Low frequency effect element.
	idDSE = 0x4 // Data stream element.
	idPCE = 0x5 // Program config element.
	idFIL = 0x6 // Fill element.
	idEND = 0x7 // End of raw data block.
)

// Special Huffman codebook numbers.
const (
	hcbZero       = 0
	hcbFirstPair  = 5
	hcbEsc        = 11
	hcbNoise      = 13 // PNS.
	hcbIntensity2 = 14
	hcbIntensity  = 15
)

// Window sequences (Table 44) and shapes.
const (
	winSeqLong      = 0x0
	winSeqLongStart = 0x1
	winSeq8Short    = 0x2
	winSeqLongStop  = 0x3

	winShapeSin = 0x0
	winShapeKBD = 0x1
)

// M/S mask types.
const (
	msMaskNone     = 0
	msMaskSubband  = 1
	msMaskAll      = 2
	msMaskReserved = 3
)

// ErrSampleRate is returned when a sample rate cannot be mapped onto a
// sample rate index.
var ErrSampleRate = errors.New("unsupported sample rate")

// Table 35: index to sample rate in Hz. Indices 12..15 are reserved.
var sampleRateMap = [12]int{
	96000, 88200, 64000, 48000,
	44100, 32000, 24000, 22050,
	16000, 12000, 11025, 8000,
}

// Arbitrary rates are binned into the nearest index using the min/max
// windows of Table 38, ordered by ascending rate for binary search.
var sampleRateBins = []struct {
	min, max int
	index    int
}{
	{0, 9390, 11},
	{9391, 11501, 10},
	{11502, 13855, 9},
	{13856, 18782, 8},
	{18783, 23003, 7},
	{23004, 27712, 6},
	{27713, 37565, 5},
	{37566, 46008, 4},
	{46009, 55425, 3},
	{55426, 75131, 2},
	{75132, 92016, 1},
	{92017, 1 << 31, 0},
}

// sampleRateByIndex returns the rate for a sample rate index, or zero
// for a reserved index.
func sampleRateByIndex(index int) int {
	if index < 0 || index >= len(sampleRateMap) {
		return 0
	}
	return sampleRateMap[index]
}

// indexBySampleRate bins an arbitrary rate in Hz onto a sample rate
// index by binary search over the Table 38 windows.
func indexBySampleRate(rate int) (int, error) {
	if rate <= 0 {
		return 0, errors.Wrapf(ErrSampleRate, "%d Hz", rate)
	}
	lo, hi := 0, len(sampleRateBins)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		bin := sampleRateBins[mid]
		switch {
		case rate < bin.min:
			hi = mid - 1
		case rate > bin.max:
			lo = mid + 1
		default:
			return bin.index, nil
		}
	}
	return 0, errors.Wrapf(ErrSampleRate, "%d Hz", rate)
}

// bandOffsets holds the scalefactor window band offsets for one window
// length. The final entry is the total transform length so that band
// widths are offsets[b+1]-offsets[b].
type bandOffsets struct {
	swbCount int
	offsets  []int
}

// bandInfo pairs the long and short window band tables for one sample
// rate index.
type bandInfo struct {
	long  *bandOffsets
	short *bandOffsets
}

// Table 45.
var sfbLong44100To48000 = bandOffsets{
	swbCount: 49,
	offsets: []int{0, 4, 8, 12, 16, 20, 24, 28, 32, 36, 40, 48, 56, 64, 72,
		80, 88, 96, 108, 120, 132, 144, 160, 176, 196, 216, 240, 264, 292,
		320, 352, 384, 416, 448, 480, 512, 544, 576, 608, 640, 672, 704, 736,
		768, 800, 832, 864, 896, 928, 1024},
}

// Table 46.
var sfbShort32000To48000 = bandOffsets{
	swbCount: 14,
	offsets:  []int{0, 4, 8, 12, 16, 20, 28, 36, 44, 56, 68, 80, 96, 112, 128},
}

// Table 47.
var sfbLong32000 = bandOffsets{
	swbCount: 51,
	offsets: []int{0, 4, 8, 12, 16, 20, 24, 28, 32, 36, 40, 48, 56, 64, 72,
		80, 88, 96, 108, 120, 132, 144, 160, 176, 196, 216, 240, 264, 292,
		320, 352, 384, 416, 448, 480, 512, 544, 576, 608, 640, 672, 704, 736,
		768, 800, 832, 864, 896, 928, 960, 992, 1024},
}

// Table 48.
var sfbLong8000 = bandOffsets{
	swbCount: 40,
	offsets: []int{0, 12, 24, 36, 48, 60, 72, 84, 96, 108, 120, 132, 144,
		156, 172, 188, 204, 220, 236, 252, 268, 288, 308, 328, 348, 372, 396,
		420, 448, 476, 508, 544, 580, 620, 664, 712, 764, 820, 880, 944, 1024},
}

// Table 49.
var sfbShort8000 = bandOffsets{
	swbCount: 15,
	offsets:  []int{0, 4, 8, 12, 16, 20, 24, 28, 36, 44, 52, 60, 72, 88, 108, 128},
}

// Table 50.
var sfbLong11025To16000 = bandOffsets{
	swbCount: 43,
	offsets: []int{0, 8, 16, 24, 32, 40, 48, 56, 64, 72, 80, 88, 100, 112,
		124, 136, 148, 160, 172, 184, 196, 212, 228, 244, 260, 280, 300, 320,
		344, 368, 396, 424, 456, 492, 532, 572, 616, 664, 716, 772, 832, 896,
		960, 1024},
}

// Table 51.
var sfbShort11025To16000 = bandOffsets{
	swbCount: 15,
	offsets:  []int{0, 4, 8, 12, 16, 20, 24, 28, 32, 40, 48, 60, 72, 88, 108, 128},
}

// Table 52.
var sfbLong22050To24000 = bandOffsets{
	swbCount: 47,
	offsets: []int{0, 4, 8, 12, 16, 20, 24, 28, 32, 36, 40, 44, 52, 60, 68,
		76, 84, 92, 100, 108, 116, 124, 136, 148, 160, 172, 188, 204, 220,
		240, 260, 284, 308, 336, 364, 396, 432, 468, 508, 552, 600, 652, 704,
		768, 832, 896, 960, 1024},
}

// Table 53.
var sfbShort22050To24000 = bandOffsets{
	swbCount: 15,
	offsets:  []int{0, 4, 8, 12, 16, 20, 24, 28, 36, 44, 52, 64, 76, 92, 108, 128},
}

// Table 54.
var sfbLong64000 = bandOffsets{
	swbCount: 47,
	offsets: []int{0, 4, 8, 12, 16, 20, 24, 28, 32, 36, 40, 44, 48, 52, 56,
		64, 72, 80, 88, 100, 112, 124, 140, 156, 172, 192, 216, 240, 268,
		304, 344, 384, 424, 464, 504, 544, 584, 624, 664, 704, 744, 784, 824,
		864, 904, 944, 984, 1024},
}

// Table 55.
var sfbShort64000 = bandOffsets{
	swbCount: 12,
	offsets:  []int{0, 4, 8, 12, 16, 20, 24, 32, 40, 48, 64, 92, 128},
}

// Table 56.
var sfbLong88200To96000 = bandOffsets{
	swbCount: 41,
	offsets: []int{0, 4, 8, 12, 16, 20, 24, 28, 32, 36, 40, 44, 48, 52, 56,
		64, 72, 80, 88, 96, 108, 120, 132, 144, 156, 172, 188, 212, 240, 276,
		320, 384, 448, 512, 576, 640, 704, 768, 832, 896, 960, 1024},
}

// Table 57.
var sfbShort88200To96000 = bandOffsets{
	swbCount: 12,
	offsets:  []int{0, 4, 8, 12, 16, 20, 24, 32, 40, 48, 64, 92, 128},
}

// bandInfoMap maps a sample rate index to its band tables.
var bandInfoMap = [12]bandInfo{
	{&sfbLong88200To96000, &sfbShort88200To96000}, // 96000
	{&sfbLong88200To96000, &sfbShort88200To96000}, // 88200
	{&sfbLong64000, &sfbShort64000},               // 64000
	{&sfbLong44100To48000, &sfbShort32000To48000}, // 48000
	{&sfbLong44100To48000, &sfbShort32000To48000}, // 44100
	{&sfbLong32000, &sfbShort32000To48000},        // 32000
	{&sfbLong22050To24000, &sfbShort22050To24000}, // 24000
	{&sfbLong22050To24000, &sfbShort22050To24000}, // 22050
	{&sfbLong11025To16000, &sfbShort11025To16000}, // 16000
	{&sfbLong11025To16000, &sfbShort11025To16000}, // 12000
	{&sfbLong11025To16000, &sfbShort11025To16000}, // 11025
	{&sfbLong8000, &sfbShort8000},                 // 8000
}

// bandInfoByIndex returns the scalefactor band tables for a sample
// rate index.
func bandInfoByIndex(index int) (bandInfo, error) {
	if index < 0 || index >= len(bandInfoMap) {
		return bandInfo{}, errors.Wrapf(ErrSampleRate, "reserved sample rate index %d", index)
	}
	return bandInfoMap[index], nil
}

// TNS band limits per sample rate index (Table 8.9).
var tnsMaxBandsLong = [12]int{31, 31, 34, 40, 42, 51, 46, 46, 42, 42, 42, 39}

var tnsMaxBandsShort = [12]int{9, 9, 10, 14, 14, 14, 14, 14, 14, 14, 14, 14}
