/*
NAME
  parse.go

DESCRIPTION
  parse.go provides parsing of the syntactic elements inside a raw
  data block: ICS info, M/S mask, section data, scalefactor data,
  pulse data, TNS data, spectral data and the program config element.

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
	"github.com/pkg/errors"

	"github.com/ausocean/aac/codec/aac/bits"
)

// Errors surfaced from block parsing. Callers discard the current
// block and resynchronize on the ADTS stream.
var (
	ErrUnsupportedProfile   = errors.New("unsupported AAC profile")
	ErrUnsupportedFeature   = errors.New("unsupported bitstream feature")
	ErrInvalidScalefactor   = errors.New("scalefactor out of range")
	ErrInvalidSectionLayout = errors.New("invalid section layout")
	ErrInvalidTnsOrder      = errors.New("TNS filter order out of range")
	ErrInvalidCodebook      = errors.New("invalid codebook number")
	ErrInvalidElement       = errors.New("invalid syntactic element")
)

// windowGroup is a run of short windows sharing scalefactors.
type windowGroup struct {
	winStart  int
	winLength int
}

// icsInfo describes the window configuration of one individual
// channel stream.
type icsInfo struct {
	windowSequence int
	windowShape    int
	isLong         bool

	sfbCount         int // Coded scalefactor band count (max_sfb).
	swbCount         int // Band count of the table in use.
	samplesPerWindow int // Offset of band sfbCount in the table.
	windowLen        int // Transform length per window: 1024 or 128.

	windowCount int // 1 or 8.
	groups      []windowGroup

	offsets []int // Band offsets for the window length in use.
}

// msMaskInfo is the M/S joint stereo mask of a common-window CPE.
type msMaskInfo struct {
	typ   int
	flags [maxWindowGroups][maxSfbCount]bool
}

// section is a run of scalefactor bands sharing one codebook.
type section struct {
	sfbStart    int
	sfbLength   int
	sampleStart int // Interleaved sample index within the block.
	sampleCount int
	codebook    int
}

// sectionInfo holds the per-group sections and the per-band codebook
// map they imply.
type sectionInfo struct {
	sections  [][]section
	codebooks [maxWindowGroups][maxSfbCount]uint8
}

// scalefactorInfo carries one scalefactor per group and band. For
// intensity bands the slot holds the stereo position biased by 128.
type scalefactorInfo struct {
	scalefactors [maxWindowGroups][maxSfbCount]uint8
}

// pulseInfo is the pulse data of a long-window stream.
type pulseInfo struct {
	pulseCount    int
	pulseSfbStart int
	pulses        [maxPulseCount]struct {
		offset    uint8
		amplitude uint8
	}
}

// tnsFilter is one temporal noise shaping filter.
type tnsFilter struct {
	sfbCount     uint8
	order        uint8
	downward     bool
	coefficients [maxTnsOrderLongLC]int8
}

// tnsInfo is the TNS configuration of one channel stream.
type tnsInfo struct {
	enabled     bool
	filterCount [maxWindowCount]uint8
	coefBits    [maxWindowCount]uint8
	filters     [maxWindowCount][maxTnsFilterCount]tnsFilter
}

// decodeInfo gathers everything parsed for one channel of one
// element.
type decodeInfo struct {
	identifier int
	globalGain uint8

	ics     *icsInfo
	section sectionInfo
	sf      scalefactorInfo
	pulse   pulseInfo
	tns     tnsInfo
}

// parseIcsInfo reads ics_info() and resolves the window grouping and
// band table for the block.
func (d *Decoder) parseIcsInfo(r *bits.Reader, ics *icsInfo) error {
	r.ReadBit() // ics_reserved_bit.

	ics.windowSequence = int(r.ReadUint(2))
	ics.windowShape = int(r.ReadUint(1))
	ics.isLong = ics.windowSequence != winSeq8Short

	if ics.isLong {
		ics.sfbCount = int(r.ReadUint(6))
		if r.ReadBit() == 1 {
			// Predictors are a Main profile tool.
			return errors.Wrap(ErrUnsupportedFeature, "predictor data in LC stream")
		}

		ics.windowCount = 1
		ics.windowLen = longSampleCount
		ics.groups = []windowGroup{{winStart: 0, winLength: 1}}
		ics.swbCount = d.bandInfo.long.swbCount
		ics.offsets = d.bandInfo.long.offsets
	} else {
		ics.sfbCount = int(r.ReadUint(4))
		groupBits := r.ReadUint(7)

		ics.windowCount = maxWindowCount
		ics.windowLen = shortSampleCount
		ics.swbCount = d.bandInfo.short.swbCount
		ics.offsets = d.bandInfo.short.offsets

		// A zero bit opens a new group; a one bit extends the
		// current one.
		ics.groups = ics.groups[:0]
		ics.groups = append(ics.groups, windowGroup{winStart: 0, winLength: 1})
		for i := 6; i >= 0; i-- {
			if groupBits>>uint(i)&0x01 == 0 {
				ics.groups = append(ics.groups, windowGroup{winStart: 7 - i, winLength: 1})
			} else {
				ics.groups[len(ics.groups)-1].winLength++
			}
		}
	}

	if ics.sfbCount > ics.swbCount {
		return errors.Wrapf(ErrInvalidSectionLayout, "sfb count %d exceeds table bands %d", ics.sfbCount, ics.swbCount)
	}
	ics.samplesPerWindow = ics.offsets[ics.sfbCount]

	return nil
}

// parseMsMaskInfo reads the M/S mask of a common-window CPE.
func (d *Decoder) parseMsMaskInfo(r *bits.Reader, ics *icsInfo, mask *msMaskInfo) error {
	mask.typ = int(r.ReadUint(2))

	switch mask.typ {
	case msMaskNone, msMaskAll:
	case msMaskSubband:
		for g := range ics.groups {
			for sfb := 0; sfb < ics.sfbCount; sfb++ {
				mask.flags[g][sfb] = r.ReadBit() == 1
			}
		}
	default:
		return errors.Wrap(ErrInvalidElement, "reserved M/S mask type")
	}

	return nil
}

// parseSectionInfo reads section_data(): for each group, runs of
// scalefactor bands tagged with a codebook, with esc-chained lengths.
func (d *Decoder) parseSectionInfo(r *bits.Reader, info *decodeInfo) error {
	ics := info.ics

	lengthBits := uint(5)
	if !ics.isLong {
		lengthBits = 3
	}
	esc := uint32(1)<<lengthBits - 1

	info.section.sections = info.section.sections[:0]

	sampleStart := 0 // Interleaved sample index across the block.
	for g, grp := range ics.groups {
		var sections []section

		k := 0
		for k < ics.sfbCount {
			codebook := int(r.ReadUint(4))

			// A section length of zero is valid; esc values chain.
			length := 0
			l := r.ReadUint(lengthBits)
			for l == esc {
				length += int(esc)
				l = r.ReadUint(lengthBits)
			}
			length += int(l)

			if k+length > ics.sfbCount {
				return errors.Wrapf(ErrInvalidSectionLayout, "section overruns sfb count %d", ics.sfbCount)
			}
			if len(sections) >= maxSfbCount {
				return errors.Wrap(ErrInvalidSectionLayout, "too many sections")
			}

			// Width of the section in interleaved samples: every
			// window of the group codes each band.
			width := (ics.offsets[k+length] - ics.offsets[k]) * grp.winLength

			for sfb := k; sfb < k+length; sfb++ {
				info.section.codebooks[g][sfb] = uint8(codebook)
			}

			sections = append(sections, section{
				sfbStart:    k,
				sfbLength:   length,
				sampleStart: sampleStart,
				sampleCount: width,
				codebook:    codebook,
			})

			k += length
			sampleStart += width
			if sampleStart > longSampleCount {
				return errors.Wrapf(ErrInvalidSectionLayout, "sections cover %d samples", sampleStart)
			}
		}

		info.section.sections = append(info.section.sections, sections)
	}

	return nil
}

// parseScalefactorInfo reads scale_factor_data() (§ 8.3.2.5). The
// running scalefactor starts at the global gain; intensity bands use a
// separate stereo-position accumulator stored biased by 128; noise
// bands read a 9-bit initial energy on first occurrence and deltas
// after. ZERO bands read nothing.
func (d *Decoder) parseScalefactorInfo(r *bits.Reader, info *decodeInfo) error {
	sf := int(info.globalGain)
	stereoPos := 0
	noiseEnergy := 0
	noiseSeen := false

	for g := range info.ics.groups {
		for sfb := 0; sfb < info.ics.sfbCount; sfb++ {
			switch cb := info.section.codebooks[g][sfb]; cb {
			case hcbZero:
				// Not an active band.

			case hcbIntensity, hcbIntensity2:
				offset, err := decodeScalefactor(r)
				if err != nil {
					return err
				}
				stereoPos += offset
				if stereoPos < -128 || stereoPos > 127 {
					return errors.Wrapf(ErrInvalidScalefactor, "stereo position %d", stereoPos)
				}
				info.sf.scalefactors[g][sfb] = uint8(stereoPos + 128)

			case hcbNoise:
				if !noiseSeen {
					noiseSeen = true
					noiseEnergy = int(r.ReadUint(9))
				} else {
					offset, err := decodeScalefactor(r)
					if err != nil {
						return err
					}
					noiseEnergy += offset
				}
				// Noise bands synthesize silence in this decoder, so
				// the energy is parsed but unused.

			default:
				offset, err := decodeScalefactor(r)
				if err != nil {
					return err
				}
				sf += offset
				if sf < 0 || sf > 255 {
					return errors.Wrapf(ErrInvalidScalefactor, "scalefactor %d", sf)
				}
				info.sf.scalefactors[g][sfb] = uint8(sf)
			}
		}
	}

	return nil
}

// parsePulseInfo reads pulse_data(). Pulses are disallowed with short
// windows.
func (d *Decoder) parsePulseInfo(r *bits.Reader, info *decodeInfo) error {
	if r.ReadBit() == 0 {
		info.pulse.pulseCount = 0
		return nil
	}

	if !info.ics.isLong {
		return errors.Wrap(ErrInvalidElement, "pulse data with short windows")
	}

	info.pulse.pulseCount = int(r.ReadUint(2)) + 1
	info.pulse.pulseSfbStart = int(r.ReadUint(6))
	for p := 0; p < info.pulse.pulseCount; p++ {
		info.pulse.pulses[p].offset = uint8(r.ReadUint(5))
		info.pulse.pulses[p].amplitude = uint8(r.ReadUint(4))
	}

	return nil
}

// parseTnsInfo reads tns_data() (§ 14.2). Field widths depend on the
// window length, as does the maximum filter order.
func (d *Decoder) parseTnsInfo(r *bits.Reader, info *decodeInfo) error {
	if r.ReadBit() == 0 {
		return nil
	}
	info.tns.enabled = true

	filterCountBits := uint(2)
	lengthBits := uint(6)
	orderBits := uint(5)
	maxOrder := uint32(maxTnsOrderLongLC)
	if !info.ics.isLong {
		filterCountBits = 1
		lengthBits = 4
		orderBits = 3
		maxOrder = maxTnsOrderShort
	}

	for w := 0; w < info.ics.windowCount; w++ {
		filterCount := r.ReadUint(filterCountBits)
		info.tns.filterCount[w] = uint8(filterCount)

		if filterCount > 0 {
			info.tns.coefBits[w] = uint8(r.ReadUint(1)) + 3
		}

		for f := uint32(0); f < filterCount; f++ {
			filter := &info.tns.filters[w][f]
			filter.sfbCount = uint8(r.ReadUint(lengthBits))

			order := r.ReadUint(orderBits)
			if order > maxOrder {
				return errors.Wrapf(ErrInvalidTnsOrder, "order %d", order)
			}
			filter.order = uint8(order)

			if order == 0 {
				continue
			}

			filter.downward = r.ReadBit() == 1
			compress := r.ReadBit()

			coefBits := uint(info.tns.coefBits[w]) - uint(compress)
			for o := uint32(0); o < order; o++ {
				raw := r.ReadUint(coefBits)
				// Sign-extend from coefBits to 8 bits.
				shift := 8 - coefBits
				filter.coefficients[o] = int8(uint8(raw)<<shift) >> shift
			}
		}
	}

	return nil
}

// parseSpectralData reads spectral_data() (§ 8.3.5) into the 1024
// quantized coefficients, in interleaved bitstream order. Sections
// with ZERO, noise or intensity codebooks contribute no bits.
func (d *Decoder) parseSpectralData(r *bits.Reader, info *decodeInfo, quant []int16) error {
	var tuple [4]int

	for g := range info.ics.groups {
		for _, sec := range info.section.sections[g] {
			if sec.codebook == hcbZero || sec.codebook > hcbEsc {
				continue
			}

			dim := 4
			if sec.codebook >= hcbFirstPair {
				dim = 2
			}

			for p := sec.sampleStart; p < sec.sampleStart+sec.sampleCount; p += dim {
				if err := decodeSpectrum(r, sec.codebook, tuple[:dim]); err != nil {
					return err
				}
				for i := 0; i < dim; i++ {
					quant[p+i] = int16(tuple[i])
				}
			}
		}
	}

	return nil
}

// deinterleaveShort rearranges short-window coefficients from the
// interleaved bitstream order (group, band, window, bin) into eight
// 128-sample windows laid out consecutively.
func deinterleaveShort(ics *icsInfo, quant []int16) {
	var interleaved [longSampleCount]int16
	copy(interleaved[:], quant)

	src := 0
	for _, grp := range ics.groups {
		for sfb := 0; sfb < ics.sfbCount; sfb++ {
			width := ics.offsets[sfb+1] - ics.offsets[sfb]
			for w := 0; w < grp.winLength; w++ {
				dst := (grp.winStart+w)*shortSampleCount + ics.offsets[sfb]
				copy(quant[dst:dst+width], interleaved[src:src+width])
				src += width
			}
		}
	}
}

// applyPulses adds the coded pulse amplitudes to the quantized
// coefficients (§ 8.3.3). The sign of the target coefficient governs
// the direction of the adjustment.
func applyPulses(info *decodeInfo, quant []int16) {
	if info.pulse.pulseCount == 0 {
		return
	}

	k := info.ics.offsets[info.pulse.pulseSfbStart]
	for p := 0; p < info.pulse.pulseCount; p++ {
		k += int(info.pulse.pulses[p].offset)
		if k >= len(quant) {
			return
		}
		amp := int16(info.pulse.pulses[p].amplitude)
		if quant[k] < 0 {
			quant[k] -= amp
		} else {
			quant[k] += amp
		}
	}
}

// programConfig is the parsed payload of a program config element,
// retained for logging and routing decisions.
type programConfig struct {
	instance        int
	profile         int
	sampleRateIndex int

	frontElements []elementTag
	sideElements  []elementTag
	rearElements  []elementTag
	lfeElements   []int
	dseElements   []int
	cceElements   []cceTag

	hasMonoMixdown   bool
	monoMixdown      int
	hasStereoMixdown bool
	stereoMixdown    int
	hasMatrixMixdown bool
	matrixMixdown    int
	pseudoSurround   bool

	comment string
}

// elementTag identifies a channel element: pair flag plus instance.
type elementTag struct {
	isPair   bool
	instance int
}

// cceTag identifies a coupling channel element.
type cceTag struct {
	independentlySwitched bool
	instance              int
}

// parseProgramConfig reads program_config_element().
func (d *Decoder) parseProgramConfig(r *bits.Reader) (*programConfig, error) {
	pce := &programConfig{
		instance:        int(r.ReadUint(4)),
		profile:         int(r.ReadUint(2)),
		sampleRateIndex: int(r.ReadUint(4)),
	}

	frontCount := int(r.ReadUint(4))
	sideCount := int(r.ReadUint(4))
	rearCount := int(r.ReadUint(4))
	lfeCount := int(r.ReadUint(2))
	dseCount := int(r.ReadUint(3))
	cceCount := int(r.ReadUint(4))

	if r.ReadBit() == 1 {
		pce.hasMonoMixdown = true
		pce.monoMixdown = int(r.ReadUint(4))
	}
	if r.ReadBit() == 1 {
		pce.hasStereoMixdown = true
		pce.stereoMixdown = int(r.ReadUint(4))
	}
	if r.ReadBit() == 1 {
		pce.hasMatrixMixdown = true
		pce.matrixMixdown = int(r.ReadUint(2))
		pce.pseudoSurround = r.ReadBit() == 1
	}

	readTags := func(n int) []elementTag {
		tags := make([]elementTag, n)
		for i := range tags {
			tags[i].isPair = r.ReadBit() == 1
			tags[i].instance = int(r.ReadUint(4))
		}
		return tags
	}
	pce.frontElements = readTags(frontCount)
	pce.sideElements = readTags(sideCount)
	pce.rearElements = readTags(rearCount)

	for i := 0; i < lfeCount; i++ {
		pce.lfeElements = append(pce.lfeElements, int(r.ReadUint(4)))
	}
	for i := 0; i < dseCount; i++ {
		pce.dseElements = append(pce.dseElements, int(r.ReadUint(4)))
	}
	for i := 0; i < cceCount; i++ {
		pce.cceElements = append(pce.cceElements, cceTag{
			independentlySwitched: r.ReadBit() == 1,
			instance:              int(r.ReadUint(4)),
		})
	}

	// The comment field is byte-aligned within the element.
	r.AlignToBit(0)
	commentLen := int(r.ReadUint(8))
	comment := make([]byte, commentLen)
	for i := range comment {
		comment[i] = r.ReadByte()
	}
	pce.comment = string(comment)

	return pce, nil
}
