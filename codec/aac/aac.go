/*
NAME
  aac.go

DESCRIPTION
  aac.go provides the AAC-LC decoder: it routes the syntactic elements
  of each raw data block to the parsers, reconstructs the spectrum for
  every decoded channel and drives the per-channel filterbanks to
  produce PCM.

AUTHOR
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2025 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package aac provides decoding of AAC-LC (low complexity) audio to
// 16-bit PCM. The decoder consumes the raw data blocks of an ADTS
// stream (see the adts sub-package) and produces one AudioBlock of
// 1024 samples per channel for each block decoded.
package aac

import (
	"github.com/ausocean/utils/logging"
	"github.com/pkg/errors"

	"github.com/ausocean/aac/codec/aac/bits"
)

// Log is the logger used by this package. Logging is skipped when nil.
var Log logging.Logger

// Decoder decodes the raw data blocks of one AAC-LC stream. It owns
// the per-channel state carried across blocks, keyed by element type
// and instance; a sample rate change requires a new Decoder.
type Decoder struct {
	sampleRate int
	srIndex    int
	bandInfo   bandInfo

	blockCount int

	sceDecoders map[uint8]*channelDecoder
	cpeDecoders map[uint8]*[2]*channelDecoder
}

// NewDecoder returns a decoder for a stream with the given sample
// rate. Arbitrary rates are binned onto the nearest standard rate
// index.
func NewDecoder(sampleRate int) (*Decoder, error) {
	srIndex, err := indexBySampleRate(sampleRate)
	if err != nil {
		return nil, err
	}
	bi, err := bandInfoByIndex(srIndex)
	if err != nil {
		return nil, err
	}

	return &Decoder{
		sampleRate:  sampleRate,
		srIndex:     srIndex,
		bandInfo:    bi,
		sceDecoders: make(map[uint8]*channelDecoder),
		cpeDecoders: make(map[uint8]*[2]*channelDecoder),
	}, nil
}

// SampleRate returns the rate the decoder was constructed for.
// Callers detect mid-stream rate changes by comparing this against
// the current frame header and rebuilding the decoder on mismatch.
func (d *Decoder) SampleRate() int { return d.sampleRate }

// DecodeBlock decodes one raw data block into audio. On failure the
// contents of audio are undefined and the caller should drop the
// block and resynchronize.
func (d *Decoder) DecodeBlock(payload []byte, audio *AudioBlock) error {
	r := bits.NewReader(payload)

	done := false
	for !done && !r.IsComplete() {
		id := r.ReadUint(3)

		var err error
		switch id {
		case idEND:
			done = true
		case idFIL:
			err = d.decodeElementFIL(r)
		case idSCE:
			err = d.decodeElementSCE(r, audio)
		case idCPE:
			err = d.decodeElementCPE(r, audio)
		case idPCE:
			err = d.decodeElementPCE(r)
		default:
			err = errors.Wrapf(ErrUnsupportedFeature, "element id %#x", id)
		}
		if err != nil {
			return err
		}
	}

	d.blockCount++
	r.AlignToBit(0)

	return nil
}

// sceDecoder returns the channel decoder for an SCE instance,
// creating it on first use.
func (d *Decoder) sceDecoder(instance uint8) *channelDecoder {
	cd, ok := d.sceDecoders[instance]
	if !ok {
		cd = newChannelDecoder(channelFirst, d.srIndex)
		d.sceDecoders[instance] = cd
	}
	return cd
}

// cpeDecoder returns the channel decoder pair for a CPE instance,
// creating it on first use.
func (d *Decoder) cpeDecoder(instance uint8) *[2]*channelDecoder {
	cds, ok := d.cpeDecoders[instance]
	if !ok {
		cds = &[2]*channelDecoder{
			newChannelDecoder(channelFirst, d.srIndex),
			newChannelDecoder(channelSecond, d.srIndex),
		}
		d.cpeDecoders[instance] = cds
	}
	return cds
}

// parseChannelStream parses one individual_channel_stream(): global
// gain, per-channel ICS when not shared, section, scalefactor, pulse
// and TNS data, the gain control flag, and the spectral data, leaving
// the deinterleaved quantized spectrum in quant.
func (d *Decoder) parseChannelStream(r *bits.Reader, info *decodeInfo, shared *icsInfo, own *icsInfo, quant []int16) error {
	info.globalGain = uint8(r.ReadUint(8))

	if shared != nil {
		info.ics = shared
	} else {
		if err := d.parseIcsInfo(r, own); err != nil {
			return err
		}
		info.ics = own
	}

	if err := d.parseSectionInfo(r, info); err != nil {
		return err
	}
	if err := d.parseScalefactorInfo(r, info); err != nil {
		return err
	}
	if err := d.parsePulseInfo(r, info); err != nil {
		return err
	}
	if err := d.parseTnsInfo(r, info); err != nil {
		return err
	}

	if r.ReadBit() == 1 {
		// Gain control (SSR tool) is not permitted in LC.
		return errors.Wrap(ErrUnsupportedFeature, "gain control data")
	}

	if err := d.parseSpectralData(r, info, quant); err != nil {
		return err
	}
	if !info.ics.isLong {
		deinterleaveShort(info.ics, quant)
	}
	applyPulses(info, quant)

	return nil
}

// reconstructSpectrum converts the quantized spectrum into the scaled
// spectral coefficients for the filterbank.
func reconstructSpectrum(info *decodeInfo, quant []int16, spec []float64) {
	dequantize(quant, spec)
	rescale(info, spec)
}

// decodeElementSCE decodes a single channel element into audio.
func (d *Decoder) decodeElementSCE(r *bits.Reader, audio *AudioBlock) error {
	var info decodeInfo
	var ics icsInfo
	var quant [longSampleCount]int16
	var spec [longSampleCount]float64

	info.identifier = int(r.ReadUint(4))

	if err := d.parseChannelStream(r, &info, nil, &ics, quant[:]); err != nil {
		return errors.Wrapf(err, "SCE %d", info.identifier)
	}

	if Log != nil {
		Log.Debug("decoded SCE", "instance", info.identifier, "windowSequence", ics.windowSequence, "sfbCount", ics.sfbCount)
	}

	reconstructSpectrum(&info, quant[:], spec[:])

	audio.Prepare(d.sampleRate, 1)
	cd := d.sceDecoder(uint8(info.identifier))
	return cd.decodeAudio(&info, spec[:], audio.Samples(), 1)
}

// decodeElementCPE decodes a channel pair element into audio. With a
// common window the pair shares one ICS and may carry M/S and
// intensity joint stereo.
func (d *Decoder) decodeElementCPE(r *bits.Reader, audio *AudioBlock) error {
	var infos [2]decodeInfo
	var ics [2]icsInfo
	var sharedIcs icsInfo
	var msMask msMaskInfo
	var quant [2][longSampleCount]int16
	var spec [2][longSampleCount]float64

	instance := int(r.ReadUint(4))
	commonWindow := r.ReadBit() == 1

	var shared *icsInfo
	if commonWindow {
		if err := d.parseIcsInfo(r, &sharedIcs); err != nil {
			return errors.Wrapf(err, "CPE %d", instance)
		}
		if err := d.parseMsMaskInfo(r, &sharedIcs, &msMask); err != nil {
			return errors.Wrapf(err, "CPE %d", instance)
		}
		shared = &sharedIcs
	}

	for ch := 0; ch < 2; ch++ {
		infos[ch].identifier = instance
		if err := d.parseChannelStream(r, &infos[ch], shared, &ics[ch], quant[ch][:]); err != nil {
			return errors.Wrapf(err, "CPE %d channel %d", instance, ch)
		}
		reconstructSpectrum(&infos[ch], quant[ch][:], spec[ch][:])
	}

	if Log != nil {
		Log.Debug("decoded CPE", "instance", instance, "commonWindow", commonWindow, "msMaskType", msMask.typ)
	}

	if commonWindow {
		// Band classification for joint stereo follows the second
		// channel, which carries the intensity codebooks.
		applyMidSide(&infos[1], &msMask, spec[0][:], spec[1][:])
		applyIntensity(&infos[1], &msMask, spec[0][:], spec[1][:])
	}

	audio.Prepare(d.sampleRate, 2)
	cds := d.cpeDecoder(uint8(instance))
	samples := audio.Samples()
	for ch := 0; ch < 2; ch++ {
		if err := cds[ch].decodeAudio(&infos[ch], spec[ch][:], samples[ch:], 2); err != nil {
			return err
		}
	}

	return nil
}

// decodeElementPCE parses a program config element. The decoder does
// not reroute channels from it; the contents are surfaced for
// diagnostics.
func (d *Decoder) decodeElementPCE(r *bits.Reader) error {
	pce, err := d.parseProgramConfig(r)
	if err != nil {
		return err
	}

	if Log != nil {
		Log.Debug("program config element", "instance", pce.instance, "profile", pce.profile,
			"front", len(pce.frontElements), "side", len(pce.sideElements), "rear", len(pce.rearElements),
			"lfe", len(pce.lfeElements), "comment", pce.comment)
	}

	return nil
}

// decodeElementFIL skips a fill element (Table 26).
func (d *Decoder) decodeElementFIL(r *bits.Reader) error {
	count := int(r.ReadUint(4))
	if count == 15 {
		count += int(r.ReadUint(8)) - 1
	}
	r.SkipBytes(count)
	return nil
}
