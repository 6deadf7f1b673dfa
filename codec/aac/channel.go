/*
NAME
  channel.go

DESCRIPTION
  channel.go provides the per-channel decoder: the persistent overlap
  state carried between blocks, the filterbank (IMDCT plus windowing),
  overlap-add and the final PCM conversion.

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

// Channel ordinals within an element.
const (
	channelFirst  = 0 // Solo channel, or left channel of a pair.
	channelSecond = 1 // Right channel of a pair.
)

// channelDecoder carries the state of one decoded channel instance
// across blocks: the second half of the previous transform output and
// the previous block's window shape, which selects the left
// half-window of the next block.
type channelDecoder struct {
	ordinal int
	srIndex int

	oldSamples [longSampleCount]float64
	prevShape  int

	blockCount int
}

// newChannelDecoder returns a decoder for one channel instance.
func newChannelDecoder(ordinal, srIndex int) *channelDecoder {
	cd := &channelDecoder{ordinal: ordinal, srIndex: srIndex}
	cd.reset()
	return cd
}

// reset clears the cross-block state. The next block behaves as the
// first block of a stream.
func (cd *channelDecoder) reset() {
	for i := range cd.oldSamples {
		cd.oldSamples[i] = 0
	}
	cd.blockCount = 0
}

// decodeAudio runs TNS and the filterbank over the reconstructed
// spectrum and writes 1024 interleaved PCM samples through audio with
// the given stride.
func (cd *channelDecoder) decodeAudio(info *decodeInfo, spec []float64, audio []int16, stride int) error {
	applyTns(info, cd.srIndex, spec)

	// The first block of a channel has no history: the left half
	// windows with the current shape over zero overlap samples.
	if cd.blockCount == 0 {
		cd.prevShape = info.ics.windowShape
	}

	var windowed [longWindowSize]float64
	if info.ics.isLong {
		cd.filterbankLong(info, spec, &windowed)
	} else {
		cd.filterbankShort(info, spec, &windowed)
	}

	// Overlap-add with the previous block (§ 15.3.3).
	for s := 0; s < longSampleCount; s++ {
		windowed[s] += cd.oldSamples[s]
	}
	for s := 0; s < longSampleCount; s++ {
		cd.oldSamples[s] = windowed[longSampleCount+s]
	}

	for s := 0; s < longSampleCount; s++ {
		audio[s*stride] = pcm16(windowed[s])
	}

	cd.prevShape = info.ics.windowShape
	cd.blockCount++

	return nil
}

// filterbankLong transforms a long-window spectrum into 2048 windowed
// samples. The left half-window follows the previous block's shape,
// the right half the current block's (§ 15.3.2).
func (cd *channelDecoder) filterbankLong(info *decodeInfo, spec []float64, out *[longWindowSize]float64) {
	imdct(spec[:longSampleCount], out[:])

	left := leftWindow(cd.prevShape, info.ics.windowSequence)
	right := rightWindow(info.ics.windowShape, info.ics.windowSequence)

	for s := 0; s < halfLong; s++ {
		out[s] *= left[s]
	}
	for s := 0; s < halfLong; s++ {
		out[halfLong+s] *= right[s]
	}
}

// filterbankShort transforms the eight 128-sample windows of a short
// block and composes them into the 2048-sample layout: 448 flat
// samples, the eight windows overlapped at 128-sample intervals, and
// 448 flat samples. Only the first window's left half follows the
// previous block's shape.
func (cd *channelDecoder) filterbankShort(info *decodeInfo, spec []float64, out *[longWindowSize]float64) {
	var win [shortWindowSize]float64

	for w := 0; w < maxWindowCount; w++ {
		imdct(spec[w*shortSampleCount:(w+1)*shortSampleCount], win[:])

		leftShape := info.ics.windowShape
		if w == 0 {
			leftShape = cd.prevShape
		}
		left := shortLeftWindow(leftShape)
		right := shortRightWindow(info.ics.windowShape)

		for s := 0; s < halfShort; s++ {
			win[s] *= left[s]
		}
		for s := 0; s < halfShort; s++ {
			win[halfShort+s] *= right[s]
		}

		base := windowFlatLen + w*shortSampleCount
		for s := 0; s < shortWindowSize; s++ {
			out[base+s] += win[s]
		}
	}
}

// pcm16 converts a sample to int16, rounding half away from zero and
// saturating at the type bounds.
func pcm16(v float64) int16 {
	if v > 0 {
		v += 0.5
	} else {
		v -= 0.5
	}
	if v >= 32767 {
		return 32767
	}
	if v <= -32768 {
		return -32768
	}
	return int16(v)
}
