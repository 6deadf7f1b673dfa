/*
NAME
  block.go

DESCRIPTION
  block.go provides the AudioBlock PCM sink that decoded samples are
  written into: a reusable interleaved 16-bit buffer carrying the
  sample rate, channel count and byte order of its contents.

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

import "encoding/binary"

// BlockSampleCount is the number of PCM samples per channel produced
// by one decoded block.
const BlockSampleCount = 1024

// nativeOrder is the byte order of int16 values in memory on this
// machine.
var nativeOrder = func() binary.ByteOrder {
	if binary.NativeEndian.Uint16([]byte{0x01, 0x00}) == 0x0001 {
		return binary.LittleEndian
	}
	return binary.BigEndian
}()

// AudioBlock is a caller-owned, reusable PCM sink. The decoder fills
// it with BlockSampleCount interleaved samples per channel. Samples
// are stored machine-native until SwitchEndianness changes the byte
// order of the stored values.
type AudioBlock struct {
	sampleRate int
	channels   int
	samples    []int16
	order      binary.ByteOrder
}

// Prepare readies the block for a decode at the given rate and
// channel count. The sample buffer is reallocated only when a change
// in channel count needs more capacity than the current store holds;
// a smaller count reuses the existing store. The byte order resets to
// native.
func (b *AudioBlock) Prepare(sampleRate, channels int) {
	b.sampleRate = sampleRate

	if b.channels != channels {
		b.channels = channels
		if need := BlockSampleCount * channels; need > len(b.samples) {
			b.samples = make([]int16, need)
		}
	}

	b.order = nativeOrder
}

// Samples returns the interleaved sample buffer, always sized
// BlockSampleCount times the channel count regardless of any physical
// oversize.
func (b *AudioBlock) Samples() []int16 {
	return b.samples[:BlockSampleCount*b.channels]
}

// SampleRate returns the sample rate of the block's contents.
func (b *AudioBlock) SampleRate() int { return b.sampleRate }

// Channels returns the channel count of the block's contents.
func (b *AudioBlock) Channels() int { return b.channels }

// Order returns the byte order the stored samples are currently in.
func (b *AudioBlock) Order() binary.ByteOrder { return b.order }

// SwitchEndianness byte-swaps every 16-bit sample in place when the
// stored order differs from the target, so that raw memory reads of
// the buffer observe the target byte order.
func (b *AudioBlock) SwitchEndianness(order binary.ByteOrder) {
	if b.order == order {
		return
	}

	for i, s := range b.Samples() {
		u := uint16(s)
		b.samples[i] = int16(u>>8 | u<<8)
	}

	b.order = order
}
