/*
NAME
  adts.go

DESCRIPTION
  adts.go provides parsing of ADTS (Audio Data Transport Stream) frame
  headers and a reader that walks the frames of a buffered ADTS stream,
  including ID3v2 skipping and syncword resynchronization.

AUTHOR
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2025 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package adts provides ADTS frame parsing for AAC audio streams.
package adts

import (
	"bytes"

	"github.com/pkg/errors"
)

// HeaderSize is the size of an ADTS frame header without CRC.
const HeaderSize = 7

const id3HeaderSize = 10

// AAC profiles signalled by the 2-bit ADTS profile field.
const (
	ProfileMain = 0x0
	ProfileLC   = 0x1 // Low complexity.
	ProfileSSR  = 0x2 // Scalable sampling rate.
)

// Errors returned by the reader. All of them are recoverable: the
// caller resynchronizes with FindNextFrame and continues.
var (
	ErrNotAtFrameHeader = errors.New("not positioned at an ADTS frame header")
	ErrTruncatedFrame   = errors.New("frame extends past end of buffer")
)

// Table 35. Indices 12..15 are reserved and map to zero.
var sampleRates = [16]int{
	96000, 88200, 64000, 48000,
	44100, 32000, 24000, 22050,
	16000, 12000, 11025, 8000,
	0, 0, 0, 0,
}

// ChannelConfig describes the channel layout implied by the 3-bit
// channel configuration index (Table 42).
type ChannelConfig struct {
	FullChannels int // Full-bandwidth channels.
	LFEChannels  int // Low-frequency effect (subwoofer) channels.
}

var channelConfigs = [8]ChannelConfig{
	{0, 0}, // 0x0: Defined by an in-stream PCE.
	{1, 0}, // 0x1: Mono.
	{2, 0}, // 0x2: Stereo.
	{3, 0}, // 0x3: 3 front.
	{4, 0}, // 0x4: 3 front, 1 back.
	{5, 0}, // 0x5: 3 front, 2 back.
	{5, 1}, // 0x6: 5.1.
	{7, 1}, // 0x7: 7.1.
}

// Header is a parsed ADTS frame header.
type Header struct {
	MPEGVersion     uint8 // 0: MPEG-4, 1: MPEG-2.
	HasCRC          bool
	Profile         uint8
	SampleRateIndex uint8
	ChannelConfig   uint8
	FrameSize       int // Total frame length in bytes, header included.
	DataBlocks      int // Number of raw data blocks in the frame.
}

// IsFrameHeader reports whether b, which must be at least HeaderSize
// long, looks like an ADTS frame header: syncword present, layer bits
// zero and a non-reserved sample rate index.
func IsFrameHeader(b []byte) bool {
	if b[0] != 0xff {
		return false
	}
	if b[1]&0xf0 != 0xf0 {
		return false
	}
	if (b[1]>>1)&0x03 != 0 {
		return false
	}
	if (b[2]>>2)&0x0f == 0x0f {
		return false
	}
	return true
}

// ParseHeader parses the HeaderSize bytes at the front of b.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize || !IsFrameHeader(b) {
		return Header{}, ErrNotAtFrameHeader
	}
	return Header{
		MPEGVersion:     (b[1] >> 3) & 0x01,
		HasCRC:          b[1]&0x01 == 0,
		Profile:         b[2] >> 6,
		SampleRateIndex: (b[2] >> 2) & 0x0f,
		ChannelConfig:   (b[2]&0x01)<<2 | b[3]>>6,
		FrameSize:       int(b[3]&0x03)<<11 | int(b[4])<<3 | int(b[5])>>5,
		DataBlocks:      int(b[6]&0x03) + 1,
	}, nil
}

// SampleRate returns the sample rate in Hz, or zero for a reserved
// index.
func (h Header) SampleRate() int {
	return sampleRates[h.SampleRateIndex]
}

// Channels returns the channel layout for the header's channel
// configuration index.
func (h Header) Channels() ChannelConfig {
	return channelConfigs[h.ChannelConfig&0x07]
}

// PayloadOffset returns the offset of the raw data block within the
// frame; the CRC, when present, follows the 7 header bytes.
func (h Header) PayloadOffset() int {
	if h.HasCRC {
		return HeaderSize + 2
	}
	return HeaderSize
}

// PayloadSize returns the length of the raw data block.
func (h Header) PayloadSize() int {
	return h.FrameSize - h.PayloadOffset()
}

// Frame is a non-owning view of one ADTS frame within the reader's
// buffer.
type Frame struct {
	Header  Header
	Payload []byte
}

// Reader walks the ADTS frames of a byte buffer.
type Reader struct {
	buf []byte
	pos int
}

// NewReader returns a Reader over buf, positioned at its start.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.pos
}

// IsComplete reports whether the reader has reached the end.
func (r *Reader) IsComplete() bool {
	return r.pos >= len(r.buf)
}

// Advance moves the reader forward n bytes, saturating at the end.
func (r *Reader) Advance(n int) {
	r.pos += n
	if r.pos > len(r.buf) {
		r.pos = len(r.buf)
	}
}

// SkipID3 skips an ID3v2 tag at the current position, returning the
// number of bytes skipped. The tag size is a 28-bit synchsafe integer:
// the low 7 bits of each of 4 bytes, big-endian, not counting the
// 10-byte tag header itself. ID3v1 tags live at the end of the file
// and are left to syncword scanning.
func (r *Reader) SkipID3() int {
	if r.Remaining() < id3HeaderSize {
		return 0
	}
	b := r.buf[r.pos:]
	if !bytes.HasPrefix(b, []byte("ID3")) {
		return 0
	}
	if b[3] > 0x09 || b[4] > 0x09 {
		return 0 // Unreasonably high version number components.
	}
	for i := 6; i < id3HeaderSize; i++ {
		if b[i]&0x80 != 0 {
			return 0 // Size bytes must not have the high bit set.
		}
	}

	size := id3HeaderSize
	size += int(b[6]) << 21
	size += int(b[7]) << 14
	size += int(b[8]) << 7
	size += int(b[9])

	r.Advance(size)
	return size
}

// IsAtFrameHeader reports whether the reader is positioned at a
// plausible frame header with room for the full header.
func (r *Reader) IsAtFrameHeader() bool {
	if r.pos+HeaderSize >= len(r.buf) {
		return false
	}
	return IsFrameHeader(r.buf[r.pos:])
}

// FindNextFrame advances at least one byte and scans forward for the
// next frame header, returning the number of bytes skipped. On
// exhaustion the reader is left at the end of the buffer.
func (r *Reader) FindNextFrame() int {
	start := r.pos

	for r.Remaining() >= 1 {
		// Always make forward progress before scanning.
		r.pos++

		i := bytes.IndexByte(r.buf[r.pos:], 0xff)
		if i < 0 {
			r.pos = len(r.buf)
			break
		}
		r.pos += i

		if r.Remaining() < HeaderSize {
			r.pos = len(r.buf)
			break
		}

		if IsFrameHeader(r.buf[r.pos:]) {
			break
		}
	}

	return r.pos - start
}

// ReadFrameHeader parses the frame header at the current position
// without consuming it.
func (r *Reader) ReadFrameHeader() (Header, error) {
	if !r.IsAtFrameHeader() {
		return Header{}, ErrNotAtFrameHeader
	}
	return ParseHeader(r.buf[r.pos:])
}

// ReadFrame returns a view of the frame at the current position
// without consuming it. The caller advances the reader by
// Header.FrameSize once done with the frame.
func (r *Reader) ReadFrame() (Frame, error) {
	h, err := r.ReadFrameHeader()
	if err != nil {
		return Frame{}, err
	}
	if r.pos+h.FrameSize > len(r.buf) {
		return Frame{}, errors.Wrapf(ErrTruncatedFrame, "frame of %d bytes at offset %d", h.FrameSize, r.pos)
	}
	off := r.pos + h.PayloadOffset()
	return Frame{Header: h, Payload: r.buf[off : r.pos+h.FrameSize]}, nil
}
