/*
NAME
  aac_test.go

DESCRIPTION
  aac_test.go provides end-to-end testing of block decoding over
  synthetic raw data blocks.

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

	"github.com/ausocean/aac/codec/aac/adts"
)

// writeSilentChannelStream writes an individual channel stream with
// one ZERO-codebook band and no optional tools: a silent channel.
func writeSilentChannelStream(w *bitWriter, shared bool) {
	w.writeBits(100, 8) // global_gain.
	if !shared {
		w.writeBits(0, 1)          // ics_reserved_bit.
		w.writeBits(winSeqLong, 2) // window_sequence.
		w.writeBits(winShapeSin, 1)
		w.writeBits(1, 6) // max_sfb.
		w.writeBits(0, 1) // predictor_data_present.
	}
	w.writeBits(hcbZero, 4) // Section codebook.
	w.writeBits(1, 5)       // Section length: the single band.
	w.writeBits(0, 1)       // pulse_data_present.
	w.writeBits(0, 1)       // tns_data_present.
	w.writeBits(0, 1)       // gain_control_data_present.
}

// TestDecodeSilentSCE decodes a single-SCE silent block: the first
// call on a fresh channel must produce exactly 1024 zero samples.
func TestDecodeSilentSCE(t *testing.T) {
	d := newTestDecoder(t)

	w := &bitWriter{}
	w.writeBits(idSCE, 3)
	w.writeBits(0, 4) // element_instance_tag.
	writeSilentChannelStream(w, false)
	w.writeBits(idEND, 3)

	var blk AudioBlock
	if err := d.DecodeBlock(w.data, &blk); err != nil {
		t.Fatal(err)
	}

	if blk.Channels() != 1 || blk.SampleRate() != 44100 {
		t.Fatalf("block is (%d ch, %d Hz), want (1, 44100)", blk.Channels(), blk.SampleRate())
	}
	samples := blk.Samples()
	if len(samples) != BlockSampleCount {
		t.Fatalf("got %d samples, want %d", len(samples), BlockSampleCount)
	}
	for i, s := range samples {
		if s != 0 {
			t.Fatalf("sample %d = %d, want 0", i, s)
		}
	}
}

// TestDecodeSilentCPE decodes a common-window channel pair with an
// all-ones M/S mask over silent spectra.
func TestDecodeSilentCPE(t *testing.T) {
	d := newTestDecoder(t)

	w := &bitWriter{}
	w.writeBits(idCPE, 3)
	w.writeBits(0, 4) // element_instance_tag.
	w.writeBits(1, 1) // common_window.
	// Shared ics_info.
	w.writeBits(0, 1)
	w.writeBits(winSeqLong, 2)
	w.writeBits(winShapeSin, 1)
	w.writeBits(1, 6)
	w.writeBits(0, 1)
	w.writeBits(msMaskAll, 2) // ms_mask_present.
	writeSilentChannelStream(w, true)
	writeSilentChannelStream(w, true)
	w.writeBits(idEND, 3)

	var blk AudioBlock
	if err := d.DecodeBlock(w.data, &blk); err != nil {
		t.Fatal(err)
	}

	if blk.Channels() != 2 {
		t.Fatalf("block has %d channels, want 2", blk.Channels())
	}
	for i, s := range blk.Samples() {
		if s != 0 {
			t.Fatalf("sample %d = %d, want 0", i, s)
		}
	}

	// The pair's channel decoders are keyed by instance and persist.
	if len(d.cpeDecoders) != 1 {
		t.Errorf("cpe decoder map has %d entries, want 1", len(d.cpeDecoders))
	}
}

// TestDecodeSpectralSCE decodes an SCE with one coded quad and checks
// that audio is produced and state carries to the next block.
func TestDecodeSpectralSCE(t *testing.T) {
	d := newTestDecoder(t)

	// Find a codebook 1 entry with a non-zero leading value.
	var e *huffEntry
	for i := range huffSpectrum1.entries {
		if huffSpectrum1.entries[i].vals[0] != 0 {
			e = &huffSpectrum1.entries[i]
			break
		}
	}
	if e == nil {
		t.Fatal("codebook 1 has no non-zero entry")
	}

	w := &bitWriter{}
	w.writeBits(idSCE, 3)
	w.writeBits(0, 4)
	w.writeBits(160, 8) // global_gain: 2^15, loud enough to survive rounding.
	w.writeBits(0, 1)
	w.writeBits(winSeqLong, 2)
	w.writeBits(winShapeSin, 1)
	w.writeBits(1, 6) // One band: 4 samples, one quad.
	w.writeBits(0, 1)
	w.writeBits(1, 4) // Section codebook 1.
	w.writeBits(1, 5) // Section length 1.
	w.writeBits(sfCodeword(t, 0))
	w.writeBits(0, 1) // pulse.
	w.writeBits(0, 1) // tns.
	w.writeBits(0, 1) // gain control.
	w.writeBits(e.code, uint(e.len))
	w.writeBits(idEND, 3)

	var blk AudioBlock
	if err := d.DecodeBlock(w.data, &blk); err != nil {
		t.Fatal(err)
	}

	nonzero := false
	for _, s := range blk.Samples() {
		if s != 0 {
			nonzero = true
			break
		}
	}
	if !nonzero {
		t.Error("coded spectrum produced an all-zero block")
	}

	// The channel decoder must have been created and advanced.
	cd, ok := d.sceDecoders[0]
	if !ok {
		t.Fatal("no SCE channel decoder for instance 0")
	}
	if cd.blockCount != 1 {
		t.Errorf("blockCount = %d, want 1", cd.blockCount)
	}
}

func TestDecodeGainControlRejected(t *testing.T) {
	d := newTestDecoder(t)

	w := &bitWriter{}
	w.writeBits(idSCE, 3)
	w.writeBits(0, 4)
	w.writeBits(100, 8)
	w.writeBits(0, 1)
	w.writeBits(winSeqLong, 2)
	w.writeBits(winShapeSin, 1)
	w.writeBits(1, 6)
	w.writeBits(0, 1)
	w.writeBits(hcbZero, 4)
	w.writeBits(1, 5)
	w.writeBits(0, 1)
	w.writeBits(0, 1)
	w.writeBits(1, 1) // gain_control_data_present: not allowed in LC.

	var blk AudioBlock
	err := d.DecodeBlock(w.data, &blk)
	if !stderrors.Is(err, ErrUnsupportedFeature) {
		t.Errorf("error = %v, want ErrUnsupportedFeature", err)
	}
}

// TestDecodeFILSkipped checks that fill elements are skipped over,
// including the extended count encoding.
func TestDecodeFILSkipped(t *testing.T) {
	d := newTestDecoder(t)

	w := &bitWriter{}
	w.writeBits(idFIL, 3)
	w.writeBits(3, 4) // Three fill bytes follow.
	w.writeBits(0xaaaaaa, 24)
	w.writeBits(idEND, 3)

	var blk AudioBlock
	if err := d.DecodeBlock(w.data, &blk); err != nil {
		t.Fatal(err)
	}

	// Extended count: 15 means read another byte and add it minus 1.
	w = &bitWriter{}
	w.writeBits(idFIL, 3)
	w.writeBits(15, 4)
	w.writeBits(2, 8) // count = 15 + 2 - 1 = 16.
	for i := 0; i < 16; i++ {
		w.writeBits(0xff, 8)
	}
	w.writeBits(idEND, 3)

	if err := d.DecodeBlock(w.data, &blk); err != nil {
		t.Fatal(err)
	}
}

func TestDecodeEmptyBlock(t *testing.T) {
	d := newTestDecoder(t)

	w := &bitWriter{}
	w.writeBits(idEND, 3)

	var blk AudioBlock
	if err := d.DecodeBlock(w.data, &blk); err != nil {
		t.Fatal(err)
	}
	if d.blockCount != 1 {
		t.Errorf("blockCount = %d, want 1", d.blockCount)
	}
}

func TestDecodeCCERejected(t *testing.T) {
	d := newTestDecoder(t)

	w := &bitWriter{}
	w.writeBits(idCCE, 3)

	var blk AudioBlock
	err := d.DecodeBlock(w.data, &blk)
	if !stderrors.Is(err, ErrUnsupportedFeature) {
		t.Errorf("error = %v, want ErrUnsupportedFeature", err)
	}
}

func TestNewDecoderRejectsBadRate(t *testing.T) {
	if _, err := NewDecoder(0); err == nil {
		t.Error("expected error for rate 0")
	}
	if _, err := NewDecoder(-44100); err == nil {
		t.Error("expected error for negative rate")
	}
}

// TestDecodeADTSFrame walks a complete ADTS frame from raw bytes to
// PCM: header parse, payload slice, block decode.
func TestDecodeADTSFrame(t *testing.T) {
	w := &bitWriter{}
	w.writeBits(idSCE, 3)
	w.writeBits(0, 4)
	writeSilentChannelStream(w, false)
	w.writeBits(idEND, 3)
	payload := w.data

	size := adts.HeaderSize + len(payload)
	frame := []byte{
		0xff, 0xf1, // Syncword, MPEG-4, layer 0, no CRC.
		0x50,                            // Profile LC, sample rate index 4.
		0x40 | byte(size>>11)&0x03,      // Channel config 1, frame size high bits.
		byte(size >> 3),                 // Frame size middle bits.
		byte(size&0x07) << 5,            // Frame size low bits.
		0x00,                            // One raw data block.
	}
	frame = append(frame, payload...)
	// Trailing frame so the header scan has room past the last header.
	frame = append(frame, frame...)

	r := adts.NewReader(frame)
	if !r.IsAtFrameHeader() {
		t.Fatal("reader not at frame header")
	}
	f, err := r.ReadFrame()
	if err != nil {
		t.Fatal(err)
	}
	if f.Header.SampleRate() != 44100 {
		t.Fatalf("sample rate %d, want 44100", f.Header.SampleRate())
	}

	d, err := NewDecoder(f.Header.SampleRate())
	if err != nil {
		t.Fatal(err)
	}

	var blk AudioBlock
	if err := d.DecodeBlock(f.Payload, &blk); err != nil {
		t.Fatal(err)
	}
	if got := len(blk.Samples()); got != BlockSampleCount {
		t.Fatalf("decoded %d samples, want %d", got, BlockSampleCount)
	}
}

// TestChannelStatePersistence checks that SCE decoders are created
// lazily per instance and survive across blocks.
func TestChannelStatePersistence(t *testing.T) {
	d := newTestDecoder(t)

	block := func(instance uint32) []byte {
		w := &bitWriter{}
		w.writeBits(idSCE, 3)
		w.writeBits(instance, 4)
		writeSilentChannelStream(w, false)
		w.writeBits(idEND, 3)
		return w.data
	}

	var blk AudioBlock
	for i := 0; i < 3; i++ {
		if err := d.DecodeBlock(block(0), &blk); err != nil {
			t.Fatal(err)
		}
	}
	if err := d.DecodeBlock(block(5), &blk); err != nil {
		t.Fatal(err)
	}

	if len(d.sceDecoders) != 2 {
		t.Fatalf("sce decoder map has %d entries, want 2", len(d.sceDecoders))
	}
	if d.sceDecoders[0].blockCount != 3 {
		t.Errorf("instance 0 blockCount = %d, want 3", d.sceDecoders[0].blockCount)
	}
	if d.sceDecoders[5].blockCount != 1 {
		t.Errorf("instance 5 blockCount = %d, want 1", d.sceDecoders[5].blockCount)
	}
}
