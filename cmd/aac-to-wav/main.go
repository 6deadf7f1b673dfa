/*
DESCRIPTION
  aac-to-wav decodes an ADTS AAC-LC file to a 16-bit PCM WAV file.

AUTHORS
  Trek Hopton <trek@ausocean.org>
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2025 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// aac-to-wav is a command line utility that decodes an ADTS AAC-LC
// stream to out.wav.
package main

import (
	"flag"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ausocean/aac/codec/aac"
	"github.com/ausocean/aac/codec/aac/adts"
	"github.com/ausocean/utils/logging"
)

// Logging configuration.
const (
	logVerbosity = logging.Info
	logSuppress  = true
)

const (
	pkg       = "aac-to-wav: "
	outPath   = "out.wav"
	bitDepth  = 16
	wavFormat = 1 // PCM.
)

func main() {
	flag.Parse()

	log := logging.New(logVerbosity, os.Stderr, logSuppress)
	aac.Log = log

	if flag.NArg() != 1 {
		log.Fatal(pkg + "usage: aac-to-wav <input.aac>")
	}

	in, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatal(pkg+"could not read input file", "error", err.Error())
	}

	reader := adts.NewReader(in)

	if n := reader.SkipID3(); n != 0 {
		log.Info(pkg+"skipped ID3 tag", "bytes", n)
	}

	if !reader.IsAtFrameHeader() {
		reader.FindNextFrame()
	}

	header, err := reader.ReadFrameHeader()
	if err != nil {
		log.Fatal(pkg+"could not find initial frame header", "error", err.Error())
	}
	if header.Profile != adts.ProfileLC {
		log.Fatal(pkg+"unsupported AAC profile", "profile", int(header.Profile))
	}

	log.Info(pkg+"input stream", "sampleRate", header.SampleRate(), "channelConfig", int(header.ChannelConfig), "crc", header.HasCRC)

	dec, err := aac.NewDecoder(header.SampleRate())
	if err != nil {
		log.Fatal(pkg+"could not create decoder", "error", err.Error())
	}

	var audioBlock aac.AudioBlock
	var pcm []int

	for !reader.IsComplete() {
		frame, err := reader.ReadFrame()
		if err != nil {
			skipped := reader.FindNextFrame()
			log.Warning(pkg+"resynchronized", "skipped", skipped)
			continue
		}

		if rate := frame.Header.SampleRate(); rate != dec.SampleRate() {
			log.Warning(pkg+"sample rate changed, reinitializing decoder", "from", dec.SampleRate(), "to", rate)
			dec, err = aac.NewDecoder(rate)
			if err != nil {
				log.Fatal(pkg+"could not recreate decoder", "error", err.Error())
			}
		}

		if err := dec.DecodeBlock(frame.Payload, &audioBlock); err != nil {
			log.Fatal(pkg+"could not decode block", "error", err.Error())
		}

		for _, s := range audioBlock.Samples() {
			pcm = append(pcm, int(s))
		}

		reader.Advance(frame.Header.FrameSize)
	}

	if len(pcm) == 0 {
		log.Fatal(pkg + "no audio decoded")
	}

	out, err := os.Create(outPath)
	if err != nil {
		log.Fatal(pkg+"could not create output file", "error", err.Error())
	}

	enc := wav.NewEncoder(out, audioBlock.SampleRate(), bitDepth, audioBlock.Channels(), wavFormat)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: audioBlock.Channels(),
			SampleRate:  audioBlock.SampleRate(),
		},
		Data:           pcm,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		log.Fatal(pkg+"could not write WAV data", "error", err.Error())
	}
	if err := enc.Close(); err != nil {
		log.Fatal(pkg+"could not finalize WAV file", "error", err.Error())
	}
	if err := out.Close(); err != nil {
		log.Fatal(pkg+"could not close output file", "error", err.Error())
	}

	log.Info(pkg+"wrote output", "path", outPath, "samples", len(pcm))
}
