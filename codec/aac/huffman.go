/*
NAME
  huffman.go

DESCRIPTION
  huffman.go provides the Huffman decoders for scalefactor DPCM
  offsets and for spectral coefficient tuples, operating over the
  codebook data in hufftables.go.

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
	"github.com/pkg/errors"

	"github.com/ausocean/aac/codec/aac/bits"
)

// ErrHuffmanDecode is returned when no codeword of a codebook matches
// the bitstream.
var ErrHuffmanDecode = errors.New("no matching Huffman codeword")

// spectrumEscValue marks an escaped coefficient in codebook 11; the
// true magnitude follows in the bitstream.
const spectrumEscValue = 16

// huffSearch reads bits from r until a codeword of entries matches,
// returning the index of the matching entry. Entries must be sorted by
// ascending codeword length with equal lengths contiguous. The search
// maintains a candidate codeword of the current length and linearly
// scans the run of entries sharing that length before extending.
func huffSearch(r *bits.Reader, entries []huffEntry) (int, error) {
	codeword := r.ReadBit()
	length := uint8(1)

	for i := 0; i < len(entries); {
		if length < entries[i].len {
			read := uint(entries[i].len - length)
			codeword = codeword<<read | r.ReadUint(read)
			length = entries[i].len
		}

		for i < len(entries) && entries[i].len == length {
			if entries[i].code == codeword {
				return i, nil
			}
			i++
		}
	}

	return 0, ErrHuffmanDecode
}

// decodeScalefactor decodes one scalefactor DPCM offset in [-60, 60].
func decodeScalefactor(r *bits.Reader) (int, error) {
	i, err := huffSearch(r, huffScalefactor)
	if err != nil {
		return 0, errors.Wrap(err, "scalefactor codebook")
	}
	return int(huffScalefactor[i].vals[0]), nil
}

// decodeSpectrum decodes one tuple of codebook cb (1..11) into out,
// which must have room for the codebook's dimension (2 or 4). Unsigned
// codebooks are followed by one sign bit per non-zero value, and
// codebook 11 escapes coefficients of magnitude 16 with a
// unary-then-binary extension, resolved before the sign is applied.
func decodeSpectrum(r *bits.Reader, cb int, out []int) error {
	if cb <= hcbZero || cb > hcbEsc {
		return errors.Wrapf(ErrInvalidCodebook, "spectrum codebook %d", cb)
	}
	book := huffSpectrum[cb]

	i, err := huffSearch(r, book.entries)
	if err != nil {
		return errors.Wrapf(err, "spectrum codebook %d", cb)
	}
	e := &book.entries[i]

	for d := 0; d < book.dim; d++ {
		out[d] = int(e.vals[d])
	}
	if book.signed {
		return nil
	}

	// Sign bits follow the codeword for every non-zero value, before
	// any escape word.
	var neg [4]bool
	for d := 0; d < book.dim; d++ {
		neg[d] = out[d] != 0 && r.ReadBit() == 1
	}

	for d := 0; d < book.dim; d++ {
		if cb == hcbEsc && out[d] == spectrumEscValue {
			out[d] = decodeEscape(r)
		}
		if neg[d] {
			out[d] = -out[d]
		}
	}

	return nil
}

// decodeEscape reads a codebook 11 escape: consecutive 1-bits counted
// as L, then L+4 bits of magnitude, giving 1<<(L+4) + word.
func decodeEscape(r *bits.Reader) int {
	var l uint
	for r.ReadBit() == 1 {
		l++
	}
	word := r.ReadUint(l + 4)
	return 1<<(l+4) | int(word)
}
