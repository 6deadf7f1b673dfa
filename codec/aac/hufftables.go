/*
NAME
  hufftables.go

DESCRIPTION
  hufftables.go contains the Huffman codebook data used to decode
  scalefactors and spectral coefficients: one codebook for scalefactor
  DPCM offsets and spectrum codebooks 1 through 11. Entries are sorted
  by ascending codeword length with equal lengths contiguous, which the
  decoders in huffman.go rely on.

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

// huffEntry is one codeword of a Huffman codebook. Scalefactor entries
// use vals[0] as the signed DPCM offset; spectrum entries carry 2 or 4
// coefficient values depending on the codebook dimension.
type huffEntry struct {
	len  uint8
	code uint32
	vals [4]int8
}

// huffCodebook is a spectrum codebook: tuple dimension, whether the
// tuple values carry their own signs, and the length-sorted entries.
type huffCodebook struct {
	dim     int
	signed  bool
	entries []huffEntry
}

// huffScalefactor decodes scalefactor DPCM offsets in [-60, 60].
var huffScalefactor = []huffEntry{
	{2, 0x0, [4]int8{0, 0, 0, 0}}, {3, 0x2, [4]int8{1, 0, 0, 0}}, {3, 0x3, [4]int8{-1, 0, 0, 0}}, {3, 0x4, [4]int8{2, 0, 0, 0}},
	{3, 0x5, [4]int8{-2, 0, 0, 0}}, {4, 0xC, [4]int8{3, 0, 0, 0}}, {4, 0xD, [4]int8{-3, 0, 0, 0}}, {5, 0x1C, [4]int8{4, 0, 0, 0}},
	{5, 0x1D, [4]int8{-4, 0, 0, 0}}, {6, 0x3C, [4]int8{5, 0, 0, 0}}, {6, 0x3D, [4]int8{-5, 0, 0, 0}}, {7, 0x7C, [4]int8{6, 0, 0, 0}},
	{7, 0x7D, [4]int8{-6, 0, 0, 0}}, {8, 0xFC, [4]int8{7, 0, 0, 0}}, {8, 0xFD, [4]int8{-7, 0, 0, 0}}, {9, 0x1FC, [4]int8{8, 0, 0, 0}},
	{9, 0x1FD, [4]int8{-8, 0, 0, 0}}, {10, 0x3FC, [4]int8{9, 0, 0, 0}}, {10, 0x3FD, [4]int8{-9, 0, 0, 0}}, {11, 0x7FC, [4]int8{10, 0, 0, 0}},
	{11, 0x7FD, [4]int8{-10, 0, 0, 0}}, {12, 0xFFC, [4]int8{11, 0, 0, 0}}, {12, 0xFFD, [4]int8{-11, 0, 0, 0}}, {13, 0x1FFC, [4]int8{12, 0, 0, 0}},
	{14, 0x3FFA, [4]int8{-12, 0, 0, 0}}, {14, 0x3FFB, [4]int8{13, 0, 0, 0}}, {14, 0x3FFC, [4]int8{-13, 0, 0, 0}}, {15, 0x7FFA, [4]int8{14, 0, 0, 0}},
	{15, 0x7FFB, [4]int8{-14, 0, 0, 0}}, {16, 0xFFF8, [4]int8{15, 0, 0, 0}}, {16, 0xFFF9, [4]int8{-15, 0, 0, 0}}, {16, 0xFFFA, [4]int8{16, 0, 0, 0}},
	{17, 0x1FFF6, [4]int8{-16, 0, 0, 0}}, {17, 0x1FFF7, [4]int8{17, 0, 0, 0}}, {17, 0x1FFF8, [4]int8{-17, 0, 0, 0}}, {18, 0x3FFF2, [4]int8{18, 0, 0, 0}},
	{18, 0x3FFF3, [4]int8{-18, 0, 0, 0}}, {19, 0x7FFE8, [4]int8{19, 0, 0, 0}}, {19, 0x7FFE9, [4]int8{-19, 0, 0, 0}}, {20, 0xFFFD4, [4]int8{20, 0, 0, 0}},
	{20, 0xFFFD5, [4]int8{-20, 0, 0, 0}}, {20, 0xFFFD6, [4]int8{21, 0, 0, 0}}, {20, 0xFFFD7, [4]int8{-21, 0, 0, 0}}, {20, 0xFFFD8, [4]int8{59, 0, 0, 0}},
	{20, 0xFFFD9, [4]int8{60, 0, 0, 0}}, {21, 0x1FFFB4, [4]int8{22, 0, 0, 0}}, {21, 0x1FFFB5, [4]int8{-22, 0, 0, 0}}, {21, 0x1FFFB6, [4]int8{23, 0, 0, 0}},
	{21, 0x1FFFB7, [4]int8{-23, 0, 0, 0}}, {21, 0x1FFFB8, [4]int8{24, 0, 0, 0}}, {21, 0x1FFFB9, [4]int8{-24, 0, 0, 0}}, {21, 0x1FFFBA, [4]int8{25, 0, 0, 0}},
	{21, 0x1FFFBB, [4]int8{-25, 0, 0, 0}}, {21, 0x1FFFBC, [4]int8{26, 0, 0, 0}}, {21, 0x1FFFBD, [4]int8{-26, 0, 0, 0}}, {21, 0x1FFFBE, [4]int8{27, 0, 0, 0}},
	{21, 0x1FFFBF, [4]int8{-27, 0, 0, 0}}, {21, 0x1FFFC0, [4]int8{28, 0, 0, 0}}, {21, 0x1FFFC1, [4]int8{-28, 0, 0, 0}}, {21, 0x1FFFC2, [4]int8{29, 0, 0, 0}},
	{21, 0x1FFFC3, [4]int8{-29, 0, 0, 0}}, {21, 0x1FFFC4, [4]int8{30, 0, 0, 0}}, {21, 0x1FFFC5, [4]int8{-30, 0, 0, 0}}, {21, 0x1FFFC6, [4]int8{31, 0, 0, 0}},
	{21, 0x1FFFC7, [4]int8{-31, 0, 0, 0}}, {21, 0x1FFFC8, [4]int8{32, 0, 0, 0}}, {21, 0x1FFFC9, [4]int8{-32, 0, 0, 0}}, {21, 0x1FFFCA, [4]int8{33, 0, 0, 0}},
	{21, 0x1FFFCB, [4]int8{-33, 0, 0, 0}}, {21, 0x1FFFCC, [4]int8{34, 0, 0, 0}}, {21, 0x1FFFCD, [4]int8{-34, 0, 0, 0}}, {21, 0x1FFFCE, [4]int8{35, 0, 0, 0}},
	{21, 0x1FFFCF, [4]int8{-35, 0, 0, 0}}, {21, 0x1FFFD0, [4]int8{36, 0, 0, 0}}, {21, 0x1FFFD1, [4]int8{-36, 0, 0, 0}}, {21, 0x1FFFD2, [4]int8{37, 0, 0, 0}},
	{21, 0x1FFFD3, [4]int8{-37, 0, 0, 0}}, {21, 0x1FFFD4, [4]int8{38, 0, 0, 0}}, {21, 0x1FFFD5, [4]int8{-38, 0, 0, 0}}, {21, 0x1FFFD6, [4]int8{39, 0, 0, 0}},
	{21, 0x1FFFD7, [4]int8{-39, 0, 0, 0}}, {21, 0x1FFFD8, [4]int8{40, 0, 0, 0}}, {21, 0x1FFFD9, [4]int8{-40, 0, 0, 0}}, {21, 0x1FFFDA, [4]int8{41, 0, 0, 0}},
	{21, 0x1FFFDB, [4]int8{-41, 0, 0, 0}}, {21, 0x1FFFDC, [4]int8{42, 0, 0, 0}}, {21, 0x1FFFDD, [4]int8{-42, 0, 0, 0}}, {21, 0x1FFFDE, [4]int8{43, 0, 0, 0}},
	{21, 0x1FFFDF, [4]int8{-43, 0, 0, 0}}, {21, 0x1FFFE0, [4]int8{44, 0, 0, 0}}, {21, 0x1FFFE1, [4]int8{-44, 0, 0, 0}}, {21, 0x1FFFE2, [4]int8{45, 0, 0, 0}},
	{21, 0x1FFFE3, [4]int8{-45, 0, 0, 0}}, {21, 0x1FFFE4, [4]int8{46, 0, 0, 0}}, {21, 0x1FFFE5, [4]int8{-46, 0, 0, 0}}, {21, 0x1FFFE6, [4]int8{47, 0, 0, 0}},
	{21, 0x1FFFE7, [4]int8{-47, 0, 0, 0}}, {21, 0x1FFFE8, [4]int8{48, 0, 0, 0}}, {21, 0x1FFFE9, [4]int8{-48, 0, 0, 0}}, {21, 0x1FFFEA, [4]int8{49, 0, 0, 0}},
	{21, 0x1FFFEB, [4]int8{-49, 0, 0, 0}}, {21, 0x1FFFEC, [4]int8{50, 0, 0, 0}}, {21, 0x1FFFED, [4]int8{-50, 0, 0, 0}}, {21, 0x1FFFEE, [4]int8{51, 0, 0, 0}},
	{21, 0x1FFFEF, [4]int8{-51, 0, 0, 0}}, {21, 0x1FFFF0, [4]int8{52, 0, 0, 0}}, {21, 0x1FFFF1, [4]int8{-52, 0, 0, 0}}, {21, 0x1FFFF2, [4]int8{53, 0, 0, 0}},
	{21, 0x1FFFF3, [4]int8{-53, 0, 0, 0}}, {21, 0x1FFFF4, [4]int8{54, 0, 0, 0}}, {21, 0x1FFFF5, [4]int8{-54, 0, 0, 0}}, {21, 0x1FFFF6, [4]int8{55, 0, 0, 0}},
	{21, 0x1FFFF7, [4]int8{-55, 0, 0, 0}}, {21, 0x1FFFF8, [4]int8{56, 0, 0, 0}}, {21, 0x1FFFF9, [4]int8{-56, 0, 0, 0}}, {21, 0x1FFFFA, [4]int8{57, 0, 0, 0}},
	{21, 0x1FFFFB, [4]int8{-57, 0, 0, 0}}, {21, 0x1FFFFC, [4]int8{58, 0, 0, 0}}, {21, 0x1FFFFD, [4]int8{-58, 0, 0, 0}}, {21, 0x1FFFFE, [4]int8{-59, 0, 0, 0}},
	{21, 0x1FFFFF, [4]int8{-60, 0, 0, 0}},
}

var huffSpectrum1 = huffCodebook{
	dim:    4,
	signed: true,
	entries: []huffEntry{
		{3, 0x0, [4]int8{0, 0, 0, 0}}, {4, 0x2, [4]int8{0, 0, 1, 0}}, {4, 0x3, [4]int8{0, 1, 0, 0}}, {4, 0x4, [4]int8{1, 0, 0, 0}},
		{5, 0xA, [4]int8{-1, 0, 0, 0}}, {5, 0xB, [4]int8{0, -1, 0, 0}}, {5, 0xC, [4]int8{0, 0, -1, 0}}, {5, 0xD, [4]int8{0, 0, 0, -1}},
		{5, 0xE, [4]int8{0, 0, 0, 1}}, {6, 0x1E, [4]int8{-1, -1, 0, 0}}, {6, 0x1F, [4]int8{-1, 0, -1, 0}}, {6, 0x20, [4]int8{-1, 0, 0, -1}},
		{6, 0x21, [4]int8{-1, 0, 0, 1}}, {6, 0x22, [4]int8{-1, 0, 1, 0}}, {6, 0x23, [4]int8{-1, 1, 0, 0}}, {6, 0x24, [4]int8{0, -1, -1, 0}},
		{6, 0x25, [4]int8{0, -1, 0, -1}}, {6, 0x26, [4]int8{0, -1, 0, 1}}, {6, 0x27, [4]int8{0, -1, 1, 0}}, {6, 0x28, [4]int8{0, 0, -1, -1}},
		{6, 0x29, [4]int8{0, 0, -1, 1}}, {6, 0x2A, [4]int8{0, 0, 1, -1}}, {6, 0x2B, [4]int8{0, 0, 1, 1}}, {6, 0x2C, [4]int8{0, 1, -1, 0}},
		{6, 0x2D, [4]int8{0, 1, 0, -1}}, {6, 0x2E, [4]int8{0, 1, 0, 1}}, {6, 0x2F, [4]int8{0, 1, 1, 0}}, {6, 0x30, [4]int8{1, -1, 0, 0}},
		{6, 0x31, [4]int8{1, 0, -1, 0}}, {6, 0x32, [4]int8{1, 0, 0, -1}}, {6, 0x33, [4]int8{1, 0, 0, 1}}, {6, 0x34, [4]int8{1, 0, 1, 0}},
		{6, 0x35, [4]int8{1, 1, 0, 0}}, {8, 0xD8, [4]int8{-1, -1, -1, 0}}, {8, 0xD9, [4]int8{-1, -1, 0, -1}}, {8, 0xDA, [4]int8{-1, -1, 0, 1}},
		{8, 0xDB, [4]int8{-1, -1, 1, 0}}, {8, 0xDC, [4]int8{-1, 0, -1, -1}}, {8, 0xDD, [4]int8{-1, 0, -1, 1}}, {8, 0xDE, [4]int8{-1, 0, 1, -1}},
		{8, 0xDF, [4]int8{-1, 0, 1, 1}}, {8, 0xE0, [4]int8{-1, 1, -1, 0}}, {8, 0xE1, [4]int8{-1, 1, 0, -1}}, {8, 0xE2, [4]int8{-1, 1, 0, 1}},
		{8, 0xE3, [4]int8{-1, 1, 1, 0}}, {8, 0xE4, [4]int8{0, -1, -1, -1}}, {8, 0xE5, [4]int8{0, -1, -1, 1}}, {8, 0xE6, [4]int8{0, -1, 1, -1}},
		{8, 0xE7, [4]int8{0, -1, 1, 1}}, {8, 0xE8, [4]int8{0, 1, -1, -1}}, {8, 0xE9, [4]int8{0, 1, -1, 1}}, {8, 0xEA, [4]int8{0, 1, 1, -1}},
		{8, 0xEB, [4]int8{0, 1, 1, 1}}, {8, 0xEC, [4]int8{1, -1, -1, 0}}, {8, 0xED, [4]int8{1, -1, 0, -1}}, {8, 0xEE, [4]int8{1, -1, 0, 1}},
		{8, 0xEF, [4]int8{1, -1, 1, 0}}, {8, 0xF0, [4]int8{1, 0, -1, -1}}, {8, 0xF1, [4]int8{1, 0, -1, 1}}, {8, 0xF2, [4]int8{1, 0, 1, -1}},
		{8, 0xF3, [4]int8{1, 0, 1, 1}}, {8, 0xF4, [4]int8{1, 1, -1, 0}}, {8, 0xF5, [4]int8{1, 1, 0, -1}}, {8, 0xF6, [4]int8{1, 1, 0, 1}},
		{8, 0xF7, [4]int8{1, 1, 1, 0}}, {9, 0x1F0, [4]int8{-1, -1, -1, -1}}, {9, 0x1F1, [4]int8{-1, -1, -1, 1}}, {9, 0x1F2, [4]int8{-1, -1, 1, -1}},
		{9, 0x1F3, [4]int8{-1, -1, 1, 1}}, {9, 0x1F4, [4]int8{-1, 1, -1, -1}}, {9, 0x1F5, [4]int8{-1, 1, -1, 1}}, {9, 0x1F6, [4]int8{-1, 1, 1, -1}},
		{9, 0x1F7, [4]int8{-1, 1, 1, 1}}, {9, 0x1F8, [4]int8{1, -1, -1, -1}}, {9, 0x1F9, [4]int8{1, -1, -1, 1}}, {9, 0x1FA, [4]int8{1, -1, 1, -1}},
		{9, 0x1FB, [4]int8{1, -1, 1, 1}}, {9, 0x1FC, [4]int8{1, 1, -1, -1}}, {9, 0x1FD, [4]int8{1, 1, -1, 1}}, {9, 0x1FE, [4]int8{1, 1, 1, -1}},
		{9, 0x1FF, [4]int8{1, 1, 1, 1}},
	},
}

var huffSpectrum2 = huffCodebook{
	dim:    4,
	signed: true,
	entries: []huffEntry{
		{4, 0x0, [4]int8{0, 0, 0, 0}}, {5, 0x2, [4]int8{-1, 0, 0, 0}}, {5, 0x3, [4]int8{0, -1, 0, 0}}, {5, 0x4, [4]int8{0, 0, -1, 0}},
		{5, 0x5, [4]int8{0, 0, 0, -1}}, {5, 0x6, [4]int8{0, 0, 0, 1}}, {5, 0x7, [4]int8{0, 0, 1, 0}}, {5, 0x8, [4]int8{0, 1, 0, 0}},
		{5, 0x9, [4]int8{1, 0, 0, 0}}, {6, 0x14, [4]int8{-1, -1, 0, 0}}, {6, 0x15, [4]int8{-1, 0, -1, 0}}, {6, 0x16, [4]int8{-1, 0, 0, -1}},
		{6, 0x17, [4]int8{-1, 0, 0, 1}}, {6, 0x18, [4]int8{-1, 0, 1, 0}}, {6, 0x19, [4]int8{-1, 1, 0, 0}}, {6, 0x1A, [4]int8{0, -1, -1, 0}},
		{6, 0x1B, [4]int8{0, -1, 0, -1}}, {6, 0x1C, [4]int8{0, -1, 0, 1}}, {6, 0x1D, [4]int8{0, -1, 1, 0}}, {6, 0x1E, [4]int8{0, 0, -1, -1}},
		{6, 0x1F, [4]int8{0, 0, -1, 1}}, {6, 0x20, [4]int8{0, 0, 1, -1}}, {6, 0x21, [4]int8{0, 0, 1, 1}}, {6, 0x22, [4]int8{0, 1, -1, 0}},
		{6, 0x23, [4]int8{0, 1, 0, -1}}, {6, 0x24, [4]int8{0, 1, 0, 1}}, {6, 0x25, [4]int8{0, 1, 1, 0}}, {6, 0x26, [4]int8{1, -1, 0, 0}},
		{6, 0x27, [4]int8{1, 0, -1, 0}}, {6, 0x28, [4]int8{1, 0, 0, -1}}, {6, 0x29, [4]int8{1, 0, 0, 1}}, {6, 0x2A, [4]int8{1, 0, 1, 0}},
		{6, 0x2B, [4]int8{1, 1, 0, 0}}, {7, 0x58, [4]int8{-1, -1, -1, 0}}, {7, 0x59, [4]int8{-1, -1, 0, -1}}, {7, 0x5A, [4]int8{-1, -1, 0, 1}},
		{7, 0x5B, [4]int8{-1, -1, 1, 0}}, {7, 0x5C, [4]int8{-1, 0, -1, -1}}, {7, 0x5D, [4]int8{-1, 0, -1, 1}}, {7, 0x5E, [4]int8{-1, 0, 1, -1}},
		{7, 0x5F, [4]int8{-1, 0, 1, 1}}, {7, 0x60, [4]int8{-1, 1, -1, 0}}, {7, 0x61, [4]int8{-1, 1, 0, -1}}, {7, 0x62, [4]int8{-1, 1, 0, 1}},
		{7, 0x63, [4]int8{-1, 1, 1, 0}}, {7, 0x64, [4]int8{0, -1, -1, -1}}, {7, 0x65, [4]int8{0, -1, -1, 1}}, {7, 0x66, [4]int8{0, -1, 1, -1}},
		{7, 0x67, [4]int8{0, -1, 1, 1}}, {7, 0x68, [4]int8{0, 1, -1, -1}}, {7, 0x69, [4]int8{0, 1, -1, 1}}, {7, 0x6A, [4]int8{0, 1, 1, -1}},
		{7, 0x6B, [4]int8{0, 1, 1, 1}}, {7, 0x6C, [4]int8{1, -1, -1, 0}}, {7, 0x6D, [4]int8{1, -1, 0, -1}}, {7, 0x6E, [4]int8{1, -1, 0, 1}},
		{7, 0x6F, [4]int8{1, -1, 1, 0}}, {7, 0x70, [4]int8{1, 0, -1, -1}}, {7, 0x71, [4]int8{1, 0, -1, 1}}, {7, 0x72, [4]int8{1, 0, 1, -1}},
		{7, 0x73, [4]int8{1, 0, 1, 1}}, {7, 0x74, [4]int8{1, 1, -1, 0}}, {7, 0x75, [4]int8{1, 1, 0, -1}}, {7, 0x76, [4]int8{1, 1, 0, 1}},
		{7, 0x77, [4]int8{1, 1, 1, 0}}, {8, 0xF0, [4]int8{-1, -1, -1, -1}}, {8, 0xF1, [4]int8{-1, -1, -1, 1}}, {8, 0xF2, [4]int8{-1, -1, 1, -1}},
		{8, 0xF3, [4]int8{-1, -1, 1, 1}}, {8, 0xF4, [4]int8{-1, 1, -1, -1}}, {8, 0xF5, [4]int8{-1, 1, -1, 1}}, {8, 0xF6, [4]int8{-1, 1, 1, -1}},
		{8, 0xF7, [4]int8{-1, 1, 1, 1}}, {8, 0xF8, [4]int8{1, -1, -1, -1}}, {8, 0xF9, [4]int8{1, -1, -1, 1}}, {8, 0xFA, [4]int8{1, -1, 1, -1}},
		{8, 0xFB, [4]int8{1, -1, 1, 1}}, {8, 0xFC, [4]int8{1, 1, -1, -1}}, {8, 0xFD, [4]int8{1, 1, -1, 1}}, {8, 0xFE, [4]int8{1, 1, 1, -1}},
		{8, 0xFF, [4]int8{1, 1, 1, 1}},
	},
}

var huffSpectrum3 = huffCodebook{
	dim:    4,
	signed: false,
	entries: []huffEntry{
		{2, 0x0, [4]int8{0, 0, 0, 0}}, {4, 0x4, [4]int8{0, 0, 0, 1}}, {4, 0x5, [4]int8{0, 0, 1, 0}}, {4, 0x6, [4]int8{0, 1, 0, 0}},
		{4, 0x7, [4]int8{1, 0, 0, 0}}, {5, 0x10, [4]int8{0, 0, 0, 2}}, {5, 0x11, [4]int8{0, 0, 1, 1}}, {5, 0x12, [4]int8{0, 0, 2, 0}},
		{5, 0x13, [4]int8{0, 1, 0, 1}}, {5, 0x14, [4]int8{0, 1, 1, 0}}, {5, 0x15, [4]int8{0, 2, 0, 0}}, {5, 0x16, [4]int8{1, 0, 0, 1}},
		{5, 0x17, [4]int8{1, 0, 1, 0}}, {5, 0x18, [4]int8{1, 1, 0, 0}}, {5, 0x19, [4]int8{2, 0, 0, 0}}, {7, 0x68, [4]int8{0, 0, 1, 2}},
		{7, 0x69, [4]int8{0, 0, 2, 1}}, {7, 0x6A, [4]int8{0, 1, 0, 2}}, {7, 0x6B, [4]int8{0, 1, 1, 1}}, {7, 0x6C, [4]int8{0, 1, 2, 0}},
		{7, 0x6D, [4]int8{0, 2, 0, 1}}, {7, 0x6E, [4]int8{0, 2, 1, 0}}, {7, 0x6F, [4]int8{1, 0, 0, 2}}, {7, 0x70, [4]int8{1, 0, 1, 1}},
		{7, 0x71, [4]int8{1, 0, 2, 0}}, {7, 0x72, [4]int8{1, 1, 0, 1}}, {7, 0x73, [4]int8{1, 1, 1, 0}}, {7, 0x74, [4]int8{1, 2, 0, 0}},
		{7, 0x75, [4]int8{2, 0, 0, 1}}, {7, 0x76, [4]int8{2, 0, 1, 0}}, {7, 0x77, [4]int8{2, 1, 0, 0}}, {8, 0xF0, [4]int8{2, 0, 2, 0}},
		{8, 0xF1, [4]int8{2, 1, 0, 1}}, {8, 0xF2, [4]int8{2, 1, 1, 0}}, {8, 0xF3, [4]int8{2, 2, 0, 0}}, {9, 0x1E8, [4]int8{0, 0, 2, 2}},
		{9, 0x1E9, [4]int8{0, 1, 1, 2}}, {9, 0x1EA, [4]int8{0, 1, 2, 1}}, {9, 0x1EB, [4]int8{0, 2, 0, 2}}, {9, 0x1EC, [4]int8{0, 2, 1, 1}},
		{9, 0x1ED, [4]int8{0, 2, 2, 0}}, {9, 0x1EE, [4]int8{1, 0, 1, 2}}, {9, 0x1EF, [4]int8{1, 0, 2, 1}}, {9, 0x1F0, [4]int8{1, 1, 0, 2}},
		{9, 0x1F1, [4]int8{1, 1, 1, 1}}, {9, 0x1F2, [4]int8{1, 1, 2, 0}}, {9, 0x1F3, [4]int8{1, 2, 0, 1}}, {9, 0x1F4, [4]int8{1, 2, 1, 0}},
		{9, 0x1F5, [4]int8{2, 0, 0, 2}}, {9, 0x1F6, [4]int8{2, 0, 1, 1}}, {10, 0x3EE, [4]int8{0, 2, 1, 2}}, {10, 0x3EF, [4]int8{0, 2, 2, 1}},
		{10, 0x3F0, [4]int8{1, 0, 2, 2}}, {10, 0x3F1, [4]int8{1, 1, 1, 2}}, {10, 0x3F2, [4]int8{1, 1, 2, 1}}, {10, 0x3F3, [4]int8{1, 2, 0, 2}},
		{10, 0x3F4, [4]int8{1, 2, 1, 1}}, {10, 0x3F5, [4]int8{1, 2, 2, 0}}, {10, 0x3F6, [4]int8{2, 0, 1, 2}}, {10, 0x3F7, [4]int8{2, 0, 2, 1}},
		{10, 0x3F8, [4]int8{2, 1, 0, 2}}, {10, 0x3F9, [4]int8{2, 1, 1, 1}}, {10, 0x3FA, [4]int8{2, 1, 2, 0}}, {10, 0x3FB, [4]int8{2, 2, 0, 1}},
		{10, 0x3FC, [4]int8{2, 2, 1, 0}}, {11, 0x7FA, [4]int8{0, 1, 2, 2}}, {12, 0xFF6, [4]int8{1, 2, 1, 2}}, {12, 0xFF7, [4]int8{1, 2, 2, 1}},
		{12, 0xFF8, [4]int8{2, 0, 2, 2}}, {12, 0xFF9, [4]int8{2, 1, 1, 2}}, {12, 0xFFA, [4]int8{2, 1, 2, 1}}, {12, 0xFFB, [4]int8{2, 2, 0, 2}},
		{12, 0xFFC, [4]int8{2, 2, 1, 1}}, {12, 0xFFD, [4]int8{2, 2, 2, 0}}, {13, 0x1FFC, [4]int8{0, 2, 2, 2}}, {13, 0x1FFD, [4]int8{1, 1, 2, 2}},
		{14, 0x3FFC, [4]int8{2, 1, 2, 2}}, {14, 0x3FFD, [4]int8{2, 2, 1, 2}}, {14, 0x3FFE, [4]int8{2, 2, 2, 1}}, {15, 0x7FFE, [4]int8{1, 2, 2, 2}},
		{15, 0x7FFF, [4]int8{2, 2, 2, 2}},
	},
}

var huffSpectrum4 = huffCodebook{
	dim:    4,
	signed: false,
	entries: []huffEntry{
		{3, 0x0, [4]int8{0, 0, 0, 0}}, {4, 0x2, [4]int8{0, 0, 0, 1}}, {4, 0x3, [4]int8{0, 0, 1, 0}}, {4, 0x4, [4]int8{0, 1, 0, 0}},
		{4, 0x5, [4]int8{1, 0, 0, 0}}, {5, 0xC, [4]int8{0, 0, 0, 2}}, {5, 0xD, [4]int8{0, 0, 1, 1}}, {5, 0xE, [4]int8{0, 0, 2, 0}},
		{5, 0xF, [4]int8{0, 1, 0, 1}}, {5, 0x10, [4]int8{0, 1, 1, 0}}, {5, 0x11, [4]int8{0, 2, 0, 0}}, {5, 0x12, [4]int8{1, 0, 0, 1}},
		{5, 0x13, [4]int8{1, 0, 1, 0}}, {5, 0x14, [4]int8{1, 1, 0, 0}}, {5, 0x15, [4]int8{2, 0, 0, 0}}, {6, 0x2C, [4]int8{0, 2, 1, 0}},
		{6, 0x2D, [4]int8{1, 0, 0, 2}}, {6, 0x2E, [4]int8{1, 0, 1, 1}}, {6, 0x2F, [4]int8{1, 0, 2, 0}}, {6, 0x30, [4]int8{1, 1, 0, 1}},
		{6, 0x31, [4]int8{1, 1, 1, 0}}, {6, 0x32, [4]int8{1, 2, 0, 0}}, {6, 0x33, [4]int8{2, 0, 0, 1}}, {6, 0x34, [4]int8{2, 0, 1, 0}},
		{6, 0x35, [4]int8{2, 1, 0, 0}}, {7, 0x6C, [4]int8{0, 0, 1, 2}}, {7, 0x6D, [4]int8{0, 0, 2, 1}}, {7, 0x6E, [4]int8{0, 1, 0, 2}},
		{7, 0x6F, [4]int8{0, 1, 1, 1}}, {7, 0x70, [4]int8{0, 1, 2, 0}}, {7, 0x71, [4]int8{0, 2, 0, 1}}, {8, 0xE4, [4]int8{0, 0, 2, 2}},
		{8, 0xE5, [4]int8{0, 1, 1, 2}}, {8, 0xE6, [4]int8{0, 1, 2, 1}}, {8, 0xE7, [4]int8{0, 2, 0, 2}}, {8, 0xE8, [4]int8{0, 2, 1, 1}},
		{8, 0xE9, [4]int8{0, 2, 2, 0}}, {8, 0xEA, [4]int8{1, 0, 1, 2}}, {8, 0xEB, [4]int8{1, 0, 2, 1}}, {8, 0xEC, [4]int8{1, 1, 0, 2}},
		{8, 0xED, [4]int8{1, 1, 1, 1}}, {8, 0xEE, [4]int8{1, 1, 2, 0}}, {8, 0xEF, [4]int8{1, 2, 0, 1}}, {8, 0xF0, [4]int8{1, 2, 1, 0}},
		{8, 0xF1, [4]int8{2, 0, 0, 2}}, {8, 0xF2, [4]int8{2, 0, 1, 1}}, {8, 0xF3, [4]int8{2, 0, 2, 0}}, {8, 0xF4, [4]int8{2, 1, 0, 1}},
		{8, 0xF5, [4]int8{2, 1, 1, 0}}, {8, 0xF6, [4]int8{2, 2, 0, 0}}, {9, 0x1EE, [4]int8{0, 2, 2, 1}}, {9, 0x1EF, [4]int8{1, 0, 2, 2}},
		{9, 0x1F0, [4]int8{1, 1, 1, 2}}, {9, 0x1F1, [4]int8{1, 1, 2, 1}}, {9, 0x1F2, [4]int8{1, 2, 0, 2}}, {9, 0x1F3, [4]int8{1, 2, 1, 1}},
		{9, 0x1F4, [4]int8{1, 2, 2, 0}}, {9, 0x1F5, [4]int8{2, 0, 1, 2}}, {9, 0x1F6, [4]int8{2, 0, 2, 1}}, {9, 0x1F7, [4]int8{2, 1, 0, 2}},
		{9, 0x1F8, [4]int8{2, 1, 1, 1}}, {9, 0x1F9, [4]int8{2, 1, 2, 0}}, {9, 0x1FA, [4]int8{2, 2, 0, 1}}, {9, 0x1FB, [4]int8{2, 2, 1, 0}},
		{10, 0x3F8, [4]int8{0, 1, 2, 2}}, {10, 0x3F9, [4]int8{0, 2, 1, 2}}, {11, 0x7F4, [4]int8{0, 2, 2, 2}}, {11, 0x7F5, [4]int8{1, 1, 2, 2}},
		{11, 0x7F6, [4]int8{1, 2, 1, 2}}, {11, 0x7F7, [4]int8{1, 2, 2, 1}}, {11, 0x7F8, [4]int8{2, 0, 2, 2}}, {11, 0x7F9, [4]int8{2, 1, 1, 2}},
		{11, 0x7FA, [4]int8{2, 1, 2, 1}}, {11, 0x7FB, [4]int8{2, 2, 0, 2}}, {11, 0x7FC, [4]int8{2, 2, 1, 1}}, {11, 0x7FD, [4]int8{2, 2, 2, 0}},
		{12, 0xFFC, [4]int8{2, 1, 2, 2}}, {12, 0xFFD, [4]int8{2, 2, 1, 2}}, {12, 0xFFE, [4]int8{2, 2, 2, 1}}, {13, 0x1FFE, [4]int8{1, 2, 2, 2}},
		{13, 0x1FFF, [4]int8{2, 2, 2, 2}},
	},
}

var huffSpectrum5 = huffCodebook{
	dim:    2,
	signed: true,
	entries: []huffEntry{
		{2, 0x0, [4]int8{0, 0, 0, 0}}, {4, 0x4, [4]int8{-1, 0, 0, 0}}, {4, 0x5, [4]int8{0, -1, 0, 0}}, {4, 0x6, [4]int8{0, 1, 0, 0}},
		{4, 0x7, [4]int8{1, 0, 0, 0}}, {5, 0x10, [4]int8{-2, 0, 0, 0}}, {5, 0x11, [4]int8{-1, -1, 0, 0}}, {5, 0x12, [4]int8{-1, 1, 0, 0}},
		{5, 0x13, [4]int8{0, -2, 0, 0}}, {5, 0x14, [4]int8{0, 2, 0, 0}}, {5, 0x15, [4]int8{1, -1, 0, 0}}, {5, 0x16, [4]int8{1, 1, 0, 0}},
		{5, 0x17, [4]int8{2, 0, 0, 0}}, {6, 0x30, [4]int8{0, -3, 0, 0}}, {6, 0x31, [4]int8{0, 3, 0, 0}}, {6, 0x32, [4]int8{1, -2, 0, 0}},
		{6, 0x33, [4]int8{1, 2, 0, 0}}, {6, 0x34, [4]int8{2, -1, 0, 0}}, {6, 0x35, [4]int8{2, 1, 0, 0}}, {6, 0x36, [4]int8{3, 0, 0, 0}},
		{7, 0x6E, [4]int8{-3, 0, 0, 0}}, {7, 0x6F, [4]int8{-2, -1, 0, 0}}, {7, 0x70, [4]int8{-2, 1, 0, 0}}, {7, 0x71, [4]int8{-1, -2, 0, 0}},
		{7, 0x72, [4]int8{-1, 2, 0, 0}}, {8, 0xE6, [4]int8{-4, 0, 0, 0}}, {8, 0xE7, [4]int8{-3, -1, 0, 0}}, {8, 0xE8, [4]int8{-3, 1, 0, 0}},
		{8, 0xE9, [4]int8{-2, -2, 0, 0}}, {8, 0xEA, [4]int8{-2, 2, 0, 0}}, {8, 0xEB, [4]int8{-1, -3, 0, 0}}, {8, 0xEC, [4]int8{-1, 3, 0, 0}},
		{8, 0xED, [4]int8{0, -4, 0, 0}}, {8, 0xEE, [4]int8{0, 4, 0, 0}}, {8, 0xEF, [4]int8{1, -3, 0, 0}}, {8, 0xF0, [4]int8{1, 3, 0, 0}},
		{8, 0xF1, [4]int8{2, -2, 0, 0}}, {8, 0xF2, [4]int8{2, 2, 0, 0}}, {8, 0xF3, [4]int8{3, -1, 0, 0}}, {8, 0xF4, [4]int8{3, 1, 0, 0}},
		{8, 0xF5, [4]int8{4, 0, 0, 0}}, {9, 0x1EC, [4]int8{-4, -1, 0, 0}}, {9, 0x1ED, [4]int8{-4, 1, 0, 0}}, {9, 0x1EE, [4]int8{-3, -2, 0, 0}},
		{9, 0x1EF, [4]int8{-3, 2, 0, 0}}, {9, 0x1F0, [4]int8{-2, -3, 0, 0}}, {9, 0x1F1, [4]int8{-2, 3, 0, 0}}, {9, 0x1F2, [4]int8{-1, -4, 0, 0}},
		{9, 0x1F3, [4]int8{-1, 4, 0, 0}}, {9, 0x1F4, [4]int8{1, -4, 0, 0}}, {9, 0x1F5, [4]int8{1, 4, 0, 0}}, {9, 0x1F6, [4]int8{2, -3, 0, 0}},
		{9, 0x1F7, [4]int8{2, 3, 0, 0}}, {9, 0x1F8, [4]int8{3, -2, 0, 0}}, {9, 0x1F9, [4]int8{3, 2, 0, 0}}, {9, 0x1FA, [4]int8{4, -1, 0, 0}},
		{9, 0x1FB, [4]int8{4, 1, 0, 0}}, {11, 0x7F0, [4]int8{-4, -2, 0, 0}}, {11, 0x7F1, [4]int8{-4, 2, 0, 0}}, {11, 0x7F2, [4]int8{-3, -3, 0, 0}},
		{11, 0x7F3, [4]int8{-3, 3, 0, 0}}, {11, 0x7F4, [4]int8{-2, -4, 0, 0}}, {11, 0x7F5, [4]int8{-2, 4, 0, 0}}, {11, 0x7F6, [4]int8{2, -4, 0, 0}},
		{11, 0x7F7, [4]int8{2, 4, 0, 0}}, {11, 0x7F8, [4]int8{3, -3, 0, 0}}, {11, 0x7F9, [4]int8{3, 3, 0, 0}}, {11, 0x7FA, [4]int8{4, -2, 0, 0}},
		{11, 0x7FB, [4]int8{4, 2, 0, 0}}, {12, 0xFF8, [4]int8{-3, -4, 0, 0}}, {12, 0xFF9, [4]int8{-3, 4, 0, 0}}, {12, 0xFFA, [4]int8{3, -4, 0, 0}},
		{12, 0xFFB, [4]int8{3, 4, 0, 0}}, {12, 0xFFC, [4]int8{4, -3, 0, 0}}, {12, 0xFFD, [4]int8{4, 3, 0, 0}}, {13, 0x1FFC, [4]int8{-4, -3, 0, 0}},
		{13, 0x1FFD, [4]int8{-4, 3, 0, 0}}, {14, 0x3FFC, [4]int8{-4, -4, 0, 0}}, {14, 0x3FFD, [4]int8{-4, 4, 0, 0}}, {14, 0x3FFE, [4]int8{4, -4, 0, 0}},
		{14, 0x3FFF, [4]int8{4, 4, 0, 0}},
	},
}

var huffSpectrum6 = huffCodebook{
	dim:    2,
	signed: true,
	entries: []huffEntry{
		{3, 0x0, [4]int8{0, 0, 0, 0}}, {4, 0x2, [4]int8{-1, 0, 0, 0}}, {4, 0x3, [4]int8{0, -1, 0, 0}}, {4, 0x4, [4]int8{0, 1, 0, 0}},
		{4, 0x5, [4]int8{1, 0, 0, 0}}, {5, 0xC, [4]int8{-2, 0, 0, 0}}, {5, 0xD, [4]int8{-1, -1, 0, 0}}, {5, 0xE, [4]int8{-1, 1, 0, 0}},
		{5, 0xF, [4]int8{0, -2, 0, 0}}, {5, 0x10, [4]int8{0, 2, 0, 0}}, {5, 0x11, [4]int8{1, -1, 0, 0}}, {5, 0x12, [4]int8{1, 1, 0, 0}},
		{5, 0x13, [4]int8{2, 0, 0, 0}}, {6, 0x28, [4]int8{-3, 0, 0, 0}}, {6, 0x29, [4]int8{-2, -1, 0, 0}}, {6, 0x2A, [4]int8{-2, 1, 0, 0}},
		{6, 0x2B, [4]int8{-1, -2, 0, 0}}, {6, 0x2C, [4]int8{-1, 2, 0, 0}}, {6, 0x2D, [4]int8{0, -3, 0, 0}}, {6, 0x2E, [4]int8{0, 3, 0, 0}},
		{6, 0x2F, [4]int8{1, -2, 0, 0}}, {6, 0x30, [4]int8{1, 2, 0, 0}}, {6, 0x31, [4]int8{2, -1, 0, 0}}, {6, 0x32, [4]int8{2, 1, 0, 0}},
		{6, 0x33, [4]int8{3, 0, 0, 0}}, {7, 0x68, [4]int8{-4, 0, 0, 0}}, {7, 0x69, [4]int8{-3, -1, 0, 0}}, {7, 0x6A, [4]int8{-3, 1, 0, 0}},
		{7, 0x6B, [4]int8{-2, -2, 0, 0}}, {7, 0x6C, [4]int8{-2, 2, 0, 0}}, {7, 0x6D, [4]int8{-1, -3, 0, 0}}, {7, 0x6E, [4]int8{-1, 3, 0, 0}},
		{7, 0x6F, [4]int8{0, -4, 0, 0}}, {7, 0x70, [4]int8{0, 4, 0, 0}}, {7, 0x71, [4]int8{1, -3, 0, 0}}, {7, 0x72, [4]int8{1, 3, 0, 0}},
		{7, 0x73, [4]int8{2, -2, 0, 0}}, {7, 0x74, [4]int8{2, 2, 0, 0}}, {7, 0x75, [4]int8{3, -1, 0, 0}}, {7, 0x76, [4]int8{3, 1, 0, 0}},
		{7, 0x77, [4]int8{4, 0, 0, 0}}, {8, 0xF0, [4]int8{1, 4, 0, 0}}, {8, 0xF1, [4]int8{2, -3, 0, 0}}, {8, 0xF2, [4]int8{2, 3, 0, 0}},
		{8, 0xF3, [4]int8{3, -2, 0, 0}}, {8, 0xF4, [4]int8{3, 2, 0, 0}}, {8, 0xF5, [4]int8{4, -1, 0, 0}}, {8, 0xF6, [4]int8{4, 1, 0, 0}},
		{9, 0x1EE, [4]int8{-4, -1, 0, 0}}, {9, 0x1EF, [4]int8{-4, 1, 0, 0}}, {9, 0x1F0, [4]int8{-3, -2, 0, 0}}, {9, 0x1F1, [4]int8{-3, 2, 0, 0}},
		{9, 0x1F2, [4]int8{-2, -3, 0, 0}}, {9, 0x1F3, [4]int8{-2, 3, 0, 0}}, {9, 0x1F4, [4]int8{-1, -4, 0, 0}}, {9, 0x1F5, [4]int8{-1, 4, 0, 0}},
		{9, 0x1F6, [4]int8{1, -4, 0, 0}}, {9, 0x1F7, [4]int8{4, 2, 0, 0}}, {10, 0x3F0, [4]int8{-4, -2, 0, 0}}, {10, 0x3F1, [4]int8{-4, 2, 0, 0}},
		{10, 0x3F2, [4]int8{-3, -3, 0, 0}}, {10, 0x3F3, [4]int8{-3, 3, 0, 0}}, {10, 0x3F4, [4]int8{-2, -4, 0, 0}}, {10, 0x3F5, [4]int8{-2, 4, 0, 0}},
		{10, 0x3F6, [4]int8{2, -4, 0, 0}}, {10, 0x3F7, [4]int8{2, 4, 0, 0}}, {10, 0x3F8, [4]int8{3, -3, 0, 0}}, {10, 0x3F9, [4]int8{3, 3, 0, 0}},
		{10, 0x3FA, [4]int8{4, -2, 0, 0}}, {11, 0x7F6, [4]int8{-4, -3, 0, 0}}, {11, 0x7F7, [4]int8{-4, 3, 0, 0}}, {11, 0x7F8, [4]int8{-3, -4, 0, 0}},
		{11, 0x7F9, [4]int8{-3, 4, 0, 0}}, {11, 0x7FA, [4]int8{3, -4, 0, 0}}, {11, 0x7FB, [4]int8{3, 4, 0, 0}}, {11, 0x7FC, [4]int8{4, -3, 0, 0}},
		{11, 0x7FD, [4]int8{4, 3, 0, 0}}, {12, 0xFFC, [4]int8{-4, -4, 0, 0}}, {12, 0xFFD, [4]int8{-4, 4, 0, 0}}, {12, 0xFFE, [4]int8{4, -4, 0, 0}},
		{12, 0xFFF, [4]int8{4, 4, 0, 0}},
	},
}

var huffSpectrum7 = huffCodebook{
	dim:    2,
	signed: false,
	entries: []huffEntry{
		{1, 0x0, [4]int8{0, 0, 0, 0}}, {3, 0x4, [4]int8{0, 1, 0, 0}}, {3, 0x5, [4]int8{1, 0, 0, 0}}, {4, 0xC, [4]int8{2, 0, 0, 0}},
		{5, 0x1A, [4]int8{0, 2, 0, 0}}, {5, 0x1B, [4]int8{1, 1, 0, 0}}, {6, 0x38, [4]int8{0, 3, 0, 0}}, {6, 0x39, [4]int8{1, 2, 0, 0}},
		{6, 0x3A, [4]int8{2, 1, 0, 0}}, {6, 0x3B, [4]int8{3, 0, 0, 0}}, {7, 0x78, [4]int8{0, 4, 0, 0}}, {7, 0x79, [4]int8{1, 3, 0, 0}},
		{7, 0x7A, [4]int8{2, 2, 0, 0}}, {7, 0x7B, [4]int8{3, 1, 0, 0}}, {7, 0x7C, [4]int8{4, 0, 0, 0}}, {9, 0x1F4, [4]int8{0, 5, 0, 0}},
		{9, 0x1F5, [4]int8{1, 4, 0, 0}}, {9, 0x1F6, [4]int8{2, 3, 0, 0}}, {9, 0x1F7, [4]int8{3, 2, 0, 0}}, {9, 0x1F8, [4]int8{4, 1, 0, 0}},
		{9, 0x1F9, [4]int8{5, 0, 0, 0}}, {10, 0x3F4, [4]int8{0, 6, 0, 0}}, {10, 0x3F5, [4]int8{1, 5, 0, 0}}, {10, 0x3F6, [4]int8{2, 4, 0, 0}},
		{10, 0x3F7, [4]int8{3, 3, 0, 0}}, {10, 0x3F8, [4]int8{4, 2, 0, 0}}, {10, 0x3F9, [4]int8{5, 1, 0, 0}}, {10, 0x3FA, [4]int8{6, 0, 0, 0}},
		{11, 0x7F6, [4]int8{2, 5, 0, 0}}, {11, 0x7F7, [4]int8{3, 4, 0, 0}}, {11, 0x7F8, [4]int8{4, 3, 0, 0}}, {11, 0x7F9, [4]int8{5, 2, 0, 0}},
		{11, 0x7FA, [4]int8{6, 1, 0, 0}}, {11, 0x7FB, [4]int8{7, 0, 0, 0}}, {12, 0xFF8, [4]int8{0, 7, 0, 0}}, {12, 0xFF9, [4]int8{1, 6, 0, 0}},
		{13, 0x1FF4, [4]int8{1, 7, 0, 0}}, {13, 0x1FF5, [4]int8{2, 6, 0, 0}}, {13, 0x1FF6, [4]int8{3, 5, 0, 0}}, {13, 0x1FF7, [4]int8{4, 4, 0, 0}},
		{13, 0x1FF8, [4]int8{5, 3, 0, 0}}, {13, 0x1FF9, [4]int8{6, 2, 0, 0}}, {13, 0x1FFA, [4]int8{7, 1, 0, 0}}, {14, 0x3FF6, [4]int8{2, 7, 0, 0}},
		{14, 0x3FF7, [4]int8{3, 6, 0, 0}}, {14, 0x3FF8, [4]int8{4, 5, 0, 0}}, {14, 0x3FF9, [4]int8{5, 4, 0, 0}}, {14, 0x3FFA, [4]int8{6, 3, 0, 0}},
		{14, 0x3FFB, [4]int8{7, 2, 0, 0}}, {15, 0x7FF8, [4]int8{3, 7, 0, 0}}, {15, 0x7FF9, [4]int8{4, 6, 0, 0}}, {15, 0x7FFA, [4]int8{5, 5, 0, 0}},
		{15, 0x7FFB, [4]int8{6, 4, 0, 0}}, {15, 0x7FFC, [4]int8{7, 3, 0, 0}}, {16, 0xFFFA, [4]int8{4, 7, 0, 0}}, {16, 0xFFFB, [4]int8{5, 6, 0, 0}},
		{16, 0xFFFC, [4]int8{6, 5, 0, 0}}, {16, 0xFFFD, [4]int8{7, 4, 0, 0}}, {17, 0x1FFFC, [4]int8{7, 6, 0, 0}}, {17, 0x1FFFD, [4]int8{7, 7, 0, 0}},
		{18, 0x3FFFC, [4]int8{5, 7, 0, 0}}, {18, 0x3FFFD, [4]int8{6, 6, 0, 0}}, {18, 0x3FFFE, [4]int8{7, 5, 0, 0}}, {18, 0x3FFFF, [4]int8{6, 7, 0, 0}},
	},
}

var huffSpectrum8 = huffCodebook{
	dim:    2,
	signed: false,
	entries: []huffEntry{
		{2, 0x0, [4]int8{0, 0, 0, 0}}, {3, 0x2, [4]int8{0, 1, 0, 0}}, {3, 0x3, [4]int8{1, 0, 0, 0}}, {4, 0x8, [4]int8{0, 2, 0, 0}},
		{4, 0x9, [4]int8{1, 1, 0, 0}}, {4, 0xA, [4]int8{2, 0, 0, 0}}, {5, 0x16, [4]int8{0, 3, 0, 0}}, {5, 0x17, [4]int8{1, 2, 0, 0}},
		{5, 0x18, [4]int8{2, 1, 0, 0}}, {5, 0x19, [4]int8{3, 0, 0, 0}}, {6, 0x34, [4]int8{0, 4, 0, 0}}, {6, 0x35, [4]int8{1, 3, 0, 0}},
		{6, 0x36, [4]int8{2, 2, 0, 0}}, {6, 0x37, [4]int8{3, 1, 0, 0}}, {6, 0x38, [4]int8{4, 0, 0, 0}}, {6, 0x39, [4]int8{5, 0, 0, 0}},
		{7, 0x74, [4]int8{0, 5, 0, 0}}, {7, 0x75, [4]int8{1, 4, 0, 0}}, {7, 0x76, [4]int8{2, 3, 0, 0}}, {7, 0x77, [4]int8{3, 2, 0, 0}},
		{7, 0x78, [4]int8{4, 1, 0, 0}}, {8, 0xF2, [4]int8{0, 6, 0, 0}}, {8, 0xF3, [4]int8{1, 5, 0, 0}}, {8, 0xF4, [4]int8{2, 4, 0, 0}},
		{8, 0xF5, [4]int8{3, 3, 0, 0}}, {8, 0xF6, [4]int8{4, 2, 0, 0}}, {8, 0xF7, [4]int8{5, 1, 0, 0}}, {8, 0xF8, [4]int8{6, 0, 0, 0}},
		{9, 0x1F2, [4]int8{0, 7, 0, 0}}, {9, 0x1F3, [4]int8{1, 6, 0, 0}}, {9, 0x1F4, [4]int8{2, 5, 0, 0}}, {9, 0x1F5, [4]int8{3, 4, 0, 0}},
		{9, 0x1F6, [4]int8{4, 3, 0, 0}}, {9, 0x1F7, [4]int8{5, 2, 0, 0}}, {9, 0x1F8, [4]int8{6, 1, 0, 0}}, {9, 0x1F9, [4]int8{7, 0, 0, 0}},
		{10, 0x3F4, [4]int8{1, 7, 0, 0}}, {10, 0x3F5, [4]int8{2, 6, 0, 0}}, {10, 0x3F6, [4]int8{3, 5, 0, 0}}, {10, 0x3F7, [4]int8{4, 4, 0, 0}},
		{10, 0x3F8, [4]int8{5, 3, 0, 0}}, {10, 0x3F9, [4]int8{6, 2, 0, 0}}, {10, 0x3FA, [4]int8{7, 1, 0, 0}}, {11, 0x7F6, [4]int8{2, 7, 0, 0}},
		{11, 0x7F7, [4]int8{3, 6, 0, 0}}, {11, 0x7F8, [4]int8{4, 5, 0, 0}}, {11, 0x7F9, [4]int8{5, 4, 0, 0}}, {11, 0x7FA, [4]int8{6, 3, 0, 0}},
		{11, 0x7FB, [4]int8{7, 2, 0, 0}}, {12, 0xFF8, [4]int8{3, 7, 0, 0}}, {12, 0xFF9, [4]int8{4, 6, 0, 0}}, {12, 0xFFA, [4]int8{5, 5, 0, 0}},
		{12, 0xFFB, [4]int8{6, 4, 0, 0}}, {12, 0xFFC, [4]int8{7, 3, 0, 0}}, {13, 0x1FFA, [4]int8{4, 7, 0, 0}}, {13, 0x1FFB, [4]int8{5, 6, 0, 0}},
		{13, 0x1FFC, [4]int8{6, 5, 0, 0}}, {13, 0x1FFD, [4]int8{7, 4, 0, 0}}, {14, 0x3FFC, [4]int8{5, 7, 0, 0}}, {14, 0x3FFD, [4]int8{6, 6, 0, 0}},
		{14, 0x3FFE, [4]int8{7, 5, 0, 0}}, {15, 0x7FFE, [4]int8{7, 6, 0, 0}}, {16, 0xFFFE, [4]int8{6, 7, 0, 0}}, {16, 0xFFFF, [4]int8{7, 7, 0, 0}},
	},
}

var huffSpectrum9 = huffCodebook{
	dim:    2,
	signed: false,
	entries: []huffEntry{
		{2, 0x0, [4]int8{0, 0, 0, 0}}, {3, 0x2, [4]int8{0, 1, 0, 0}}, {3, 0x3, [4]int8{1, 0, 0, 0}}, {4, 0x8, [4]int8{0, 2, 0, 0}},
		{4, 0x9, [4]int8{1, 1, 0, 0}}, {4, 0xA, [4]int8{2, 0, 0, 0}}, {5, 0x16, [4]int8{0, 3, 0, 0}}, {5, 0x17, [4]int8{1, 2, 0, 0}},
		{5, 0x18, [4]int8{2, 1, 0, 0}}, {5, 0x19, [4]int8{3, 0, 0, 0}}, {6, 0x34, [4]int8{0, 4, 0, 0}}, {6, 0x35, [4]int8{1, 3, 0, 0}},
		{6, 0x36, [4]int8{2, 2, 0, 0}}, {6, 0x37, [4]int8{3, 1, 0, 0}}, {6, 0x38, [4]int8{4, 0, 0, 0}}, {7, 0x72, [4]int8{0, 5, 0, 0}},
		{7, 0x73, [4]int8{1, 4, 0, 0}}, {7, 0x74, [4]int8{2, 3, 0, 0}}, {7, 0x75, [4]int8{3, 2, 0, 0}}, {7, 0x76, [4]int8{4, 1, 0, 0}},
		{7, 0x77, [4]int8{5, 0, 0, 0}}, {8, 0xF0, [4]int8{0, 6, 0, 0}}, {8, 0xF1, [4]int8{1, 5, 0, 0}}, {8, 0xF2, [4]int8{2, 4, 0, 0}},
		{8, 0xF3, [4]int8{3, 3, 0, 0}}, {8, 0xF4, [4]int8{4, 2, 0, 0}}, {8, 0xF5, [4]int8{5, 1, 0, 0}}, {8, 0xF6, [4]int8{6, 0, 0, 0}},
		{9, 0x1EE, [4]int8{0, 7, 0, 0}}, {9, 0x1EF, [4]int8{1, 6, 0, 0}}, {9, 0x1F0, [4]int8{2, 5, 0, 0}}, {9, 0x1F1, [4]int8{3, 4, 0, 0}},
		{9, 0x1F2, [4]int8{4, 3, 0, 0}}, {9, 0x1F3, [4]int8{5, 2, 0, 0}}, {9, 0x1F4, [4]int8{6, 1, 0, 0}}, {9, 0x1F5, [4]int8{7, 0, 0, 0}},
		{10, 0x3EC, [4]int8{0, 8, 0, 0}}, {10, 0x3ED, [4]int8{1, 7, 0, 0}}, {10, 0x3EE, [4]int8{2, 6, 0, 0}}, {10, 0x3EF, [4]int8{3, 5, 0, 0}},
		{10, 0x3F0, [4]int8{4, 4, 0, 0}}, {10, 0x3F1, [4]int8{5, 3, 0, 0}}, {10, 0x3F2, [4]int8{6, 2, 0, 0}}, {10, 0x3F3, [4]int8{7, 1, 0, 0}},
		{10, 0x3F4, [4]int8{8, 0, 0, 0}}, {11, 0x7EA, [4]int8{0, 9, 0, 0}}, {11, 0x7EB, [4]int8{1, 8, 0, 0}}, {11, 0x7EC, [4]int8{2, 7, 0, 0}},
		{11, 0x7ED, [4]int8{3, 6, 0, 0}}, {11, 0x7EE, [4]int8{4, 5, 0, 0}}, {11, 0x7EF, [4]int8{5, 4, 0, 0}}, {11, 0x7F0, [4]int8{6, 3, 0, 0}},
		{11, 0x7F1, [4]int8{7, 2, 0, 0}}, {11, 0x7F2, [4]int8{8, 1, 0, 0}}, {11, 0x7F3, [4]int8{9, 0, 0, 0}}, {12, 0xFE8, [4]int8{0, 10, 0, 0}},
		{12, 0xFE9, [4]int8{1, 9, 0, 0}}, {12, 0xFEA, [4]int8{2, 8, 0, 0}}, {12, 0xFEB, [4]int8{3, 7, 0, 0}}, {12, 0xFEC, [4]int8{4, 6, 0, 0}},
		{12, 0xFED, [4]int8{5, 5, 0, 0}}, {12, 0xFEE, [4]int8{6, 4, 0, 0}}, {12, 0xFEF, [4]int8{7, 3, 0, 0}}, {12, 0xFF0, [4]int8{8, 2, 0, 0}},
		{12, 0xFF1, [4]int8{9, 1, 0, 0}}, {12, 0xFF2, [4]int8{10, 0, 0, 0}}, {13, 0x1FE6, [4]int8{0, 11, 0, 0}}, {13, 0x1FE7, [4]int8{1, 10, 0, 0}},
		{13, 0x1FE8, [4]int8{2, 9, 0, 0}}, {13, 0x1FE9, [4]int8{3, 8, 0, 0}}, {13, 0x1FEA, [4]int8{4, 7, 0, 0}}, {13, 0x1FEB, [4]int8{5, 6, 0, 0}},
		{13, 0x1FEC, [4]int8{6, 5, 0, 0}}, {13, 0x1FED, [4]int8{7, 4, 0, 0}}, {13, 0x1FEE, [4]int8{8, 3, 0, 0}}, {13, 0x1FEF, [4]int8{9, 2, 0, 0}},
		{13, 0x1FF0, [4]int8{10, 1, 0, 0}}, {13, 0x1FF1, [4]int8{11, 0, 0, 0}}, {14, 0x3FE4, [4]int8{0, 12, 0, 0}}, {14, 0x3FE5, [4]int8{1, 11, 0, 0}},
		{14, 0x3FE6, [4]int8{2, 10, 0, 0}}, {14, 0x3FE7, [4]int8{3, 9, 0, 0}}, {14, 0x3FE8, [4]int8{4, 8, 0, 0}}, {14, 0x3FE9, [4]int8{5, 7, 0, 0}},
		{14, 0x3FEA, [4]int8{6, 6, 0, 0}}, {14, 0x3FEB, [4]int8{7, 5, 0, 0}}, {14, 0x3FEC, [4]int8{8, 4, 0, 0}}, {14, 0x3FED, [4]int8{9, 3, 0, 0}},
		{14, 0x3FEE, [4]int8{10, 2, 0, 0}}, {14, 0x3FEF, [4]int8{11, 1, 0, 0}}, {14, 0x3FF0, [4]int8{12, 0, 0, 0}}, {15, 0x7FE2, [4]int8{1, 12, 0, 0}},
		{15, 0x7FE3, [4]int8{2, 11, 0, 0}}, {15, 0x7FE4, [4]int8{3, 10, 0, 0}}, {15, 0x7FE5, [4]int8{4, 9, 0, 0}}, {15, 0x7FE6, [4]int8{5, 8, 0, 0}},
		{15, 0x7FE7, [4]int8{6, 7, 0, 0}}, {15, 0x7FE8, [4]int8{7, 6, 0, 0}}, {15, 0x7FE9, [4]int8{8, 5, 0, 0}}, {15, 0x7FEA, [4]int8{9, 4, 0, 0}},
		{15, 0x7FEB, [4]int8{10, 3, 0, 0}}, {15, 0x7FEC, [4]int8{11, 2, 0, 0}}, {15, 0x7FED, [4]int8{12, 1, 0, 0}}, {16, 0xFFDC, [4]int8{7, 7, 0, 0}},
		{16, 0xFFDD, [4]int8{8, 6, 0, 0}}, {16, 0xFFDE, [4]int8{9, 5, 0, 0}}, {16, 0xFFDF, [4]int8{10, 4, 0, 0}}, {16, 0xFFE0, [4]int8{11, 3, 0, 0}},
		{16, 0xFFE1, [4]int8{12, 2, 0, 0}}, {17, 0x1FFC4, [4]int8{2, 12, 0, 0}}, {17, 0x1FFC5, [4]int8{3, 11, 0, 0}}, {17, 0x1FFC6, [4]int8{4, 10, 0, 0}},
		{17, 0x1FFC7, [4]int8{5, 9, 0, 0}}, {17, 0x1FFC8, [4]int8{6, 8, 0, 0}}, {17, 0x1FFC9, [4]int8{3, 12, 0, 0}}, {17, 0x1FFCA, [4]int8{4, 11, 0, 0}},
		{17, 0x1FFCB, [4]int8{5, 10, 0, 0}}, {17, 0x1FFCC, [4]int8{6, 9, 0, 0}}, {17, 0x1FFCD, [4]int8{7, 8, 0, 0}}, {17, 0x1FFCE, [4]int8{8, 7, 0, 0}},
		{17, 0x1FFCF, [4]int8{9, 6, 0, 0}}, {17, 0x1FFD0, [4]int8{10, 5, 0, 0}}, {17, 0x1FFD1, [4]int8{11, 4, 0, 0}}, {17, 0x1FFD2, [4]int8{12, 3, 0, 0}},
		{17, 0x1FFD3, [4]int8{4, 12, 0, 0}}, {17, 0x1FFD4, [4]int8{5, 11, 0, 0}}, {17, 0x1FFD5, [4]int8{6, 10, 0, 0}}, {17, 0x1FFD6, [4]int8{7, 9, 0, 0}},
		{17, 0x1FFD7, [4]int8{8, 8, 0, 0}}, {17, 0x1FFD8, [4]int8{9, 7, 0, 0}}, {17, 0x1FFD9, [4]int8{10, 6, 0, 0}}, {17, 0x1FFDA, [4]int8{11, 5, 0, 0}},
		{17, 0x1FFDB, [4]int8{12, 4, 0, 0}}, {17, 0x1FFDC, [4]int8{5, 12, 0, 0}}, {17, 0x1FFDD, [4]int8{6, 11, 0, 0}}, {17, 0x1FFDE, [4]int8{7, 10, 0, 0}},
		{17, 0x1FFDF, [4]int8{8, 9, 0, 0}}, {17, 0x1FFE0, [4]int8{9, 8, 0, 0}}, {17, 0x1FFE1, [4]int8{10, 7, 0, 0}}, {17, 0x1FFE2, [4]int8{11, 6, 0, 0}},
		{17, 0x1FFE3, [4]int8{12, 5, 0, 0}}, {17, 0x1FFE4, [4]int8{6, 12, 0, 0}}, {17, 0x1FFE5, [4]int8{7, 11, 0, 0}}, {17, 0x1FFE6, [4]int8{8, 10, 0, 0}},
		{17, 0x1FFE7, [4]int8{9, 9, 0, 0}}, {17, 0x1FFE8, [4]int8{10, 8, 0, 0}}, {17, 0x1FFE9, [4]int8{11, 7, 0, 0}}, {17, 0x1FFEA, [4]int8{12, 6, 0, 0}},
		{17, 0x1FFEB, [4]int8{7, 12, 0, 0}}, {17, 0x1FFEC, [4]int8{8, 11, 0, 0}}, {17, 0x1FFED, [4]int8{9, 10, 0, 0}}, {17, 0x1FFEE, [4]int8{10, 9, 0, 0}},
		{17, 0x1FFEF, [4]int8{11, 8, 0, 0}}, {17, 0x1FFF0, [4]int8{12, 7, 0, 0}}, {17, 0x1FFF1, [4]int8{8, 12, 0, 0}}, {17, 0x1FFF2, [4]int8{9, 11, 0, 0}},
		{17, 0x1FFF3, [4]int8{10, 10, 0, 0}}, {17, 0x1FFF4, [4]int8{11, 9, 0, 0}}, {17, 0x1FFF5, [4]int8{12, 8, 0, 0}}, {17, 0x1FFF6, [4]int8{9, 12, 0, 0}},
		{17, 0x1FFF7, [4]int8{10, 11, 0, 0}}, {17, 0x1FFF8, [4]int8{11, 10, 0, 0}}, {17, 0x1FFF9, [4]int8{12, 9, 0, 0}}, {17, 0x1FFFA, [4]int8{10, 12, 0, 0}},
		{17, 0x1FFFB, [4]int8{11, 11, 0, 0}}, {17, 0x1FFFC, [4]int8{12, 10, 0, 0}}, {17, 0x1FFFD, [4]int8{11, 12, 0, 0}}, {17, 0x1FFFE, [4]int8{12, 11, 0, 0}},
		{17, 0x1FFFF, [4]int8{12, 12, 0, 0}},
	},
}

var huffSpectrum10 = huffCodebook{
	dim:    2,
	signed: false,
	entries: []huffEntry{
		{2, 0x0, [4]int8{0, 0, 0, 0}}, {3, 0x2, [4]int8{1, 0, 0, 0}}, {4, 0x6, [4]int8{0, 1, 0, 0}}, {4, 0x7, [4]int8{0, 2, 0, 0}},
		{4, 0x8, [4]int8{1, 1, 0, 0}}, {4, 0x9, [4]int8{2, 0, 0, 0}}, {5, 0x14, [4]int8{0, 3, 0, 0}}, {5, 0x15, [4]int8{1, 2, 0, 0}},
		{5, 0x16, [4]int8{2, 1, 0, 0}}, {5, 0x17, [4]int8{3, 0, 0, 0}}, {6, 0x30, [4]int8{0, 4, 0, 0}}, {6, 0x31, [4]int8{1, 3, 0, 0}},
		{6, 0x32, [4]int8{2, 2, 0, 0}}, {6, 0x33, [4]int8{3, 1, 0, 0}}, {6, 0x34, [4]int8{4, 0, 0, 0}}, {7, 0x6A, [4]int8{0, 5, 0, 0}},
		{7, 0x6B, [4]int8{1, 4, 0, 0}}, {7, 0x6C, [4]int8{2, 3, 0, 0}}, {7, 0x6D, [4]int8{3, 2, 0, 0}}, {7, 0x6E, [4]int8{4, 1, 0, 0}},
		{7, 0x6F, [4]int8{5, 0, 0, 0}}, {7, 0x70, [4]int8{0, 6, 0, 0}}, {7, 0x71, [4]int8{1, 5, 0, 0}}, {7, 0x72, [4]int8{2, 4, 0, 0}},
		{7, 0x73, [4]int8{3, 3, 0, 0}}, {7, 0x74, [4]int8{4, 2, 0, 0}}, {7, 0x75, [4]int8{5, 1, 0, 0}}, {7, 0x76, [4]int8{6, 0, 0, 0}},
		{8, 0xEE, [4]int8{0, 7, 0, 0}}, {8, 0xEF, [4]int8{1, 6, 0, 0}}, {8, 0xF0, [4]int8{2, 5, 0, 0}}, {8, 0xF1, [4]int8{3, 4, 0, 0}},
		{8, 0xF2, [4]int8{4, 3, 0, 0}}, {8, 0xF3, [4]int8{5, 2, 0, 0}}, {8, 0xF4, [4]int8{6, 1, 0, 0}}, {8, 0xF5, [4]int8{7, 0, 0, 0}},
		{9, 0x1EC, [4]int8{0, 8, 0, 0}}, {9, 0x1ED, [4]int8{1, 7, 0, 0}}, {9, 0x1EE, [4]int8{2, 6, 0, 0}}, {9, 0x1EF, [4]int8{3, 5, 0, 0}},
		{9, 0x1F0, [4]int8{4, 4, 0, 0}}, {9, 0x1F1, [4]int8{5, 3, 0, 0}}, {9, 0x1F2, [4]int8{6, 2, 0, 0}}, {9, 0x1F3, [4]int8{7, 1, 0, 0}},
		{9, 0x1F4, [4]int8{8, 0, 0, 0}}, {10, 0x3EA, [4]int8{0, 9, 0, 0}}, {10, 0x3EB, [4]int8{1, 8, 0, 0}}, {10, 0x3EC, [4]int8{2, 7, 0, 0}},
		{10, 0x3ED, [4]int8{3, 6, 0, 0}}, {10, 0x3EE, [4]int8{4, 5, 0, 0}}, {10, 0x3EF, [4]int8{5, 4, 0, 0}}, {10, 0x3F0, [4]int8{6, 3, 0, 0}},
		{10, 0x3F1, [4]int8{7, 2, 0, 0}}, {10, 0x3F2, [4]int8{8, 1, 0, 0}}, {10, 0x3F3, [4]int8{9, 0, 0, 0}}, {11, 0x7E8, [4]int8{0, 10, 0, 0}},
		{11, 0x7E9, [4]int8{1, 9, 0, 0}}, {11, 0x7EA, [4]int8{2, 8, 0, 0}}, {11, 0x7EB, [4]int8{3, 7, 0, 0}}, {11, 0x7EC, [4]int8{4, 6, 0, 0}},
		{11, 0x7ED, [4]int8{5, 5, 0, 0}}, {11, 0x7EE, [4]int8{6, 4, 0, 0}}, {11, 0x7EF, [4]int8{7, 3, 0, 0}}, {11, 0x7F0, [4]int8{8, 2, 0, 0}},
		{11, 0x7F1, [4]int8{9, 1, 0, 0}}, {11, 0x7F2, [4]int8{10, 0, 0, 0}}, {12, 0xFE6, [4]int8{0, 11, 0, 0}}, {12, 0xFE7, [4]int8{1, 10, 0, 0}},
		{12, 0xFE8, [4]int8{2, 9, 0, 0}}, {12, 0xFE9, [4]int8{3, 8, 0, 0}}, {12, 0xFEA, [4]int8{4, 7, 0, 0}}, {12, 0xFEB, [4]int8{5, 6, 0, 0}},
		{12, 0xFEC, [4]int8{6, 5, 0, 0}}, {12, 0xFED, [4]int8{7, 4, 0, 0}}, {12, 0xFEE, [4]int8{8, 3, 0, 0}}, {12, 0xFEF, [4]int8{9, 2, 0, 0}},
		{12, 0xFF0, [4]int8{10, 1, 0, 0}}, {12, 0xFF1, [4]int8{11, 0, 0, 0}}, {13, 0x1FE4, [4]int8{0, 12, 0, 0}}, {13, 0x1FE5, [4]int8{1, 11, 0, 0}},
		{13, 0x1FE6, [4]int8{2, 10, 0, 0}}, {13, 0x1FE7, [4]int8{3, 9, 0, 0}}, {13, 0x1FE8, [4]int8{4, 8, 0, 0}}, {13, 0x1FE9, [4]int8{5, 7, 0, 0}},
		{13, 0x1FEA, [4]int8{6, 6, 0, 0}}, {13, 0x1FEB, [4]int8{7, 5, 0, 0}}, {13, 0x1FEC, [4]int8{8, 4, 0, 0}}, {13, 0x1FED, [4]int8{9, 3, 0, 0}},
		{13, 0x1FEE, [4]int8{10, 2, 0, 0}}, {13, 0x1FEF, [4]int8{11, 1, 0, 0}}, {13, 0x1FF0, [4]int8{12, 0, 0, 0}}, {14, 0x3FE2, [4]int8{1, 12, 0, 0}},
		{14, 0x3FE3, [4]int8{2, 11, 0, 0}}, {14, 0x3FE4, [4]int8{3, 10, 0, 0}}, {14, 0x3FE5, [4]int8{4, 9, 0, 0}}, {14, 0x3FE6, [4]int8{5, 8, 0, 0}},
		{14, 0x3FE7, [4]int8{6, 7, 0, 0}}, {14, 0x3FE8, [4]int8{7, 6, 0, 0}}, {14, 0x3FE9, [4]int8{8, 5, 0, 0}}, {14, 0x3FEA, [4]int8{9, 4, 0, 0}},
		{14, 0x3FEB, [4]int8{10, 3, 0, 0}}, {14, 0x3FEC, [4]int8{11, 2, 0, 0}}, {14, 0x3FED, [4]int8{12, 1, 0, 0}}, {14, 0x3FEE, [4]int8{8, 6, 0, 0}},
		{14, 0x3FEF, [4]int8{9, 5, 0, 0}}, {14, 0x3FF0, [4]int8{10, 4, 0, 0}}, {14, 0x3FF1, [4]int8{11, 3, 0, 0}}, {14, 0x3FF2, [4]int8{12, 2, 0, 0}},
		{15, 0x7FE6, [4]int8{2, 12, 0, 0}}, {15, 0x7FE7, [4]int8{3, 11, 0, 0}}, {15, 0x7FE8, [4]int8{4, 10, 0, 0}}, {15, 0x7FE9, [4]int8{5, 9, 0, 0}},
		{15, 0x7FEA, [4]int8{6, 8, 0, 0}}, {15, 0x7FEB, [4]int8{7, 7, 0, 0}}, {15, 0x7FEC, [4]int8{3, 12, 0, 0}}, {15, 0x7FED, [4]int8{4, 11, 0, 0}},
		{15, 0x7FEE, [4]int8{5, 10, 0, 0}}, {15, 0x7FEF, [4]int8{6, 9, 0, 0}}, {15, 0x7FF0, [4]int8{7, 8, 0, 0}}, {15, 0x7FF1, [4]int8{8, 7, 0, 0}},
		{15, 0x7FF2, [4]int8{9, 6, 0, 0}}, {15, 0x7FF3, [4]int8{10, 5, 0, 0}}, {15, 0x7FF4, [4]int8{11, 4, 0, 0}}, {15, 0x7FF5, [4]int8{12, 3, 0, 0}},
		{16, 0xFFEC, [4]int8{4, 12, 0, 0}}, {16, 0xFFED, [4]int8{5, 11, 0, 0}}, {16, 0xFFEE, [4]int8{6, 10, 0, 0}}, {16, 0xFFEF, [4]int8{7, 9, 0, 0}},
		{16, 0xFFF0, [4]int8{8, 8, 0, 0}}, {16, 0xFFF1, [4]int8{9, 7, 0, 0}}, {16, 0xFFF2, [4]int8{10, 6, 0, 0}}, {16, 0xFFF3, [4]int8{11, 5, 0, 0}},
		{16, 0xFFF4, [4]int8{12, 4, 0, 0}}, {17, 0x1FFEA, [4]int8{5, 12, 0, 0}}, {17, 0x1FFEB, [4]int8{6, 11, 0, 0}}, {17, 0x1FFEC, [4]int8{7, 10, 0, 0}},
		{17, 0x1FFED, [4]int8{8, 9, 0, 0}}, {17, 0x1FFEE, [4]int8{9, 8, 0, 0}}, {17, 0x1FFEF, [4]int8{10, 7, 0, 0}}, {17, 0x1FFF0, [4]int8{11, 6, 0, 0}},
		{17, 0x1FFF1, [4]int8{12, 5, 0, 0}}, {18, 0x3FFE4, [4]int8{6, 12, 0, 0}}, {18, 0x3FFE5, [4]int8{7, 11, 0, 0}}, {18, 0x3FFE6, [4]int8{8, 10, 0, 0}},
		{18, 0x3FFE7, [4]int8{9, 9, 0, 0}}, {18, 0x3FFE8, [4]int8{10, 8, 0, 0}}, {18, 0x3FFE9, [4]int8{11, 7, 0, 0}}, {18, 0x3FFEA, [4]int8{12, 6, 0, 0}},
		{18, 0x3FFEB, [4]int8{7, 12, 0, 0}}, {18, 0x3FFEC, [4]int8{8, 11, 0, 0}}, {18, 0x3FFED, [4]int8{9, 10, 0, 0}}, {18, 0x3FFEE, [4]int8{10, 9, 0, 0}},
		{18, 0x3FFEF, [4]int8{11, 8, 0, 0}}, {18, 0x3FFF0, [4]int8{12, 7, 0, 0}}, {18, 0x3FFF1, [4]int8{8, 12, 0, 0}}, {18, 0x3FFF2, [4]int8{9, 11, 0, 0}},
		{18, 0x3FFF3, [4]int8{10, 10, 0, 0}}, {18, 0x3FFF4, [4]int8{11, 9, 0, 0}}, {18, 0x3FFF5, [4]int8{12, 8, 0, 0}}, {18, 0x3FFF6, [4]int8{9, 12, 0, 0}},
		{18, 0x3FFF7, [4]int8{10, 11, 0, 0}}, {18, 0x3FFF8, [4]int8{11, 10, 0, 0}}, {18, 0x3FFF9, [4]int8{12, 9, 0, 0}}, {18, 0x3FFFA, [4]int8{10, 12, 0, 0}},
		{18, 0x3FFFB, [4]int8{11, 11, 0, 0}}, {18, 0x3FFFC, [4]int8{12, 10, 0, 0}}, {18, 0x3FFFD, [4]int8{11, 12, 0, 0}}, {18, 0x3FFFE, [4]int8{12, 11, 0, 0}},
		{18, 0x3FFFF, [4]int8{12, 12, 0, 0}},
	},
}

var huffSpectrum11 = huffCodebook{
	dim:    2,
	signed: false,
	entries: []huffEntry{
		{3, 0x0, [4]int8{0, 0, 0, 0}}, {3, 0x1, [4]int8{1, 0, 0, 0}}, {4, 0x4, [4]int8{0, 1, 0, 0}}, {4, 0x5, [4]int8{0, 2, 0, 0}},
		{4, 0x6, [4]int8{1, 1, 0, 0}}, {4, 0x7, [4]int8{2, 0, 0, 0}}, {5, 0x10, [4]int8{0, 3, 0, 0}}, {5, 0x11, [4]int8{1, 2, 0, 0}},
		{5, 0x12, [4]int8{2, 1, 0, 0}}, {5, 0x13, [4]int8{3, 0, 0, 0}}, {6, 0x28, [4]int8{0, 4, 0, 0}}, {6, 0x29, [4]int8{1, 3, 0, 0}},
		{6, 0x2A, [4]int8{2, 2, 0, 0}}, {6, 0x2B, [4]int8{3, 1, 0, 0}}, {6, 0x2C, [4]int8{4, 0, 0, 0}}, {6, 0x2D, [4]int8{0, 5, 0, 0}},
		{6, 0x2E, [4]int8{1, 4, 0, 0}}, {6, 0x2F, [4]int8{2, 3, 0, 0}}, {6, 0x30, [4]int8{3, 2, 0, 0}}, {6, 0x31, [4]int8{4, 1, 0, 0}},
		{6, 0x32, [4]int8{5, 0, 0, 0}}, {7, 0x66, [4]int8{0, 6, 0, 0}}, {7, 0x67, [4]int8{1, 5, 0, 0}}, {7, 0x68, [4]int8{2, 4, 0, 0}},
		{7, 0x69, [4]int8{3, 3, 0, 0}}, {7, 0x6A, [4]int8{4, 2, 0, 0}}, {7, 0x6B, [4]int8{5, 1, 0, 0}}, {7, 0x6C, [4]int8{6, 0, 0, 0}},
		{7, 0x6D, [4]int8{7, 0, 0, 0}}, {8, 0xDC, [4]int8{0, 7, 0, 0}}, {8, 0xDD, [4]int8{1, 6, 0, 0}}, {8, 0xDE, [4]int8{2, 5, 0, 0}},
		{8, 0xDF, [4]int8{3, 4, 0, 0}}, {8, 0xE0, [4]int8{4, 3, 0, 0}}, {8, 0xE1, [4]int8{5, 2, 0, 0}}, {8, 0xE2, [4]int8{6, 1, 0, 0}},
		{8, 0xE3, [4]int8{0, 8, 0, 0}}, {8, 0xE4, [4]int8{1, 7, 0, 0}}, {8, 0xE5, [4]int8{2, 6, 0, 0}}, {8, 0xE6, [4]int8{3, 5, 0, 0}},
		{8, 0xE7, [4]int8{4, 4, 0, 0}}, {8, 0xE8, [4]int8{5, 3, 0, 0}}, {8, 0xE9, [4]int8{6, 2, 0, 0}}, {8, 0xEA, [4]int8{7, 1, 0, 0}},
		{8, 0xEB, [4]int8{8, 0, 0, 0}}, {8, 0xEC, [4]int8{0, 16, 0, 0}}, {8, 0xED, [4]int8{16, 0, 0, 0}}, {9, 0x1DC, [4]int8{0, 9, 0, 0}},
		{9, 0x1DD, [4]int8{1, 8, 0, 0}}, {9, 0x1DE, [4]int8{2, 7, 0, 0}}, {9, 0x1DF, [4]int8{3, 6, 0, 0}}, {9, 0x1E0, [4]int8{4, 5, 0, 0}},
		{9, 0x1E1, [4]int8{5, 4, 0, 0}}, {9, 0x1E2, [4]int8{6, 3, 0, 0}}, {9, 0x1E3, [4]int8{7, 2, 0, 0}}, {9, 0x1E4, [4]int8{8, 1, 0, 0}},
		{9, 0x1E5, [4]int8{9, 0, 0, 0}}, {9, 0x1E6, [4]int8{1, 16, 0, 0}}, {9, 0x1E7, [4]int8{16, 1, 0, 0}}, {10, 0x3D0, [4]int8{0, 10, 0, 0}},
		{10, 0x3D1, [4]int8{1, 9, 0, 0}}, {10, 0x3D2, [4]int8{2, 8, 0, 0}}, {10, 0x3D3, [4]int8{3, 7, 0, 0}}, {10, 0x3D4, [4]int8{4, 6, 0, 0}},
		{10, 0x3D5, [4]int8{5, 5, 0, 0}}, {10, 0x3D6, [4]int8{6, 4, 0, 0}}, {10, 0x3D7, [4]int8{7, 3, 0, 0}}, {10, 0x3D8, [4]int8{8, 2, 0, 0}},
		{10, 0x3D9, [4]int8{9, 1, 0, 0}}, {10, 0x3DA, [4]int8{10, 0, 0, 0}}, {10, 0x3DB, [4]int8{0, 11, 0, 0}}, {10, 0x3DC, [4]int8{1, 10, 0, 0}},
		{10, 0x3DD, [4]int8{2, 9, 0, 0}}, {10, 0x3DE, [4]int8{3, 8, 0, 0}}, {10, 0x3DF, [4]int8{4, 7, 0, 0}}, {10, 0x3E0, [4]int8{5, 6, 0, 0}},
		{10, 0x3E1, [4]int8{6, 5, 0, 0}}, {10, 0x3E2, [4]int8{7, 4, 0, 0}}, {10, 0x3E3, [4]int8{8, 3, 0, 0}}, {10, 0x3E4, [4]int8{9, 2, 0, 0}},
		{10, 0x3E5, [4]int8{10, 1, 0, 0}}, {10, 0x3E6, [4]int8{11, 0, 0, 0}}, {10, 0x3E7, [4]int8{2, 16, 0, 0}}, {10, 0x3E8, [4]int8{16, 2, 0, 0}},
		{10, 0x3E9, [4]int8{3, 16, 0, 0}}, {10, 0x3EA, [4]int8{16, 3, 0, 0}}, {11, 0x7D6, [4]int8{0, 12, 0, 0}}, {11, 0x7D7, [4]int8{1, 11, 0, 0}},
		{11, 0x7D8, [4]int8{2, 10, 0, 0}}, {11, 0x7D9, [4]int8{3, 9, 0, 0}}, {11, 0x7DA, [4]int8{4, 8, 0, 0}}, {11, 0x7DB, [4]int8{5, 7, 0, 0}},
		{11, 0x7DC, [4]int8{6, 6, 0, 0}}, {11, 0x7DD, [4]int8{7, 5, 0, 0}}, {11, 0x7DE, [4]int8{8, 4, 0, 0}}, {11, 0x7DF, [4]int8{9, 3, 0, 0}},
		{11, 0x7E0, [4]int8{10, 2, 0, 0}}, {11, 0x7E1, [4]int8{11, 1, 0, 0}}, {11, 0x7E2, [4]int8{12, 0, 0, 0}}, {11, 0x7E3, [4]int8{4, 16, 0, 0}},
		{11, 0x7E4, [4]int8{16, 4, 0, 0}}, {12, 0xFCA, [4]int8{0, 13, 0, 0}}, {12, 0xFCB, [4]int8{1, 12, 0, 0}}, {12, 0xFCC, [4]int8{2, 11, 0, 0}},
		{12, 0xFCD, [4]int8{3, 10, 0, 0}}, {12, 0xFCE, [4]int8{4, 9, 0, 0}}, {12, 0xFCF, [4]int8{5, 8, 0, 0}}, {12, 0xFD0, [4]int8{6, 7, 0, 0}},
		{12, 0xFD1, [4]int8{7, 6, 0, 0}}, {12, 0xFD2, [4]int8{8, 5, 0, 0}}, {12, 0xFD3, [4]int8{9, 4, 0, 0}}, {12, 0xFD4, [4]int8{10, 3, 0, 0}},
		{12, 0xFD5, [4]int8{11, 2, 0, 0}}, {12, 0xFD6, [4]int8{12, 1, 0, 0}}, {12, 0xFD7, [4]int8{13, 0, 0, 0}}, {12, 0xFD8, [4]int8{0, 14, 0, 0}},
		{12, 0xFD9, [4]int8{1, 13, 0, 0}}, {12, 0xFDA, [4]int8{2, 12, 0, 0}}, {12, 0xFDB, [4]int8{3, 11, 0, 0}}, {12, 0xFDC, [4]int8{4, 10, 0, 0}},
		{12, 0xFDD, [4]int8{5, 9, 0, 0}}, {12, 0xFDE, [4]int8{6, 8, 0, 0}}, {12, 0xFDF, [4]int8{7, 7, 0, 0}}, {12, 0xFE0, [4]int8{8, 6, 0, 0}},
		{12, 0xFE1, [4]int8{9, 5, 0, 0}}, {12, 0xFE2, [4]int8{10, 4, 0, 0}}, {12, 0xFE3, [4]int8{11, 3, 0, 0}}, {12, 0xFE4, [4]int8{12, 2, 0, 0}},
		{12, 0xFE5, [4]int8{13, 1, 0, 0}}, {12, 0xFE6, [4]int8{14, 0, 0, 0}}, {12, 0xFE7, [4]int8{5, 16, 0, 0}}, {12, 0xFE8, [4]int8{16, 5, 0, 0}},
		{12, 0xFE9, [4]int8{6, 16, 0, 0}}, {12, 0xFEA, [4]int8{16, 6, 0, 0}}, {13, 0x1FD6, [4]int8{0, 15, 0, 0}}, {13, 0x1FD7, [4]int8{1, 14, 0, 0}},
		{13, 0x1FD8, [4]int8{2, 13, 0, 0}}, {13, 0x1FD9, [4]int8{3, 12, 0, 0}}, {13, 0x1FDA, [4]int8{4, 11, 0, 0}}, {13, 0x1FDB, [4]int8{5, 10, 0, 0}},
		{13, 0x1FDC, [4]int8{6, 9, 0, 0}}, {13, 0x1FDD, [4]int8{7, 8, 0, 0}}, {13, 0x1FDE, [4]int8{8, 7, 0, 0}}, {13, 0x1FDF, [4]int8{9, 6, 0, 0}},
		{13, 0x1FE0, [4]int8{10, 5, 0, 0}}, {13, 0x1FE1, [4]int8{11, 4, 0, 0}}, {13, 0x1FE2, [4]int8{12, 3, 0, 0}}, {13, 0x1FE3, [4]int8{13, 2, 0, 0}},
		{13, 0x1FE4, [4]int8{14, 1, 0, 0}}, {13, 0x1FE5, [4]int8{15, 0, 0, 0}}, {13, 0x1FE6, [4]int8{7, 16, 0, 0}}, {13, 0x1FE7, [4]int8{16, 7, 0, 0}},
		{14, 0x3FD0, [4]int8{1, 15, 0, 0}}, {14, 0x3FD1, [4]int8{2, 14, 0, 0}}, {14, 0x3FD2, [4]int8{3, 13, 0, 0}}, {14, 0x3FD3, [4]int8{4, 12, 0, 0}},
		{14, 0x3FD4, [4]int8{5, 11, 0, 0}}, {14, 0x3FD5, [4]int8{6, 10, 0, 0}}, {14, 0x3FD6, [4]int8{7, 9, 0, 0}}, {14, 0x3FD7, [4]int8{8, 8, 0, 0}},
		{14, 0x3FD8, [4]int8{9, 7, 0, 0}}, {14, 0x3FD9, [4]int8{10, 6, 0, 0}}, {14, 0x3FDA, [4]int8{11, 5, 0, 0}}, {14, 0x3FDB, [4]int8{12, 4, 0, 0}},
		{14, 0x3FDC, [4]int8{13, 3, 0, 0}}, {14, 0x3FDD, [4]int8{14, 2, 0, 0}}, {14, 0x3FDE, [4]int8{15, 1, 0, 0}}, {14, 0x3FDF, [4]int8{7, 10, 0, 0}},
		{14, 0x3FE0, [4]int8{8, 9, 0, 0}}, {14, 0x3FE1, [4]int8{9, 8, 0, 0}}, {14, 0x3FE2, [4]int8{10, 7, 0, 0}}, {14, 0x3FE3, [4]int8{11, 6, 0, 0}},
		{14, 0x3FE4, [4]int8{12, 5, 0, 0}}, {14, 0x3FE5, [4]int8{13, 4, 0, 0}}, {14, 0x3FE6, [4]int8{14, 3, 0, 0}}, {14, 0x3FE7, [4]int8{15, 2, 0, 0}},
		{14, 0x3FE8, [4]int8{8, 16, 0, 0}}, {14, 0x3FE9, [4]int8{16, 8, 0, 0}}, {14, 0x3FEA, [4]int8{9, 16, 0, 0}}, {14, 0x3FEB, [4]int8{16, 9, 0, 0}},
		{15, 0x7FD8, [4]int8{2, 15, 0, 0}}, {15, 0x7FD9, [4]int8{3, 14, 0, 0}}, {15, 0x7FDA, [4]int8{4, 13, 0, 0}}, {15, 0x7FDB, [4]int8{5, 12, 0, 0}},
		{15, 0x7FDC, [4]int8{6, 11, 0, 0}}, {15, 0x7FDD, [4]int8{3, 15, 0, 0}}, {15, 0x7FDE, [4]int8{4, 14, 0, 0}}, {15, 0x7FDF, [4]int8{5, 13, 0, 0}},
		{15, 0x7FE0, [4]int8{6, 12, 0, 0}}, {15, 0x7FE1, [4]int8{7, 11, 0, 0}}, {15, 0x7FE2, [4]int8{8, 10, 0, 0}}, {15, 0x7FE3, [4]int8{9, 9, 0, 0}},
		{15, 0x7FE4, [4]int8{10, 8, 0, 0}}, {15, 0x7FE5, [4]int8{11, 7, 0, 0}}, {15, 0x7FE6, [4]int8{12, 6, 0, 0}}, {15, 0x7FE7, [4]int8{13, 5, 0, 0}},
		{15, 0x7FE8, [4]int8{14, 4, 0, 0}}, {15, 0x7FE9, [4]int8{15, 3, 0, 0}}, {15, 0x7FEA, [4]int8{10, 16, 0, 0}}, {15, 0x7FEB, [4]int8{16, 10, 0, 0}},
		{16, 0xFFD8, [4]int8{4, 15, 0, 0}}, {16, 0xFFD9, [4]int8{5, 14, 0, 0}}, {16, 0xFFDA, [4]int8{6, 13, 0, 0}}, {16, 0xFFDB, [4]int8{7, 12, 0, 0}},
		{16, 0xFFDC, [4]int8{8, 11, 0, 0}}, {16, 0xFFDD, [4]int8{9, 10, 0, 0}}, {16, 0xFFDE, [4]int8{10, 9, 0, 0}}, {16, 0xFFDF, [4]int8{11, 8, 0, 0}},
		{16, 0xFFE0, [4]int8{12, 7, 0, 0}}, {16, 0xFFE1, [4]int8{13, 6, 0, 0}}, {16, 0xFFE2, [4]int8{14, 5, 0, 0}}, {16, 0xFFE3, [4]int8{15, 4, 0, 0}},
		{16, 0xFFE4, [4]int8{14, 6, 0, 0}}, {16, 0xFFE5, [4]int8{15, 5, 0, 0}}, {16, 0xFFE6, [4]int8{11, 16, 0, 0}}, {16, 0xFFE7, [4]int8{16, 11, 0, 0}},
		{17, 0x1FFD0, [4]int8{5, 15, 0, 0}}, {17, 0x1FFD1, [4]int8{6, 14, 0, 0}}, {17, 0x1FFD2, [4]int8{7, 13, 0, 0}}, {17, 0x1FFD3, [4]int8{8, 12, 0, 0}},
		{17, 0x1FFD4, [4]int8{9, 11, 0, 0}}, {17, 0x1FFD5, [4]int8{10, 10, 0, 0}}, {17, 0x1FFD6, [4]int8{11, 9, 0, 0}}, {17, 0x1FFD7, [4]int8{12, 8, 0, 0}},
		{17, 0x1FFD8, [4]int8{13, 7, 0, 0}}, {17, 0x1FFD9, [4]int8{6, 15, 0, 0}}, {17, 0x1FFDA, [4]int8{7, 14, 0, 0}}, {17, 0x1FFDB, [4]int8{8, 13, 0, 0}},
		{17, 0x1FFDC, [4]int8{9, 12, 0, 0}}, {17, 0x1FFDD, [4]int8{10, 11, 0, 0}}, {17, 0x1FFDE, [4]int8{11, 10, 0, 0}}, {17, 0x1FFDF, [4]int8{12, 9, 0, 0}},
		{17, 0x1FFE0, [4]int8{13, 8, 0, 0}}, {17, 0x1FFE1, [4]int8{14, 7, 0, 0}}, {17, 0x1FFE2, [4]int8{15, 6, 0, 0}}, {17, 0x1FFE3, [4]int8{12, 16, 0, 0}},
		{17, 0x1FFE4, [4]int8{16, 12, 0, 0}}, {17, 0x1FFE5, [4]int8{13, 16, 0, 0}}, {17, 0x1FFE6, [4]int8{16, 13, 0, 0}}, {18, 0x3FFCE, [4]int8{7, 15, 0, 0}},
		{18, 0x3FFCF, [4]int8{8, 14, 0, 0}}, {18, 0x3FFD0, [4]int8{9, 13, 0, 0}}, {18, 0x3FFD1, [4]int8{10, 12, 0, 0}}, {18, 0x3FFD2, [4]int8{11, 11, 0, 0}},
		{18, 0x3FFD3, [4]int8{12, 10, 0, 0}}, {18, 0x3FFD4, [4]int8{13, 9, 0, 0}}, {18, 0x3FFD5, [4]int8{14, 8, 0, 0}}, {18, 0x3FFD6, [4]int8{15, 7, 0, 0}},
		{18, 0x3FFD7, [4]int8{8, 15, 0, 0}}, {18, 0x3FFD8, [4]int8{9, 14, 0, 0}}, {18, 0x3FFD9, [4]int8{10, 13, 0, 0}}, {18, 0x3FFDA, [4]int8{11, 12, 0, 0}},
		{18, 0x3FFDB, [4]int8{12, 11, 0, 0}}, {18, 0x3FFDC, [4]int8{13, 10, 0, 0}}, {18, 0x3FFDD, [4]int8{14, 9, 0, 0}}, {18, 0x3FFDE, [4]int8{15, 8, 0, 0}},
		{18, 0x3FFDF, [4]int8{9, 15, 0, 0}}, {18, 0x3FFE0, [4]int8{10, 14, 0, 0}}, {18, 0x3FFE1, [4]int8{11, 13, 0, 0}}, {18, 0x3FFE2, [4]int8{12, 12, 0, 0}},
		{18, 0x3FFE3, [4]int8{13, 11, 0, 0}}, {18, 0x3FFE4, [4]int8{14, 10, 0, 0}}, {18, 0x3FFE5, [4]int8{15, 9, 0, 0}}, {18, 0x3FFE6, [4]int8{10, 15, 0, 0}},
		{18, 0x3FFE7, [4]int8{11, 14, 0, 0}}, {18, 0x3FFE8, [4]int8{12, 13, 0, 0}}, {18, 0x3FFE9, [4]int8{13, 12, 0, 0}}, {18, 0x3FFEA, [4]int8{14, 11, 0, 0}},
		{18, 0x3FFEB, [4]int8{15, 10, 0, 0}}, {18, 0x3FFEC, [4]int8{11, 15, 0, 0}}, {18, 0x3FFED, [4]int8{12, 14, 0, 0}}, {18, 0x3FFEE, [4]int8{13, 13, 0, 0}},
		{18, 0x3FFEF, [4]int8{14, 12, 0, 0}}, {18, 0x3FFF0, [4]int8{15, 11, 0, 0}}, {18, 0x3FFF1, [4]int8{12, 15, 0, 0}}, {18, 0x3FFF2, [4]int8{13, 14, 0, 0}},
		{18, 0x3FFF3, [4]int8{14, 13, 0, 0}}, {18, 0x3FFF4, [4]int8{15, 12, 0, 0}}, {18, 0x3FFF5, [4]int8{13, 15, 0, 0}}, {18, 0x3FFF6, [4]int8{14, 14, 0, 0}},
		{18, 0x3FFF7, [4]int8{15, 13, 0, 0}}, {18, 0x3FFF8, [4]int8{14, 15, 0, 0}}, {18, 0x3FFF9, [4]int8{15, 14, 0, 0}}, {18, 0x3FFFA, [4]int8{14, 16, 0, 0}},
		{18, 0x3FFFB, [4]int8{15, 15, 0, 0}}, {18, 0x3FFFC, [4]int8{16, 14, 0, 0}}, {18, 0x3FFFD, [4]int8{15, 16, 0, 0}}, {18, 0x3FFFE, [4]int8{16, 15, 0, 0}},
		{18, 0x3FFFF, [4]int8{16, 16, 0, 0}},
	},
}

// huffSpectrum maps codebook numbers 1..11 to their codebooks. Index
// zero is the ZERO codebook and has no entries.
var huffSpectrum = [12]*huffCodebook{
	nil,
	&huffSpectrum1,
	&huffSpectrum2,
	&huffSpectrum3,
	&huffSpectrum4,
	&huffSpectrum5,
	&huffSpectrum6,
	&huffSpectrum7,
	&huffSpectrum8,
	&huffSpectrum9,
	&huffSpectrum10,
	&huffSpectrum11,
}
