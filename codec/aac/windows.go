/*
NAME
  windows.go

DESCRIPTION
  windows.go materializes the transform window halves used by the
  filterbank: sine and Kaiser-Bessel-derived shapes for long and short
  windows, and the start/stop composites built from them.

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
	"math"
	"sync"
)

// Start/stop composite windows pad the short half with flat regions of
// this length on either side: 448 + 128 + 448 = 1024.
const windowFlatLen = (halfLong - halfShort) / 2

// windowSet holds every left and right half-window for one shape,
// indexed by window sequence.
type windowSet struct {
	leftLong   [halfLong]float64
	leftStart  [halfLong]float64
	leftStop   [halfLong]float64
	leftShort  [halfShort]float64
	rightLong  [halfLong]float64
	rightStart [halfLong]float64
	rightStop  [halfLong]float64
	rightShort [halfShort]float64
}

var (
	windowOnce sync.Once
	windowSets [2]windowSet // Indexed by window shape.
)

// initSinLeft fills out with the left half of a sine hump, range
// (0, pi/2).
func initSinLeft(out []float64) {
	n := len(out)
	for i := 0; i < n; i++ {
		out[i] = math.Sin(math.Pi / float64(n*2) * (float64(i) + 0.5))
	}
}

// initSinRight fills out with the right half of a sine hump, range
// (pi/2, pi).
func initSinRight(out []float64) {
	n := len(out)
	for i := 0; i < n; i++ {
		out[i] = math.Sin(math.Pi / float64(n*2) * (float64(n+i) + 0.5))
	}
}

// besselI0 evaluates the zeroth-order modified Bessel function of the
// first kind by its power series, which converges quickly for the
// arguments the KBD kernel produces.
func besselI0(x float64) float64 {
	sum := 1.0
	term := 1.0
	half := x / 2
	for k := 1; k < 64; k++ {
		term *= half / float64(k)
		t := term * term
		sum += t
		if t < sum*1e-21 {
			break
		}
	}
	return sum
}

// kbdKernel returns the Kaiser-Bessel kernel of length n+1 for the
// given alpha, the W' sequence of the standard's KBD definition.
func kbdKernel(n int, alpha float64) []float64 {
	w := make([]float64, n+1)
	pa := math.Pi * alpha
	for i := 0; i <= n; i++ {
		t := float64(i)/float64(n/2) - 1
		w[i] = besselI0(pa*math.Sqrt(1-t*t)) / besselI0(pa)
	}
	return w
}

// initKbd fills left and right halves of a KBD window of half-length
// n: the square root of the cumulative kernel sum over the total.
func initKbd(left, right []float64, alpha float64) {
	n := len(left)
	kernel := kbdKernel(n, alpha)

	var total float64
	for _, v := range kernel {
		total += v
	}

	var cum float64
	for i := 0; i < n; i++ {
		cum += kernel[i]
		left[i] = math.Sqrt(cum / total)
	}
	for i := 0; i < n; i++ {
		right[n-1-i] = left[i]
	}
}

// initComposite builds a start or stop half-window: a flat region, the
// short half, and the opposite flat region. For a stop left half the
// leading flat is zero and the trailing flat is one; a start right
// half is the reverse.
func initComposite(out []float64, short []float64, leadingZero bool) {
	lead, trail := 1.0, 0.0
	if leadingZero {
		lead, trail = 0.0, 1.0
	}
	for i := 0; i < windowFlatLen; i++ {
		out[i] = lead
	}
	copy(out[windowFlatLen:], short)
	for i := windowFlatLen + halfShort; i < halfLong; i++ {
		out[i] = trail
	}
}

func initWindows() {
	for shape := range windowSets {
		ws := &windowSets[shape]

		if shape == winShapeSin {
			initSinLeft(ws.leftLong[:])
			initSinLeft(ws.leftShort[:])
			initSinRight(ws.rightLong[:])
			initSinRight(ws.rightShort[:])
		} else {
			initKbd(ws.leftLong[:], ws.rightLong[:], 4)
			initKbd(ws.leftShort[:], ws.rightShort[:], 6)
		}

		// A start block opens like a long block and closes into the
		// short grid; a stop block is the mirror image.
		copy(ws.leftStart[:], ws.leftLong[:])
		copy(ws.rightStop[:], ws.rightLong[:])
		initComposite(ws.leftStop[:], ws.leftShort[:], true)
		initComposite(ws.rightStart[:], ws.rightShort[:], false)
	}
}

// leftWindow returns the left half-window for the given shape and
// window sequence. The shape is the previous block's shape; sequence
// selection follows the current block.
func leftWindow(shape int, sequence int) []float64 {
	windowOnce.Do(initWindows)
	ws := &windowSets[shape&1]
	switch sequence {
	case winSeqLongStart:
		return ws.leftStart[:]
	case winSeqLongStop:
		return ws.leftStop[:]
	case winSeq8Short:
		return ws.leftShort[:]
	default:
		return ws.leftLong[:]
	}
}

// rightWindow returns the right half-window for the given shape and
// window sequence.
func rightWindow(shape int, sequence int) []float64 {
	windowOnce.Do(initWindows)
	ws := &windowSets[shape&1]
	switch sequence {
	case winSeqLongStart:
		return ws.rightStart[:]
	case winSeqLongStop:
		return ws.rightStop[:]
	case winSeq8Short:
		return ws.rightShort[:]
	default:
		return ws.rightLong[:]
	}
}

// shortLeftWindow and shortRightWindow return the 128-sample halves
// used for the individual windows of an eight-short block.
func shortLeftWindow(shape int) []float64 {
	windowOnce.Do(initWindows)
	return windowSets[shape&1].leftShort[:]
}

func shortRightWindow(shape int) []float64 {
	windowOnce.Do(initWindows)
	return windowSets[shape&1].rightShort[:]
}
