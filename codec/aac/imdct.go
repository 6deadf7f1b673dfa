/*
NAME
  imdct.go

DESCRIPTION
  imdct.go provides the inverse modified discrete cosine transform
  used by the filterbank. The IMDCT is computed through a DCT-IV,
  itself factored through a recursive DCT-II, with the redundant
  output halves derived by mirroring.

AUTHOR
  Dan Kortschak <dan@ausocean.org>

LICENSE
  Copyright (C) 2025 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package aac

import "math"

// dctII computes the unnormalized DCT-II of input into output using
// the recursive halving of Zhijin & Huisheng. The length must be a
// power of two; the base case is the two-point transform.
func dctII(input, output []float64) {
	n := len(input)
	if n == 2 {
		output[0] = input[0] + input[1]
		output[1] = math.Sqrt(0.5) * (input[0] - input[1])
		return
	}

	half := n / 2
	g := make([]float64, half)
	h := make([]float64, half)
	for i := 0; i < half; i++ {
		g[i] = input[i] + input[n-1-i]
		h[i] = input[i] - input[n-1-i]
	}

	// Even outputs come from the DCT-II of the folded sum.
	even := make([]float64, half)
	dctII(g, even)
	for k := 0; k < half; k++ {
		output[2*k] = even[k]
	}

	// Odd outputs come from the DCT-II of the weighted difference,
	// unwound by a running subtraction.
	b := make([]float64, half)
	for i := 0; i < half; i++ {
		b[i] = h[i] * 2 * math.Cos(math.Pi/float64(2*n)*float64(2*i+1))
	}
	odd := make([]float64, half)
	dctII(b, odd)

	output[1] = odd[0] / 2
	for k := 1; k < half; k++ {
		output[2*k+1] = odd[k] - output[2*k-1]
	}
}

// dctIV computes the unnormalized DCT-IV of input into output via a
// same-length DCT-II with O(n) pre and post processing.
func dctIV(input, output []float64) {
	n := len(input)

	pre := make([]float64, n)
	for i := 0; i < n; i++ {
		pre[i] = 2 * math.Cos(math.Pi*float64(2*i+1)/float64(4*n)) * input[i]
	}

	post := make([]float64, n)
	dctII(pre, post)

	output[0] = post[0] / 2
	for i := 1; i < n; i++ {
		output[i] = post[i] - output[i-1]
	}
}

// imdct computes the inverse MDCT of the n coefficients in input into
// the 2n samples of output. Quarters two and four of the output are
// mirrors of quarters one and three, so only a DCT-IV of length n is
// required.
func imdct(input, output []float64) {
	n := len(input)
	q1 := n / 2

	dct := make([]float64, n)
	dctIV(input, dct)

	// The second half of the DCT-IV supplies the leading quarter of
	// the IMDCT; the first half supplies the trailing quarter negated.
	for i := 0; i < q1; i++ {
		output[n+q1+i] = -dct[i]
	}
	for i := q1; i < n; i++ {
		output[i-q1] = dct[i]
	}

	// Second quarter: first quarter mirrored and negated.
	for i := 0; i < q1; i++ {
		output[q1+i] = -output[q1-1-i]
	}
	// Third quarter: fourth quarter mirrored.
	for i := 0; i < q1; i++ {
		output[n+q1-1-i] = output[n+q1+i]
	}

	scale := 2 / float64(n)
	for i := range output {
		output[i] *= scale
	}
}

// imdctNaive evaluates the defining IMDCT expression directly. It is
// far too slow for decoding and exists as the conformance reference
// for the factored transform.
func imdctNaive(input, output []float64) {
	n := len(input)
	size := 2 * n
	n0 := (float64(size)/2 + 1) / 2

	for s := 0; s < size; s++ {
		var sum float64
		for k := 0; k < n; k++ {
			sum += input[k] * math.Cos(2*math.Pi/float64(size)*(float64(s)+n0)*(float64(k)+0.5))
		}
		output[s] = 2 / float64(n) * sum
	}
}
