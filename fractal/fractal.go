// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fractal builds 2-D surface and 3-D volume fractal fields by
// weighting a random complex spectrum by a 1/r^D inverse power law in
// reciprocal space, the spectral fractal-synthesis method used to seed
// heterogeneous material geometry (spec section 4.2).
package fractal

import (
	"math"

	"github.com/ManobhavSachan/gprMax/internal/parallel"
	"github.com/cpmech/gosl/chk"
)

// dcGuard is the sentinel substituted for B when a cell's shifted
// coordinate lands exactly on the centre (r==0, so B==0): the
// specific value 0.9 is part of the contract, not a tunable, and must
// be preserved exactly (spec section 4.2, step 3).
const dcGuard = 0.9

// Params2D configures Generate2D.
type Params2D struct {
	Nx, Ny         int         // sub-region size
	Ox, Oy         int         // sub-region offset within the global spectrum
	Gx, Gy         int         // global spectrum size
	D              float64     // fractal dimension
	Weighting      [2]float64  // per-axis weighting
	Centre         [2]float64  // centre vector v1, pre-scaled by weighting
	A              []complex128 // random spectrum, row-major Nx*Ny
	Workers        int
}

// Params3D configures Generate3D.
type Params3D struct {
	Nx, Ny, Nz int
	Ox, Oy, Oz int
	Gx, Gy, Gz int
	D          float64
	Weighting  [3]float64
	Centre     [3]float64
	A          []complex128 // row-major Nx*Ny*Nz
	Workers    int
}

// wrappedCoord computes one axis of the FFT-origin-centred shifted
// coordinate v2 = weighting * ((index + offset + size/2) mod size),
// spec section 4.2 step 1.
func wrappedCoord(index, offset, globalSize int, weight float64) float64 {
	half := globalSize / 2
	m := (index + offset + half) % globalSize
	if m < 0 {
		m += globalSize
	}
	return weight * float64(m)
}

// radiusAndB computes r = ||v2-v1||_2 and B = r^D, substituting the DC
// guard when B==0.
func radiusAndB(v2, v1 []float64, d float64) (r, b float64) {
	sumSq := 0.0
	for a := range v2 {
		diff := v2[a] - v1[a]
		sumSq += diff * diff
	}
	r = math.Sqrt(sumSq)
	b = math.Pow(r, d)
	if b == 0 {
		b = dcGuard
	}
	return
}

// Generate2D fills out with A[i,j] / B for each cell of the sub-region,
// where B = r^D, so A is weighted by 1/r^D (spec section 4.2). out must
// have length Nx*Ny, row-major with j contiguous.
func Generate2D(p Params2D, out []complex128) {
	if len(p.A) != p.Nx*p.Ny {
		chk.Panic("fractal: input spectrum has %d entries, want %d", len(p.A), p.Nx*p.Ny)
	}
	if len(out) != p.Nx*p.Ny {
		chk.Panic("fractal: output has %d entries, want %d", len(out), p.Nx*p.Ny)
	}
	parallel.For(p.Nx, p.Workers, func(lo, hi int) {
		v1 := p.Centre[:]
		for i := lo; i < hi; i++ {
			v2x := wrappedCoord(i, p.Ox, p.Gx, p.Weighting[0])
			for j := 0; j < p.Ny; j++ {
				v2y := wrappedCoord(j, p.Oy, p.Gy, p.Weighting[1])
				_, b := radiusAndB([]float64{v2x, v2y}, v1, p.D)
				idx := i*p.Ny + j
				out[idx] = p.A[idx] / complex(b, 0)
			}
		}
	})
}

// Generate3D fills out with A[i,j,k] / B for each cell of the
// sub-region (spec section 4.2). out must have length Nx*Ny*Nz,
// row-major with k contiguous.
func Generate3D(p Params3D, out []complex128) {
	n := p.Nx * p.Ny * p.Nz
	if len(p.A) != n {
		chk.Panic("fractal: input spectrum has %d entries, want %d", len(p.A), n)
	}
	if len(out) != n {
		chk.Panic("fractal: output has %d entries, want %d", len(out), n)
	}
	parallel.For(p.Nx, p.Workers, func(lo, hi int) {
		v1 := p.Centre[:]
		for i := lo; i < hi; i++ {
			v2x := wrappedCoord(i, p.Ox, p.Gx, p.Weighting[0])
			for j := 0; j < p.Ny; j++ {
				v2y := wrappedCoord(j, p.Oy, p.Gy, p.Weighting[1])
				for k := 0; k < p.Nz; k++ {
					v2z := wrappedCoord(k, p.Oz, p.Gz, p.Weighting[2])
					_, b := radiusAndB([]float64{v2x, v2y, v2z}, v1, p.D)
					idx := (i*p.Ny+j)*p.Nz + k
					out[idx] = p.A[idx] / complex(b, 0)
				}
			}
		}
	})
}
