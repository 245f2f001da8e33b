// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command pmldemo drives demo.Cube through a fixed number of time
// steps and reports the field's decay at the PML's inner face, the
// minimal end-to-end exercise of the Field Container, PML Slab
// Updater, and Fractal Generator working together.
package main

import (
	"flag"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/ManobhavSachan/gprMax/demo"
	"github.com/ManobhavSachan/gprMax/fractal"
)

func main() {

	n := flag.Int("n", 24, "cube side length, cells")
	pmlDepth := flag.Int("pml", 6, "PML slab depth, cells")
	dt := flag.Float64("dt", 0.4, "time step")
	steps := flag.Int("steps", 300, "number of time steps")
	workers := flag.Int("workers", 2, "PML kernel worker count")
	flag.Parse()

	defer utl.DoProf(false)()

	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	io.PfWhite("\npmldemo -- PML / fractal core demo\n\n")

	mid := *n / 2
	cube := demo.NewCube(*n, *pmlDepth, *dt)
	src := &demo.Dipole{I: mid, J: mid, K: mid, T0: 8, Spread: 3, Amplitude: 1}

	// seed a fractal surface once, the way geometry construction would,
	// purely to exercise generate_fractal_2d end to end in the demo
	spectrum := fractal.RandomSpectrum((*n)*(*n), 42)
	surface := make([]complex128, (*n)*(*n))
	fractal.Generate2D(fractal.Params2D{
		Nx: *n, Ny: *n, Gx: *n, Gy: *n,
		D: 2.5, Weighting: [2]float64{1, 1}, Centre: [2]float64{float64(*n) / 2, float64(*n) / 2},
		A: spectrum, Workers: *workers,
	}, surface)
	io.Pf("fractal surface seeded: %d cells, centre value |A/B|=%g\n", len(surface), abs(surface[0]))

	peak := 0.0
	for step := 0; step < *steps; step++ {
		t := float64(step) * (*dt)
		cube.Step(*workers, t, src)
		if r := cube.RMS(mid-2, mid+2, mid-2, mid+2, mid-2, mid+2); r > peak {
			peak = r
		}
		if step%50 == 0 {
			inner := cube.RMS(*pmlDepth, *pmlDepth+1, 0, *n, 0, *n)
			io.Pf("step %4d  source-rms=%10.3e  inner-pml-rms=%10.3e\n", step, r0(cube, mid), inner)
		}
	}
	inner := cube.RMS(*pmlDepth, *pmlDepth+1, 0, *n, 0, *n)
	io.PfGreen("\ndone: peak source rms=%.3e, final inner-pml rms=%.3e (ratio %.3e)\n", peak, inner, inner/peak)
}

func r0(cube *demo.Cube, mid int) float64 {
	return cube.RMS(mid-2, mid+2, mid-2, mid+2, mid-2, mid+2)
}

func abs(c complex128) float64 {
	return math.Hypot(real(c), imag(c))
}
