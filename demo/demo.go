// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package demo wires the Field State Container and the PML Slab Updater
// into a minimal single-process time-stepping loop (cmd/pmldemo adds the
// Fractal Generator on top). It exists to exercise the public API end to end and to give the
// PML absorption scenario a runnable host; it is not the bulk-domain
// Maxwell solver, which stays out of this module's scope, so its
// interior update is deliberately the simplest stencil that lets a wave
// propagate to the PML.
package demo

import (
	"math"

	"github.com/ManobhavSachan/gprMax/field"
	"github.com/ManobhavSachan/gprMax/pml"
)

// Dipole is a soft Gaussian-pulsed source added to Ez at one cell every
// step; it is the "z-directed Gaussian dipole" P7 asks for.
type Dipole struct {
	I, J, K       int
	T0, Spread    float64
	Amplitude     float64
}

func (d Dipole) at(t float64) float64 {
	amp := d.Amplitude
	if amp == 0 {
		amp = 1
	}
	return amp * math.Exp(-math.Pow((t-d.T0)/d.Spread, 2))
}

// Cube is a vacuum cube of side n surrounded by a PML of the given
// depth on all six faces, order 2, MRIPML electric kernels, built with
// the Bérenger-optimal polynomial grading (spec section 4.3).
type Cube struct {
	C      *field.Container
	Slabs  map[pml.Face]*pml.Slab
	N      int
	Dt     float64
}

// NewCube builds an n×n×n unit-spacing vacuum cube with a pmlDepth-cell
// PML on every face.
func NewCube(n, pmlDepth int, dt float64) *Cube {
	c := field.NewContainer(n, n, n, 1, 1, 1, 1)
	c.UpdateCoeffsE.Set(0, [5]float64{0, 0, 0, 0, 1})
	c.UpdateCoeffsH.Set(0, [5]float64{0, 0, 0, 0, 1})

	prof := pml.Build(pml.DefaultDesignParams(pmlDepth, 2, 1, dt))

	type bound struct{ xs, xf, ys, yf, zs, zf int }
	bounds := map[pml.Face]bound{
		pml.XMinus: {0, pmlDepth, 0, n, 0, n},
		pml.XPlus:  {n - pmlDepth, n, 0, n, 0, n},
		pml.YMinus: {0, n, 0, pmlDepth, 0, n},
		pml.YPlus:  {0, n, n - pmlDepth, n, 0, n},
		pml.ZMinus: {0, n, 0, n, 0, pmlDepth},
		pml.ZPlus:  {0, n, 0, n, n - pmlDepth, n},
	}
	slabs := make(map[pml.Face]*pml.Slab, 6)
	for face, b := range bounds {
		slabs[face] = pml.NewSlab(face, 2, pml.MRIPML, b.xs, b.xf, b.ys, b.yf, b.zs, b.zf, 1, prof)
	}
	return &Cube{C: c, Slabs: slabs, N: n, Dt: dt}
}

// interiorH/interiorE apply the plain (non-PML) Yee curl update to
// every interior cell. This stand-in stencil is the "separate, simpler
// stencil kernel" spec.md assumes an outer collaborator supplies; it is
// not part of this module's tested surface beyond driving the demo.
func (cube *Cube) interiorH() {
	c, dt := cube.C, cube.Dt
	inv := dt / c.Dx
	for i := 0; i < c.Nx; i++ {
		for j := 0; j < c.Ny; j++ {
			for k := 0; k < c.Nz; k++ {
				c.Hx.Add(i, j, k, inv*((c.Ey.At(i, j, k+1)-c.Ey.At(i, j, k))-(c.Ez.At(i, j+1, k)-c.Ez.At(i, j, k))))
				c.Hy.Add(i, j, k, inv*((c.Ez.At(i+1, j, k)-c.Ez.At(i, j, k))-(c.Ex.At(i, j, k+1)-c.Ex.At(i, j, k))))
				c.Hz.Add(i, j, k, inv*((c.Ex.At(i, j+1, k)-c.Ex.At(i, j, k))-(c.Ey.At(i+1, j, k)-c.Ey.At(i, j, k))))
			}
		}
	}
}

func (cube *Cube) interiorE() {
	c, dt := cube.C, cube.Dt
	inv := dt / c.Dx
	for i := 1; i < c.Nx; i++ {
		for j := 1; j < c.Ny; j++ {
			for k := 1; k < c.Nz; k++ {
				c.Ex.Add(i, j, k, inv*((c.Hz.At(i, j, k)-c.Hz.At(i, j-1, k))-(c.Hy.At(i, j, k)-c.Hy.At(i, j, k-1))))
				c.Ey.Add(i, j, k, inv*((c.Hx.At(i, j, k)-c.Hx.At(i, j, k-1))-(c.Hz.At(i, j, k)-c.Hz.At(i-1, j, k))))
				c.Ez.Add(i, j, k, inv*((c.Hy.At(i, j, k)-c.Hy.At(i-1, j, k))-(c.Hx.At(i, j, k)-c.Hx.At(i, j-1, k))))
			}
		}
	}
}

// Step advances the cube by one full time step: magnetic half-step on
// the interior, magnetic PML update on all six slabs, the dipole
// source's Gaussian value at t (added on every step), electric half-step on the
// interior, electric PML update on all six slabs — the data flow
// spec section 2 describes.
func (cube *Cube) Step(workers int, t float64, src *Dipole) {
	e := &pml.Fields{Ex: cube.C.Ex, Ey: cube.C.Ey, Ez: cube.C.Ez}
	h := &pml.Fields{Hx: cube.C.Hx, Hy: cube.C.Hy, Hz: cube.C.Hz}

	cube.interiorH()
	for _, s := range cube.Slabs {
		s.RunH(workers, cube.C.UpdateCoeffsH, cube.C.ID, e, h)
	}

	if src != nil {
		cube.C.Ez.Add(src.I, src.J, src.K, src.at(t))
	}

	cube.interiorE()
	for _, s := range cube.Slabs {
		s.RunE(workers, cube.C.UpdateCoeffsE, cube.C.ID, h, e)
	}
}

// RMS returns the root-mean-square of Ez over the half-open box
// [i0,i1)×[j0,j1)×[k0,k1), the statistic P7 checks at the PML's inner
// face and at the source.
func (cube *Cube) RMS(i0, i1, j0, j1, k0, k1 int) float64 {
	sum, n := 0.0, 0
	a := cube.C.Ez
	for i := i0; i < i1; i++ {
		for j := j0; j < j1; j++ {
			for k := k0; k < k1; k++ {
				v := a.At(i, j, k)
				sum += v * v
				n++
			}
		}
	}
	if n == 0 {
		return 0
	}
	return math.Sqrt(sum / float64(n))
}
