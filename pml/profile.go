// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pml

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Profiles holds the 1-D recursive-convolution coefficient tables
// RA/RB/RE/RF[order,n] for one slab, read-only once built (spec
// section 3: "Coefficient profiles are read-only during stepping").
// Index 0 of the n axis is closest to the PML's outer boundary.
type Profiles struct {
	Order  int // 1 or 2
	N      int // slab depth along the normal axis
	RA, RB, RE, RF [][]float64 // [Order][N]
}

// NewProfiles allocates zeroed profile tables for the given order and
// depth, for callers that want to fill RA/RB/RE/RF directly instead of
// going through Build.
func NewProfiles(order, n int) *Profiles {
	if order != 1 && order != 2 {
		chk.Panic("PML order must be 1 or 2, got %d", order)
	}
	if n <= 0 {
		chk.Panic("PML slab depth must be positive, got %d", n)
	}
	alloc := func() [][]float64 {
		rows := make([][]float64, order)
		for i := range rows {
			rows[i] = make([]float64, n)
		}
		return rows
	}
	return &Profiles{Order: order, N: n, RA: alloc(), RB: alloc(), RE: alloc(), RF: alloc()}
}

// Grading is a normalized-depth scalar function of ρ ∈ [0,1], ρ=0 at
// the PML's outer boundary. It is the pml package's instance of
// github.com/cpmech/gosl/fun.Func (F(t,x) with t=ρ, x unused), so
// callers may swap in a polynomial grading, a constant, or a custom
// fun.Pts spline the same way gofem callers swap boundary-condition
// functions for its elements.
type Grading interface {
	F(rho float64, x []float64) float64
	G(rho float64, x []float64) float64
	H(rho float64, x []float64) float64
}

// PolyGrading is a polynomial grading ρ ↦ max·ρ^m, the standard
// Bérenger/gprMax polynomial conductivity and κ profile.
type PolyGrading struct {
	Max float64
	M   float64
}

func (g PolyGrading) F(rho float64, x []float64) float64 { return g.Max * math.Pow(rho, g.M) }
func (g PolyGrading) G(rho float64, x []float64) float64 {
	return g.Max * g.M * math.Pow(rho, g.M-1)
}
func (g PolyGrading) H(rho float64, x []float64) float64 {
	return g.Max * g.M * (g.M - 1) * math.Pow(rho, g.M-2)
}

// ConstGrading is a constant grading, used for κ (default 1) and α
// (default 0) when the caller wants plain recursive-convolution PML
// with no CFS shift.
type ConstGrading float64

func (g ConstGrading) F(rho float64, x []float64) float64 { return float64(g) }
func (g ConstGrading) G(rho float64, x []float64) float64 { return 0 }
func (g ConstGrading) H(rho float64, x []float64) float64 { return 0 }

// PoleDesign is one recursive-convolution pole's design parameters.
type PoleDesign struct {
	Sigma, Kappa, Alpha Grading
}

// DesignParams configures Build, the PML profile builder (spec section
// 4.3, "PML Design / Profile Builder").
type DesignParams struct {
	N      int     // slab depth, cells
	Order  int     // 1 or 2
	D      float64 // spatial step along the normal axis
	Dt     float64 // time step
	Eps0   float64 // vacuum permittivity (normalised units: 1)
	ErRel  float64 // relative permittivity at the PML, usually 1
	Poles  [2]PoleDesign
}

// BerengerOptimalSigmaMax returns the standard FDTD-PML optimal-loss
// conductivity, σ_max = (m+1) / (150 π √ε_r d), the default used by
// gprMax and most FDTD-PML references for polynomial grading order m.
func BerengerOptimalSigmaMax(m, d, erRel float64) float64 {
	return (m + 1) / (150 * math.Pi * math.Sqrt(erRel) * d)
}

// DefaultDesignParams returns polynomial-graded design parameters with
// the Bérenger-optimal σ_max, κ_max=1, α_max=0 (i.e. plain recursive
// convolution PML, no CFS shift) for a slab of depth n and order.
// Callers wanting CFS-PML override Poles directly.
func DefaultDesignParams(n, order int, d, dt float64) DesignParams {
	const m = 3.0 // Bérenger/gprMax default polynomial grading order
	sigmaMax := BerengerOptimalSigmaMax(m, d, 1.0)
	pole := PoleDesign{
		Sigma: PolyGrading{Max: sigmaMax, M: m},
		Kappa: ConstGrading(1),
		Alpha: ConstGrading(0),
	}
	return DesignParams{
		N: n, Order: order, D: d, Dt: dt, Eps0: 1, ErRel: 1,
		Poles: [2]PoleDesign{pole, pole},
	}
}

// Build turns DesignParams into a Profiles table using the standard
// CFS recursive-convolution pole recursion:
//
//	RA = exp(-(σ/κ + α) Δt/ε0)
//	RB = σ/(σκ + ακ²) · (RA - 1)
//	RE = RA
//	RF = RB
//
// evaluated at each cell's normalized depth ρ = (i + 0.5)/N (cell
// centre of the 0-based depth index i), one pole per order. This is the recorded default for the
// spec's "coefficient profiles are precomputed from PML design
// parameters" (section 3); any caller may instead build RA/RB/RE/RF
// directly and skip Build entirely.
func Build(p DesignParams) *Profiles {
	prof := NewProfiles(p.Order, p.N)
	for order := 0; order < p.Order; order++ {
		pole := p.Poles[order]
		for i := 0; i < p.N; i++ {
			rho := (float64(i) + 0.5) / float64(p.N)
			sigma := pole.Sigma.F(rho, nil)
			kappa := pole.Kappa.F(rho, nil)
			alpha := pole.Alpha.F(rho, nil)
			ra := math.Exp(-(sigma/kappa + alpha) * p.Dt / p.Eps0)
			denom := sigma*kappa + alpha*kappa*kappa
			rb := 0.0
			if denom != 0 {
				rb = sigma / denom * (ra - 1)
			}
			prof.RA[order][i] = ra
			prof.RB[order][i] = rb
			prof.RE[order][i] = ra
			prof.RF[order][i] = rb
		}
	}
	return prof
}
