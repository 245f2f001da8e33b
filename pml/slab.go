// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pml

import (
	"github.com/ManobhavSachan/gprMax/field"
	"github.com/ManobhavSachan/gprMax/internal/parallel"
	"github.com/cpmech/gosl/chk"
)

// Slab is one of the six PML boundary regions. It owns its recursive-
// convolution auxiliary state (Phi1, Phi2) and its coefficient
// profiles (RA, RB, RE, RF); the Field Container owns the field
// arrays the slab's kernels read and write.
//
// Index derivation. For a slab whose normal axis is N, Maxwell's curl
// identities split into a "next" tangential component (cyclic
// successor of N: x→y→z→x) and a "prev" component (the predecessor).
// Faraday's law (∂H/∂t ∝ -curl E) gives, keeping only the ∂/∂N term:
//
//	H_next += c_H · correction(dE_prev)   (sign +1, Phi1)
//	H_prev -= c_H · correction(dE_next)   (sign -1, Phi2)
//
// and Ampere's law (∂E/∂t ∝ +curl H) gives:
//
//	E_next -= c_E · correction(dH_prev)   (sign -1, Phi1)
//	E_prev += c_E · correction(dH_next)   (sign +1, Phi2)
//
// which reproduces the per-face sign table of spec section 4.1 for
// all six faces from one generalized rule, keyed off next/prev.Verify:
// xminus (axis=x, next=y, prev=z) gives Hy:+, Hz:-, Ey:-, Ez:+,
// matching the table exactly; the other five faces follow the same
// substitution.
type Slab struct {
	Face        Face
	Order       int // 1 or 2
	Formulation Formulation
	XS, XF      int
	YS, YF      int
	ZS, ZF      int
	D           float64 // spatial step along the normal axis

	Phi1, Phi2 *field.Array4 // [Order, nx, ny, nz]
	Profiles   *Profiles     // RA, RB, RE, RF [Order, n]
}

// NewSlab allocates a slab's Phi1/Phi2 auxiliary arrays, sized by the
// slab's own extents and the given order, and attaches profiles built
// for the same order and depth.
func NewSlab(face Face, order int, formulation Formulation, xs, xf, ys, yf, zs, zf int, d float64, profiles *Profiles) *Slab {
	if order != 1 && order != 2 {
		chk.Panic("PML order must be 1 or 2, got %d", order)
	}
	if xf <= xs || yf <= ys || zf <= zs {
		chk.Panic("slab bounds must be non-empty: (%d,%d) (%d,%d) (%d,%d)", xs, xf, ys, yf, zs, zf)
	}
	if profiles.Order != order {
		chk.Panic("profiles built for order %d do not match slab order %d", profiles.Order, order)
	}
	nx, ny, nz := xf-xs, yf-ys, zf-zs
	return &Slab{
		Face: face, Order: order, Formulation: formulation,
		XS: xs, XF: xf, YS: ys, YF: yf, ZS: zs, ZF: zf, D: d,
		Phi1: field.NewArray4(order, nx, ny, nz),
		Phi2: field.NewArray4(order, nx, ny, nz),
		Profiles: profiles,
	}
}

func (s *Slab) extents() (nx, ny, nz int) {
	return s.XF - s.XS, s.YF - s.YS, s.ZF - s.ZS
}

// globalIndex maps slab-local (i,j,k) to a global cell index, applying
// normalFn to whichever coordinate is the slab's normal axis and a
// plain local+start offset to the two tangential coordinates.
func (s *Slab) globalIndex(axis normalAxis, i, j, k int, normalFn func(local, start, end int) int) (ii, jj, kk int) {
	switch axis {
	case axisX:
		return normalFn(i, s.XS, s.XF), j + s.YS, k + s.ZS
	case axisY:
		return i + s.XS, normalFn(j, s.YS, s.YF), k + s.ZS
	default:
		return i + s.XS, j + s.YS, normalFn(k, s.ZS, s.ZF)
	}
}

// normalLocal returns whichever of (i,j,k) is the slab-local index
// along the normal axis; this doubles as the coefficient-profile index
// (spec: "index 0 is closest to the PML outer boundary").
func normalLocal(axis normalAxis, i, j, k int) int {
	switch axis {
	case axisX:
		return i
	case axisY:
		return j
	default:
		return k
	}
}

// storePhi1 / storePhi2 write back the two Phi slots for local cell
// (i,j,k) after a convolution update has mutated them in place.
func (s *Slab) storePhi1(phi [2]field.Real, i, j, k int) {
	s.Phi1.Set(0, i, j, k, phi[0])
	if s.Order == 2 {
		s.Phi1.Set(1, i, j, k, phi[1])
	}
}

func (s *Slab) storePhi2(phi [2]field.Real, i, j, k int) {
	s.Phi2.Set(0, i, j, k, phi[0])
	if s.Order == 2 {
		s.Phi2.Set(1, i, j, k, phi[1])
	}
}

func (s *Slab) polesPhi1(n, i, j, k int) poles {
	p := poles{}
	phi := [2]field.Real{s.Phi1.At(0, i, j, k), 0}
	if s.Order == 2 {
		phi[1] = s.Phi1.At(1, i, j, k)
	}
	p.RA[0], p.RB[0], p.RE[0], p.RF[0] = s.Profiles.RA[0][n], s.Profiles.RB[0][n], s.Profiles.RE[0][n], s.Profiles.RF[0][n]
	if s.Order == 2 {
		p.RA[1], p.RB[1], p.RE[1], p.RF[1] = s.Profiles.RA[1][n], s.Profiles.RB[1][n], s.Profiles.RE[1][n], s.Profiles.RF[1][n]
	}
	p.Phi = &phi
	return p
}

func (s *Slab) polesPhi2(n, i, j, k int) poles {
	p := s.polesPhi1(n, i, j, k) // same RA/RB/RE/RF row, different Phi array
	phi := [2]field.Real{s.Phi2.At(0, i, j, k), 0}
	if s.Order == 2 {
		phi[1] = s.Phi2.At(1, i, j, k)
	}
	p.Phi = &phi
	return p
}

// RunH applies one magnetic half-step to this slab: advances the two
// tangential H components and their Phi1/Phi2 auxiliary state using
// the HORIPML recursive-convolution law (spec section 4.1; magnetic
// kernels always use HORIPML regardless of Slab.Formulation).
func (s *Slab) RunH(workers int, coeffsH *field.Coeffs, id *field.IDArray, e, h *Fields) {
	g := faceGeometry(s.Face)
	axis := g.axis
	nAxis, pAxis := next(axis), prev(axis)

	hNext := h.ArrayFor(hComp(nAxis))
	hPrev := h.ArrayFor(hComp(pAxis))
	eSrcNext := e.ArrayFor(eComp(pAxis)) // H_next pairs with dE_prev
	eSrcPrev := e.ArrayFor(eComp(nAxis)) // H_prev pairs with dE_next
	idCompNext := hComp(nAxis)
	idCompPrev := hComp(pAxis)

	nx, ny, nz := s.extents()
	invD := 1 / s.D

	parallel.For(nx, workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			for j := 0; j < ny; j++ {
				for k := 0; k < nz; k++ {
					iiN, jjN, kkN := s.globalIndex(axis, i, j, k, g.normalIndexH)
					n := normalLocal(axis, i, j, k)

					dNext := forwardDiff(axis, eSrcNext, iiN, jjN, kkN, invD)
					dPrev := forwardDiff(axis, eSrcPrev, iiN, jjN, kkN, invD)

					p1 := s.polesPhi1(n, i, j, k)
					corrNext := horipmlUpdate(s.Order, dNext, p1)
					s.storePhi1(*p1.Phi, i, j, k)
					cNext := coeffsH.Curl(id.At(idCompNext, iiN, jjN, kkN))
					hNext.Add(iiN, jjN, kkN, field.Real(cNext)*corrNext)

					p2 := s.polesPhi2(n, i, j, k)
					corrPrev := horipmlUpdate(s.Order, dPrev, p2)
					s.storePhi2(*p2.Phi, i, j, k)
					cPrev := coeffsH.Curl(id.At(idCompPrev, iiN, jjN, kkN))
					hPrev.Add(iiN, jjN, kkN, -field.Real(cPrev)*corrPrev)
				}
			}
		}
	})
}

// RunE applies one electric half-step to this slab: advances the two
// tangential E components and their Phi1/Phi2 auxiliary state. Honors
// Slab.Formulation: MRIPML uses the inverse-scaled law of spec section
// 4.1; HORIPML reuses the same pole recursion the H-kernel uses,
// backward-differenced, for the symmetric formulation the external
// interface (section 6) allows callers to request.
func (s *Slab) RunE(workers int, coeffsE *field.Coeffs, id *field.IDArray, h, e *Fields) {
	g := faceGeometry(s.Face)
	axis := g.axis
	nAxis, pAxis := next(axis), prev(axis)

	eNext := e.ArrayFor(eComp(nAxis))
	ePrev := e.ArrayFor(eComp(pAxis))
	hSrcNext := h.ArrayFor(hComp(pAxis)) // E_next pairs with dH_prev
	hSrcPrev := h.ArrayFor(hComp(nAxis)) // E_prev pairs with dH_next
	idCompNext := eComp(nAxis)
	idCompPrev := eComp(pAxis)

	nx, ny, nz := s.extents()
	invD := 1 / s.D

	update := horipmlUpdate
	if s.Formulation == MRIPML {
		update = mripmlUpdate
	}

	parallel.For(nx, workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			for j := 0; j < ny; j++ {
				for k := 0; k < nz; k++ {
					iiN, jjN, kkN := s.globalIndex(axis, i, j, k, g.normalIndexE)
					n := normalLocal(axis, i, j, k)

					dNext := backwardDiff(axis, hSrcNext, iiN, jjN, kkN, invD)
					dPrev := backwardDiff(axis, hSrcPrev, iiN, jjN, kkN, invD)

					p1 := s.polesPhi1(n, i, j, k)
					corrNext := update(s.Order, dNext, p1)
					s.storePhi1(*p1.Phi, i, j, k)
					cNext := coeffsE.Curl(id.At(idCompNext, iiN, jjN, kkN))
					eNext.Add(iiN, jjN, kkN, -field.Real(cNext)*corrNext)

					p2 := s.polesPhi2(n, i, j, k)
					corrPrev := update(s.Order, dPrev, p2)
					s.storePhi2(*p2.Phi, i, j, k)
					cPrev := coeffsE.Curl(id.At(idCompPrev, iiN, jjN, kkN))
					ePrev.Add(iiN, jjN, kkN, field.Real(cPrev)*corrPrev)
				}
			}
		}
	})
}
