// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pml implements the six-slab PML boundary updater: HORIPML
// and MRIPML recursive-convolution kernels, at order 1 and order 2,
// for the electric and magnetic half-steps.
package pml

// Face names a PML slab by the domain face it absorbs at.
type Face int

// The six slabs, one per axis-aligned face of the domain.
const (
	XMinus Face = iota
	XPlus
	YMinus
	YPlus
	ZMinus
	ZPlus
)

// Formulation selects the recursive-convolution variant of a slab's
// electric kernel. Magnetic kernels always follow HORIPML (spec 4.1);
// only the electric update law differs between HORIPML and MRIPML
// (spec 4.1 vs 4.1 "MRIPML formulation (electric kernels)").
type Formulation int

const (
	HORIPML Formulation = iota
	MRIPML
)

// normalAxis identifies which grid axis is normal to a face.
type normalAxis int

const (
	axisX normalAxis = iota
	axisY
	axisZ
)

// geometry describes, for one face, how to map slab-local loop indices
// (i,j,k) to global cell indices, and which two tangential field
// components that face's kernels update.
type geometry struct {
	axis    normalAxis
	isMinus bool
}

func faceGeometry(f Face) geometry {
	switch f {
	case XMinus:
		return geometry{axis: axisX, isMinus: true}
	case XPlus:
		return geometry{axis: axisX, isMinus: false}
	case YMinus:
		return geometry{axis: axisY, isMinus: true}
	case YPlus:
		return geometry{axis: axisY, isMinus: false}
	case ZMinus:
		return geometry{axis: axisZ, isMinus: true}
	case ZPlus:
		return geometry{axis: axisZ, isMinus: false}
	default:
		panic("pml: unknown face")
	}
}

// normalIndexH returns the global index along the normal axis for an
// H-kernel at slab-local index i, given the slab's start (xs/ys/zs) and
// end-exclusive (xf/yf/zf) bound along that axis.
//
// Minus faces count inward from the outer boundary with the H offset
// (ii = xf-(i+1)); plus faces use local+start for both E and H. This
// one-cell asymmetry between E and H on minus faces reflects the
// staggered half-cell Yee offset and must be preserved verbatim — see
// spec section 4.1's "Iteration geometry" and the Open Questions in
// section 9.
func (g geometry) normalIndexH(i, start, end int) int {
	if g.isMinus {
		return end - (i + 1)
	}
	return i + start
}

// normalIndexE returns the global normal-axis index for an E-kernel.
// Minus faces use ii = end-i (not end-i-1); plus faces match normalIndexH.
func (g geometry) normalIndexE(i, start, end int) int {
	if g.isMinus {
		return end - i
	}
	return i + start
}

// profileIndex is the coefficient-profile index for slab-local index i,
// identical for E and H and independent of minus/plus direction (spec:
// "index 0 is closest to the PML outer boundary").
func (g geometry) profileIndex(i int) int {
	return i
}
