// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pml

import "github.com/ManobhavSachan/gprMax/field"

// shiftNormal returns (i,j,k) advanced by delta along the given normal
// axis, leaving the tangential coordinates untouched.
func shiftNormal(axis normalAxis, i, j, k, delta int) (int, int, int) {
	switch axis {
	case axisX:
		return i + delta, j, k
	case axisY:
		return i, j + delta, k
	default:
		return i, j, k + delta
	}
}

// forwardDiff computes (a[normal+1] - a[normal]) / d, the curl
// difference used by H-kernels (spec 4.1 step 1: dEz, dEy).
func forwardDiff(axis normalAxis, a *field.Array3, i, j, k int, invD float64) field.Real {
	i1, j1, k1 := shiftNormal(axis, i, j, k, 1)
	return (a.At(i1, j1, k1) - a.At(i, j, k)) * invD
}

// backwardDiff computes (a[normal] - a[normal-1]) / d, the curl
// difference used by E-kernels under both HORIPML and MRIPML (spec
// 4.1 "H-curl differences for electric kernels use backward normal
// differences").
func backwardDiff(axis normalAxis, a *field.Array3, i, j, k int, invD float64) field.Real {
	im1, jm1, km1 := shiftNormal(axis, i, j, k, -1)
	return (a.At(i, j, k) - a.At(im1, jm1, km1)) * invD
}
