// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pml

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

// Test_face_symmetry_01 checks P4 by recomputing, cell by cell, the
// expected Hy/Hz update from the same primitives RunH dispatches to
// (forwardDiff, horipmlUpdate, the face's own index map) and comparing
// against RunH's actual output — for both a minus and a plus face, so
// a wiring mistake in either half of the geometry table (wrong sign,
// wrong component, wrong profile row) shows up as a mismatch. It checks
// each face against its own index law only; it does not compare the
// xminus and xplus updates as mirror images of each other.
func Test_face_symmetry_01(tst *testing.T) {

	chk.PrintTitle("face_symmetry_01. P4: minus/plus face updates match their own index law")

	const n = 16
	const depth = 4

	for _, tc := range []struct {
		face           Face
		xs, xf, ys, yf, zs, zf int
	}{
		{XMinus, 0, depth, 0, n, 0, n},
		{XPlus, n - depth, n, 0, n, 0, n},
	} {
		c := newTestContainer(n)
		seedLinear(c, n)
		e, h := testFields(c)

		prof := Build(DefaultDesignParams(depth, 1, 1, 0.3))
		slab := NewSlab(tc.face, 1, HORIPML, tc.xs, tc.xf, tc.ys, tc.yf, tc.zs, tc.zf, 1, prof)

		// oracle: recompute from a zero-Phi copy using the same geometry
		g := faceGeometry(tc.face)
		axis := g.axis
		nAxis, pAxis := next(axis), prev(axis)
		eSrcNext := e.ArrayFor(eComp(pAxis))
		eSrcPrev := e.ArrayFor(eComp(nAxis))

		hyBefore := cloneArray3(c.Hy)
		hzBefore := cloneArray3(c.Hz)

		slab.RunH(1, c.UpdateCoeffsH, c.ID, e, h)

		nx, ny, nz := tc.xf-tc.xs, tc.yf-tc.ys, tc.zf-tc.zs
		for i := 0; i < nx; i++ {
			for j := 0; j < ny; j++ {
				for k := 0; k < nz; k++ {
					iiN, jjN, kkN := slab.globalIndex(axis, i, j, k, g.normalIndexH)
					depthIdx := normalLocal(axis, i, j, k)

					dNext := forwardDiff(axis, eSrcNext, iiN, jjN, kkN, 1)
					dPrev := forwardDiff(axis, eSrcPrev, iiN, jjN, kkN, 1)

					p1 := poles{Phi: &[2]float64{0, 0}}
					p1.RA[0], p1.RB[0] = prof.RA[0][depthIdx], prof.RB[0][depthIdx]
					corrNext := horipmlUpdate(1, dNext, p1)

					p2 := poles{Phi: &[2]float64{0, 0}}
					p2.RA[0], p2.RB[0] = prof.RA[0][depthIdx], prof.RB[0][depthIdx]
					corrPrev := horipmlUpdate(1, dPrev, p2)

					cH := c.UpdateCoeffsH.Curl(0)
					wantHy := hyBefore.At(iiN, jjN, kkN) + cH*corrNext
					wantHz := hzBefore.At(iiN, jjN, kkN) - cH*corrPrev

					if math.Abs(h.Hy.At(iiN, jjN, kkN)-wantHy) > 1e-9 {
						tst.Errorf("%v: Hy[%d,%d,%d] = %v, want %v", tc.face, iiN, jjN, kkN, h.Hy.At(iiN, jjN, kkN), wantHy)
					}
					if math.Abs(h.Hz.At(iiN, jjN, kkN)-wantHz) > 1e-9 {
						tst.Errorf("%v: Hz[%d,%d,%d] = %v, want %v", tc.face, iiN, jjN, kkN, h.Hz.At(iiN, jjN, kkN), wantHz)
					}
				}
			}
		}
	}
}
