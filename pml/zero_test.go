// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pml

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func allZero(data []float64) bool {
	for _, v := range data {
		if v != 0 {
			return false
		}
	}
	return true
}

// Test_zero_state_01 checks P1: with all field and Phi arrays zero,
// any kernel call leaves them zero.
func Test_zero_state_01(tst *testing.T) {

	chk.PrintTitle("zero_state_01. P1: zero input, zero state")

	n := 6
	for order := 1; order <= 2; order++ {
		for _, face := range []Face{XMinus, XPlus, YMinus, YPlus, ZMinus, ZPlus} {
			c := newTestContainer(n)
			e, h := testFields(c)
			prof := Build(DefaultDesignParams(2, order, 1, 0.5))
			slab := NewSlab(face, order, MRIPML, 1, 3, 1, 3, 1, 3, 1, prof)

			slab.RunH(1, c.UpdateCoeffsH, c.ID, e, h)
			slab.RunE(1, c.UpdateCoeffsE, c.ID, h, e)

			for _, arr := range []*struct {
				name string
				data []float64
			}{
				{"Ex", c.Ex.Data}, {"Ey", c.Ey.Data}, {"Ez", c.Ez.Data},
				{"Hx", c.Hx.Data}, {"Hy", c.Hy.Data}, {"Hz", c.Hz.Data},
				{"Phi1", slab.Phi1.Data}, {"Phi2", slab.Phi2.Data},
			} {
				if !allZero(arr.data) {
					tst.Errorf("order=%d face=%v: %s is not all-zero after stepping from zero state", order, face, arr.name)
				}
			}
		}
	}
}
