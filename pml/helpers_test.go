// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pml

import "github.com/ManobhavSachan/gprMax/field"

// newTestContainer builds a small uniform-spacing container with a
// single material whose curl coefficient is 1, for tests that only
// care about the PML correction term itself.
func newTestContainer(n int) *field.Container {
	c := field.NewContainer(n, n, n, 1, 1, 1, 1)
	c.UpdateCoeffsE.Set(0, [5]float64{0, 0, 0, 0, 1})
	c.UpdateCoeffsH.Set(0, [5]float64{0, 0, 0, 0, 1})
	return c
}

func testFields(c *field.Container) (e, h *Fields) {
	e = &Fields{Ex: c.Ex, Ey: c.Ey, Ez: c.Ez}
	h = &Fields{Hx: c.Hx, Hy: c.Hy, Hz: c.Hz}
	return
}

// cloneArray3 returns a deep copy of a, for tests that need a pristine
// "before" snapshot while the original is mutated in place.
func cloneArray3(a *field.Array3) *field.Array3 {
	b := field.NewArray3(a.Nx, a.Ny, a.Nz)
	copy(b.Data, a.Data)
	return b
}

// zeroProfiles returns an order-sized profile table with RA=1, and
// RB=RE=RF=0, the "no-op" PML correction. No test calls it at present;
// concrete scenario 1 builds the same table inline.
func zeroProfiles(order, n int) *Profiles {
	p := NewProfiles(order, n)
	for o := 0; o < order; o++ {
		for i := 0; i < n; i++ {
			p.RA[o][i] = 1
		}
	}
	return p
}
