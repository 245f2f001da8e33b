// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fractal

import "github.com/cpmech/gosl/rnd"

// RandomSpectrum builds a seeded random complex spectrum of length n,
// the "complex random-number array A" spec section 4.2 takes as an
// input. It is a convenience constructor, grounded on
// github.com/cpmech/gosl/rnd — the same random-variable package gofem
// uses to sample adjustable material parameters — so callers and tests
// can exercise Generate2D/Generate3D without hand-building complex128
// fixtures; the weighting/division core in fractal.go is unaffected by
// how A was produced.
func RandomSpectrum(n int, seed int) []complex128 {
	rnd.Init(seed)
	a := make([]complex128, n)
	for i := range a {
		re := rnd.Float64(-1, 1)
		im := rnd.Float64(-1, 1)
		a[i] = complex(re, im)
	}
	return a
}
