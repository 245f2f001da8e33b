// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// CurlCoeff is the column index kernels use for the curl-scaled update
// weight within one material's coefficient row.
const CurlCoeff = 4

// Coeffs is an update-coefficient table updatecoeffs[M,5] mapping a
// material index to five per-material coefficients. Column CurlCoeff
// (4) holds the curl-scaled update weight the PML kernels read.
type Coeffs struct {
	rows [][]float64 // [M][5], row-major per material via la.MatAlloc
}

// NewCoeffs allocates a zeroed table for m materials.
func NewCoeffs(m int) *Coeffs {
	if m <= 0 {
		chk.Panic("Coeffs requires a positive material count: m=%d", m)
	}
	return &Coeffs{rows: la.MatAlloc(m, 5)}
}

// Set stores the five coefficients of material id.
func (c *Coeffs) Set(id uint32, values [5]float64) {
	if int(id) >= len(c.rows) {
		chk.Panic("material id %d out of range [0,%d)", id, len(c.rows))
	}
	copy(c.rows[id], values[:])
}

// Curl returns updatecoeffs[id, CurlCoeff], the curl-scaled update
// weight the PML kernels multiply their correction term by.
func (c *Coeffs) Curl(id uint32) float64 {
	return c.rows[id][CurlCoeff]
}

// At returns column col of material id.
func (c *Coeffs) At(id uint32, col int) float64 {
	return c.rows[id][col]
}

// NMaterials returns the number of rows (M) in the table.
func (c *Coeffs) NMaterials() int {
	return len(c.rows)
}
