// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pml

import "github.com/ManobhavSachan/gprMax/field"

// poles holds the per-order (RA,RB,RE,RF) coefficients and the two
// Phi accumulators a single cell's recursive-convolution update reads
// and writes. Index 0 is the sole pole for an order-1 kernel; index 1
// is only meaningful for order 2.
type poles struct {
	RA, RB, RE, RF [2]float64
	Phi            *[2]field.Real
}

// horipmlUpdate advances the HORIPML auxiliary state for one cell and
// returns the magnetic-update correction term (spec 4.1, "Update law —
// HORIPML formulation"). Order 2's Phi[1] update reads the pre-update
// Phi[0], so it is computed before Phi[0] is overwritten.
func horipmlUpdate(order int, dE field.Real, p poles) field.Real {
	ra, rb, re, rf, phi := p.RA, p.RB, p.RE, p.RF, p.Phi
	if order == 1 {
		correction := field.Real(ra[0]-1)*dE + field.Real(rb[0])*phi[0]
		phi[0] = field.Real(re[0])*phi[0] - field.Real(rf[0])*dE
		return correction
	}
	correction := field.Real(ra[0]*ra[1]-1)*dE + field.Real(ra[1]*rb[0])*phi[0] + field.Real(rb[1])*phi[1]
	phi1New := field.Real(re[1])*phi[1] - field.Real(rf[1])*(field.Real(ra[0])*dE+field.Real(rb[0])*phi[0])
	phi0New := field.Real(re[0])*phi[0] - field.Real(rf[0])*dE
	phi[1] = phi1New
	phi[0] = phi0New
	return correction
}

// mripmlUpdate advances the MRIPML auxiliary state for one cell and
// returns the electric-update correction term (spec 4.1, "Update law —
// MRIPML formulation (electric kernels)"). The order-1 Phi update
// deliberately reuses the stale Phi[0] on both the RE0·Phi and -RC0·Phi
// terms (semi-implicit step, preserved verbatim per section 9's open
// question).
func mripmlUpdate(order int, dH field.Real, p poles) field.Real {
	ra, rb, re, rf, phi := p.RA, p.RB, p.RE, p.RF, p.Phi
	if order == 1 {
		ira := 1 / ra[0]
		ira1 := ira - 1
		correction := field.Real(ira1)*dH - field.Real(ira)*phi[0]
		rc0 := ira * rb[0] * rf[0]
		phi[0] = field.Real(re[0])*phi[0] + field.Real(rc0)*dH - field.Real(rc0)*phi[0]
		return correction
	}
	ira := 1 / (ra[0] + ra[1])
	ira1 := ira - 1
	psi1 := field.Real(rb[0])*phi[0] + field.Real(rb[1])*phi[1]
	correction := field.Real(ira1)*dH - field.Real(ira)*psi1
	rc0 := ira * rf[0]
	rc1 := ira * rf[1]
	phi1New := field.Real(re[1])*phi[1] + field.Real(rc1)*(dH-psi1)
	phi0New := field.Real(re[0])*phi[0] + field.Real(rc0)*(dH-psi1)
	phi[1] = phi1New
	phi[0] = phi0New
	return correction
}
