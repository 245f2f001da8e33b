// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pml

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

// Test_phi_accumulation_01 checks P8 and the spec's round-trip
// scenario: starting from Phi1[0]=0, a unit dHz impulse under the
// MRIPML order-1 recursion deposits a non-zero Phi1[0]; continuing to
// step with zero excitation then drives Phi1[0] monotonically toward
// zero, each step scaling it by the same fixed ratio.
func Test_phi_accumulation_01(tst *testing.T) {

	chk.PrintTitle("phi_accumulation_01. P8: Phi decays under zero excitation")

	p := poles{Phi: &[2]float64{0, 0}}
	p.RA[0], p.RB[0], p.RE[0], p.RF[0] = 0.7, 0.2, 0.7, 0.3

	// impulse
	mripmlUpdate(1, 1, p)
	phiAfterImpulse := p.Phi[0]
	if phiAfterImpulse == 0 {
		tst.Fatalf("unit impulse left Phi1[0] at zero")
	}

	// the fixed per-step ratio this recursion applies under zero
	// excitation: Phi_new = (RE0 - RC0)*Phi_old (spec 4.1: the order-1
	// MRIPML update reuses the stale Phi1[0] on both the RE0 and -RC0 terms)
	ira := 1 / p.RA[0]
	ratio := p.RE[0] - ira*p.RB[0]*p.RF[0]
	if math.Abs(ratio) >= 1 {
		tst.Fatalf("decay ratio %v is not contractive; test parameters must satisfy |ratio|<1", ratio)
	}

	prevAbs := math.Abs(phiAfterImpulse)
	for step := 0; step < 30; step++ {
		want := p.Phi[0] * ratio
		mripmlUpdate(1, 0, p)
		if math.Abs(p.Phi[0]-want) > 1e-12 {
			tst.Errorf("step %d: Phi1[0]=%v, want %v from the fixed decay ratio", step, p.Phi[0], want)
		}
		if math.Abs(p.Phi[0]) > prevAbs+1e-15 {
			tst.Errorf("step %d: |Phi1[0]| grew instead of decaying", step)
		}
		prevAbs = math.Abs(p.Phi[0])
	}
	if prevAbs > 1e-6 {
		tst.Errorf("after 30 zero-excitation steps, |Phi1[0]|=%v has not decayed near zero", prevAbs)
	}
}
