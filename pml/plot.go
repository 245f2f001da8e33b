// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pml

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

// PlotProfiles renders RA/RB/RE/RF against depth index for a built
// Profiles table, a debugging aid in the same style as gofem's
// retention and porous model plotting helpers (mdl/retention/plot.go,
// mdl/porous/plotting.go), which also wrap gosl/plt. Not on any hot
// path; callers use it while tuning a design's grading, not during
// time stepping.
func PlotProfiles(prof *Profiles, order int, dirout, fnkey string) {
	n := make([]float64, prof.N)
	for i := range n {
		n[i] = float64(i)
	}
	plt.Reset()
	plt.Plot(n, prof.RA[order], io.Sf("label='RA'"))
	plt.Plot(n, prof.RB[order], io.Sf("label='RB'"))
	plt.Plot(n, prof.RE[order], io.Sf("label='RE'"))
	plt.Plot(n, prof.RF[order], io.Sf("label='RF'"))
	plt.Gll("depth index", "coefficient", "")
	plt.SaveD(dirout, fnkey+".eps")
}
