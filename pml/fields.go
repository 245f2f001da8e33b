// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pml

import "github.com/ManobhavSachan/gprMax/field"

// Fields bundles pointers to all six Yee-grid field components so a
// kernel can look one up generically by component index instead of a
// face-specific switch at every call site.
type Fields struct {
	Ex, Ey, Ez *field.Array3
	Hx, Hy, Hz *field.Array3
}

// ArrayFor returns the component array for one of the field.Comp*
// constants.
func (f *Fields) ArrayFor(comp int) *field.Array3 {
	switch comp {
	case field.CompEx:
		return f.Ex
	case field.CompEy:
		return f.Ey
	case field.CompEz:
		return f.Ez
	case field.CompHx:
		return f.Hx
	case field.CompHy:
		return f.Hy
	case field.CompHz:
		return f.Hz
	default:
		panic("pml: unknown field component")
	}
}

// next and prev give the cyclic x→y→z→x successor/predecessor of a
// normal axis; they encode the curl-component pairing that determines
// which tangential field component pairs with which curl difference
// (see the Slab type's doc comment in slab.go for the derivation).
func next(a normalAxis) normalAxis {
	switch a {
	case axisX:
		return axisY
	case axisY:
		return axisZ
	default:
		return axisX
	}
}

func prev(a normalAxis) normalAxis {
	switch a {
	case axisX:
		return axisZ
	case axisY:
		return axisX
	default:
		return axisY
	}
}

// hComp and eComp return the field component index for a given axis's
// own H or E field (Hx is the x-axis's H component, and so on).
func hComp(a normalAxis) int {
	switch a {
	case axisX:
		return field.CompHx
	case axisY:
		return field.CompHy
	default:
		return field.CompHz
	}
}

func eComp(a normalAxis) int {
	switch a {
	case axisX:
		return field.CompEx
	case axisY:
		return field.CompEy
	default:
		return field.CompEz
	}
}
