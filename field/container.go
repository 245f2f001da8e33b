// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import "github.com/cpmech/gosl/chk"

// Container is the Field State Container: it owns the Yee-grid electric
// and magnetic field arrays, the material-ID array, and the per-material
// update-coefficient tables. Kernels borrow disjoint or read-only views
// into it; Container itself never runs a kernel.
type Container struct {
	Nx, Ny, Nz     int     // grid dimensions
	Dx, Dy, Dz     float64 // cell spacing
	Ex, Ey, Ez     *Array3
	Hx, Hy, Hz     *Array3
	ID             *IDArray
	UpdateCoeffsE  *Coeffs
	UpdateCoeffsH  *Coeffs
}

// NewContainer builds a zero-initialized container for an Nx×Ny×Nz Yee
// grid with nMaterials materials, panicking on malformed input since
// shape and range validation happens once here at the construction
// boundary, never inside the hot kernels.
func NewContainer(nx, ny, nz int, dx, dy, dz float64, nMaterials int) *Container {
	if nx <= 0 || ny <= 0 || nz <= 0 {
		chk.Panic("grid dimensions must be positive: nx=%d ny=%d nz=%d", nx, ny, nz)
	}
	if dx <= 0 || dy <= 0 || dz <= 0 {
		chk.Panic("cell spacing must be positive: dx=%g dy=%g dz=%g", dx, dy, dz)
	}
	// All six field components share the (Nx+1)x(Ny+1)x(Nz+1) extent
	// used by the ID array (spec section 3); this keeps every kernel's
	// (ii,jj,kk) indexing uniform across components instead of
	// threading six different per-component Yee half-cell extents
	// through the slab bounds.
	return &Container{
		Nx: nx, Ny: ny, Nz: nz,
		Dx: dx, Dy: dy, Dz: dz,
		Ex: NewArray3(nx+1, ny+1, nz+1),
		Ey: NewArray3(nx+1, ny+1, nz+1),
		Ez: NewArray3(nx+1, ny+1, nz+1),
		Hx: NewArray3(nx+1, ny+1, nz+1),
		Hy: NewArray3(nx+1, ny+1, nz+1),
		Hz: NewArray3(nx+1, ny+1, nz+1),
		ID: NewIDArray(nx, ny, nz),
		UpdateCoeffsE: NewCoeffs(nMaterials),
		UpdateCoeffsH: NewCoeffs(nMaterials),
	}
}

// EViews returns read-only handles to the three electric components,
// for magnetic kernels that only read E.
func (c *Container) EViews() (ex, ey, ez *Array3) {
	return c.Ex, c.Ey, c.Ez
}

// HViews returns read-only handles to the three magnetic components,
// for electric kernels that only read H.
func (c *Container) HViews() (hx, hy, hz *Array3) {
	return c.Hx, c.Hy, c.Hz
}
