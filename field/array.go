// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package field holds the Yee-grid field arrays, the material-ID array,
// the update-coefficient tables, and the dense array types that back
// them. It owns all storage; PML kernels borrow disjoint or read-only
// views into it.
package field

import "github.com/cpmech/gosl/chk"

// Real is the build-time precision axis. Every field array, coefficient
// table, and kernel is written against Real so a single alias swap
// changes precision globally instead of threading a type parameter
// through the whole package tree.
type Real = float64

// Array3 is a dense, row-major, contiguous 3-D array with the last axis
// contiguous, addressed (i,j,k). It backs one Yee-grid field component.
type Array3 struct {
	Nx, Ny, Nz int
	Data       []Real
}

// NewArray3 allocates a zeroed nx×ny×nz array.
func NewArray3(nx, ny, nz int) *Array3 {
	if nx <= 0 || ny <= 0 || nz <= 0 {
		chk.Panic("Array3 dimensions must be positive: nx=%d ny=%d nz=%d", nx, ny, nz)
	}
	return &Array3{Nx: nx, Ny: ny, Nz: nz, Data: make([]Real, nx*ny*nz)}
}

// idx returns the flat offset of (i,j,k).
func (a *Array3) idx(i, j, k int) int {
	return (i*a.Ny+j)*a.Nz + k
}

// At returns the value at (i,j,k).
func (a *Array3) At(i, j, k int) Real {
	return a.Data[a.idx(i, j, k)]
}

// Set stores v at (i,j,k).
func (a *Array3) Set(i, j, k int, v Real) {
	a.Data[a.idx(i, j, k)] = v
}

// Add adds v to the cell at (i,j,k).
func (a *Array3) Add(i, j, k int, v Real) {
	a.Data[a.idx(i, j, k)] += v
}

// Array4 is a dense, row-major, contiguous 4-D array whose first axis
// selects a component or recursion-order index and whose remaining
// three axes are spatial. It backs the Phi1/Phi2 recursive-convolution
// accumulators; the material-ID array has its own type, IDArray.
type Array4 struct {
	N0, N1, N2, N3 int
	Data           []Real
}

// NewArray4 allocates a zeroed n0×n1×n2×n3 array.
func NewArray4(n0, n1, n2, n3 int) *Array4 {
	if n0 <= 0 || n1 <= 0 || n2 <= 0 || n3 <= 0 {
		chk.Panic("Array4 dimensions must be positive: n0=%d n1=%d n2=%d n3=%d", n0, n1, n2, n3)
	}
	return &Array4{N0: n0, N1: n1, N2: n2, N3: n3, Data: make([]Real, n0*n1*n2*n3)}
}

func (a *Array4) idx(c, i, j, k int) int {
	return ((c*a.N1+i)*a.N2+j)*a.N3 + k
}

// At returns the value at component/order c, spatial index (i,j,k).
func (a *Array4) At(c, i, j, k int) Real {
	return a.Data[a.idx(c, i, j, k)]
}

// Set stores v at component/order c, spatial index (i,j,k).
func (a *Array4) Set(c, i, j, k int, v Real) {
	a.Data[a.idx(c, i, j, k)] = v
}

// IDArray is an unsigned material-index array ID[6,Nx+1,Ny+1,Nz+1],
// axis 0 selecting the component in the fixed order
// {Ex=0, Ey=1, Ez=2, Hx=3, Hy=4, Hz=5}.
type IDArray struct {
	Nx1, Ny1, Nz1 int
	Data          []uint32
}

// Component indices into IDArray's axis 0, matching the spec's fixed order.
const (
	CompEx = 0
	CompEy = 1
	CompEz = 2
	CompHx = 3
	CompHy = 4
	CompHz = 5
)

// NewIDArray allocates a zeroed ID array sized for an Nx×Ny×Nz grid.
func NewIDArray(nx, ny, nz int) *IDArray {
	nx1, ny1, nz1 := nx+1, ny+1, nz+1
	return &IDArray{Nx1: nx1, Ny1: ny1, Nz1: nz1, Data: make([]uint32, 6*nx1*ny1*nz1)}
}

func (a *IDArray) idx(c, i, j, k int) int {
	return ((c*a.Nx1+i)*a.Ny1+j)*a.Nz1 + k
}

// At returns the material index of component c at cell (i,j,k).
func (a *IDArray) At(c, i, j, k int) uint32 {
	return a.Data[a.idx(c, i, j, k)]
}

// Set stores the material index of component c at cell (i,j,k).
func (a *IDArray) Set(c, i, j, k int, v uint32) {
	a.Data[a.idx(c, i, j, k)] = v
}
