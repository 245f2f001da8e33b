// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_array3_01(tst *testing.T) {

	chk.PrintTitle("array3_01. dense 3-D array indexing")

	a := NewArray3(2, 3, 4)
	chk.IntAssert(len(a.Data), 24)

	a.Set(1, 2, 3, 42)
	chk.Scalar(tst, "a[1,2,3]", 1e-15, a.At(1, 2, 3), 42)
	chk.Scalar(tst, "a[0,0,0]", 1e-15, a.At(0, 0, 0), 0)

	a.Add(1, 2, 3, 8)
	chk.Scalar(tst, "a[1,2,3] after add", 1e-15, a.At(1, 2, 3), 50)
}

func Test_array4_01(tst *testing.T) {

	chk.PrintTitle("array4_01. dense 4-D array indexing")

	a := NewArray4(2, 2, 3, 4)
	chk.IntAssert(len(a.Data), 48)

	a.Set(1, 0, 1, 2, 7)
	chk.Scalar(tst, "a[1,0,1,2]", 1e-15, a.At(1, 0, 1, 2), 7)
	chk.Scalar(tst, "a[0,0,1,2]", 1e-15, a.At(0, 0, 1, 2), 0)
}

func Test_idarray_01(tst *testing.T) {

	chk.PrintTitle("idarray_01. material ID array")

	id := NewIDArray(2, 2, 2)
	id.Set(CompEx, 1, 1, 1, 5)
	chk.IntAssert(int(id.At(CompEx, 1, 1, 1)), 5)
	chk.IntAssert(int(id.At(CompHz, 1, 1, 1)), 0)
}
