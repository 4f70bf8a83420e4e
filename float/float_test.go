// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package float_test

import (
	"math"
	"testing"

	"github.com/born-ml/numeric/float"
)

func TestFloatAPI(t *testing.T) {
	info := float.Info[float32]()
	if info.MantissaBits != 23 || info.ExpBits != 8 {
		t.Errorf("Info[float32]() = %+v", info)
	}
	if float.Epsilon[float64]() != math.Nextafter(1, 2)-1 {
		t.Errorf("Epsilon[float64]() = %g", float.Epsilon[float64]())
	}

	nan := float.NaN[float32]()
	if nan == nan || !float.IsNaN(nan) {
		t.Error("NaN must be unequal to itself and detected by IsNaN")
	}
	if !float.IsInf(float.NegInf[float64]()) {
		t.Error("NegInf is not infinite")
	}

	if got := float.Root(27.0, 3); math.Abs(got-3) > 1e-12 {
		t.Errorf("Root(27, 3) = %v", got)
	}
	if got := float.Fract(-2.75); got != -0.75 {
		t.Errorf("Fract(-2.75) = %v", got)
	}
	if got := float.ToDeg(float.Pi[float64]()); math.Abs(got-180) > 1e-12 {
		t.Errorf("ToDeg(π) = %v", got)
	}
	if !float.ApproxEqual(float.Hypot(float32(3), 4), 5, 1e-6) {
		t.Error("Hypot(3, 4) != 5")
	}
}
