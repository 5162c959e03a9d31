// Copyright 2026 The Medusa-Std Authors
// This file is part of Medusa-Std.
//
// Medusa-Std is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Medusa-Std is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Medusa-Std. If not, see <http://www.gnu.org/licenses/>.

// Package utils holds value helpers for fuzzing harnesses.
package utils

import "github.com/holiman/uint256"

// Bound folds x into the inclusive range [min, max] and returns the result
// as a fresh value; the inputs are never mutated. min and max may be given
// in either order.
//
// The mapping is min + (x mod (max-min+1)). For ranges whose size does not
// evenly divide 2^256 this skews toward the low end of the range; existing
// corpora rely on the exact mapping, so it is kept as is rather than
// replaced with rejection sampling.
func Bound(x, min, max *uint256.Int) *uint256.Int {
	lo, hi := min, max
	if lo.Gt(hi) {
		lo, hi = hi, lo
	}

	// The full range has 2^256 values, which the working width cannot
	// represent. Every x is already in range.
	if lo.IsZero() && hi.Eq(new(uint256.Int).SetAllOne()) {
		return new(uint256.Int).Set(x)
	}

	size := new(uint256.Int).Sub(hi, lo)
	size.AddUint64(size, 1)

	result := new(uint256.Int).Mod(x, size)
	return result.Add(result, lo)
}
