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

// Package assert is the assertion vocabulary for fuzzing harnesses.
//
// Every predicate returns nil when it holds and a *Failure otherwise. A
// Failure's message is the trailing custom message when the caller passed
// one, or a fixed predicate-and-type default when it did not. The host
// test-runner is expected to abort the current fuzz iteration on a
// non-nil result and roll back its state; the predicates themselves have
// no side effects.
package assert

import (
	"bytes"
	"math/big"
	"strings"

	"github.com/holiman/uint256"

	"github.com/ledgerwatch/erigon/common"
)

// Failure carries the diagnostic message of a predicate that did not hold.
type Failure struct {
	Msg string
}

func (f *Failure) Error() string {
	return f.Msg
}

func fail(def string, msg []string) error {
	if len(msg) > 0 {
		return &Failure{Msg: strings.Join(msg, " ")}
	}
	return &Failure{Msg: def}
}

// EqUint fails unless a == b.
func EqUint(a, b *uint256.Int, msg ...string) error {
	if a.Eq(b) {
		return nil
	}
	return fail("Assertion failed: uint256 inputs are not equal.", msg)
}

// GtUint fails unless a > b.
func GtUint(a, b *uint256.Int, msg ...string) error {
	if a.Gt(b) {
		return nil
	}
	return fail("Assertion failed: first uint256 is not greater than second uint256.", msg)
}

// GeUint fails unless a >= b.
func GeUint(a, b *uint256.Int, msg ...string) error {
	if !a.Lt(b) {
		return nil
	}
	return fail("Assertion failed: first uint256 is less than second uint256.", msg)
}

// LtUint fails unless a < b.
func LtUint(a, b *uint256.Int, msg ...string) error {
	if a.Lt(b) {
		return nil
	}
	return fail("Assertion failed: first uint256 is not less than second uint256.", msg)
}

// LeUint fails unless a <= b.
func LeUint(a, b *uint256.Int, msg ...string) error {
	if !a.Gt(b) {
		return nil
	}
	return fail("Assertion failed: first uint256 is greater than second uint256.", msg)
}

// EqInt fails unless a == b.
func EqInt(a, b *big.Int, msg ...string) error {
	if a.Cmp(b) == 0 {
		return nil
	}
	return fail("Assertion failed: int256 inputs are not equal.", msg)
}

// GtInt fails unless a > b.
func GtInt(a, b *big.Int, msg ...string) error {
	if a.Cmp(b) > 0 {
		return nil
	}
	return fail("Assertion failed: first int256 is not greater than second int256.", msg)
}

// GeInt fails unless a >= b.
func GeInt(a, b *big.Int, msg ...string) error {
	if a.Cmp(b) >= 0 {
		return nil
	}
	return fail("Assertion failed: first int256 is less than second int256.", msg)
}

// LtInt fails unless a < b.
func LtInt(a, b *big.Int, msg ...string) error {
	if a.Cmp(b) < 0 {
		return nil
	}
	return fail("Assertion failed: first int256 is not less than second int256.", msg)
}

// LeInt fails unless a <= b.
func LeInt(a, b *big.Int, msg ...string) error {
	if a.Cmp(b) <= 0 {
		return nil
	}
	return fail("Assertion failed: first int256 is greater than second int256.", msg)
}

// EqAddress fails unless a == b.
func EqAddress(a, b common.Address, msg ...string) error {
	if a == b {
		return nil
	}
	return fail("Assertion failed: address inputs are not equal.", msg)
}

// EqBytes32 fails unless a == b.
func EqBytes32(a, b common.Hash, msg ...string) error {
	if a == b {
		return nil
	}
	return fail("Assertion failed: bytes32 inputs are not equal.", msg)
}

// EqBytes fails unless a and b have equal content. nil and the empty
// slice are equal.
func EqBytes(a, b []byte, msg ...string) error {
	if bytes.Equal(a, b) {
		return nil
	}
	return fail("Assertion failed: bytes inputs are not equal.", msg)
}

// EqString fails unless a == b.
func EqString(a, b string, msg ...string) error {
	if a == b {
		return nil
	}
	return fail("Assertion failed: string inputs are not equal.", msg)
}

// True fails unless cond is true.
func True(cond bool, msg ...string) error {
	if cond {
		return nil
	}
	return fail("Assertion failed: Expected true, got false", msg)
}

// False fails unless cond is false.
func False(cond bool, msg ...string) error {
	if !cond {
		return nil
	}
	return fail("Assertion failed: Expected false, got true", msg)
}
