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

package assert

import (
	"errors"
	"math/big"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/ledgerwatch/erigon/common"
)

func TestEqUint(t *testing.T) {
	require.NoError(t, EqUint(uint256.NewInt(3), uint256.NewInt(3)))

	err := EqUint(uint256.NewInt(3), uint256.NewInt(4))
	require.EqualError(t, err, "Assertion failed: uint256 inputs are not equal.")

	var failure *Failure
	require.ErrorAs(t, err, &failure)
}

func TestCustomMessageReplacesDefault(t *testing.T) {
	require.EqualError(t, EqUint(uint256.NewInt(3), uint256.NewInt(4), "custom"), "custom")
	require.EqualError(t, True(false, "custom"), "custom")
	require.EqualError(t, EqString("a", "b", "left", "right"), "left right")
}

func TestUintOrdering(t *testing.T) {
	one := uint256.NewInt(1)
	two := uint256.NewInt(2)

	for _, tt := range []struct {
		name string
		err  error
		fail bool
		msg  string
	}{
		{"gt holds", GtUint(two, one), false, ""},
		{"gt equal fails", GtUint(one, one), true, "Assertion failed: first uint256 is not greater than second uint256."},
		{"gt less fails", GtUint(one, two), true, "Assertion failed: first uint256 is not greater than second uint256."},
		{"ge holds on equal", GeUint(one, one), false, ""},
		{"ge fails", GeUint(one, two), true, "Assertion failed: first uint256 is less than second uint256."},
		{"lt holds", LtUint(one, two), false, ""},
		{"lt equal fails", LtUint(one, one), true, "Assertion failed: first uint256 is not less than second uint256."},
		{"le holds on equal", LeUint(one, one), false, ""},
		{"le fails", LeUint(two, one), true, "Assertion failed: first uint256 is greater than second uint256."},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.fail {
				require.NoError(t, tt.err)
				return
			}
			require.EqualError(t, tt.err, tt.msg)
		})
	}
}

func TestIntOrdering(t *testing.T) {
	minusTwo := big.NewInt(-2)
	three := big.NewInt(3)

	require.NoError(t, GtInt(three, minusTwo))
	require.NoError(t, LtInt(minusTwo, three))
	require.NoError(t, GeInt(three, three))
	require.NoError(t, LeInt(minusTwo, minusTwo))

	require.EqualError(t, GtInt(minusTwo, three), "Assertion failed: first int256 is not greater than second int256.")
	require.EqualError(t, GeInt(minusTwo, three), "Assertion failed: first int256 is less than second int256.")
	require.EqualError(t, LtInt(three, minusTwo), "Assertion failed: first int256 is not less than second int256.")
	require.EqualError(t, LeInt(three, minusTwo), "Assertion failed: first int256 is greater than second int256.")
	require.EqualError(t, EqInt(minusTwo, three), "Assertion failed: int256 inputs are not equal.")
}

func TestEqAddress(t *testing.T) {
	a := common.HexToAddress("0x328809Bc894f92807417D2dAD6b7C998c1aFdac6")
	b := common.HexToAddress("0x1D96F2f6BeF1202E4Ce1Ff6Dad0c2CB002861d3e")

	require.NoError(t, EqAddress(a, a))
	require.EqualError(t, EqAddress(a, b), "Assertion failed: address inputs are not equal.")
}

func TestEqBytes32(t *testing.T) {
	x := common.HexToHash("0x01")
	y := common.HexToHash("0x02")

	require.NoError(t, EqBytes32(x, x))
	require.EqualError(t, EqBytes32(x, y), "Assertion failed: bytes32 inputs are not equal.")
}

func TestEqBytes(t *testing.T) {
	require.NoError(t, EqBytes([]byte("abc"), []byte("abc")))
	require.NoError(t, EqBytes(nil, []byte{}))
	require.EqualError(t, EqBytes([]byte("abc"), []byte("abd")), "Assertion failed: bytes inputs are not equal.")
	require.EqualError(t, EqBytes([]byte("abc"), []byte("abcd")), "Assertion failed: bytes inputs are not equal.")
}

func TestEqString(t *testing.T) {
	require.NoError(t, EqString("medusa", "medusa"))
	require.EqualError(t, EqString("medusa", "medusa "), "Assertion failed: string inputs are not equal.")
}

func TestBool(t *testing.T) {
	require.NoError(t, True(true))
	require.NoError(t, False(false))
	require.EqualError(t, True(false), "Assertion failed: Expected true, got false")
	require.EqualError(t, False(true), "Assertion failed: Expected false, got true")
}

// Failures are plain error values: nothing is retried, nothing panics,
// and successive calls are independent of earlier outcomes.
func TestNoSharedState(t *testing.T) {
	require.Error(t, EqUint(uint256.NewInt(1), uint256.NewInt(2)))
	require.NoError(t, EqUint(uint256.NewInt(1), uint256.NewInt(1)))

	err := EqUint(uint256.NewInt(1), uint256.NewInt(2))
	require.True(t, errors.As(err, new(*Failure)))
}
