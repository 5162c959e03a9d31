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

// Package literal converts harness values to and from their text form.
//
// A Value is a tagged variant over the semantic types a harness works
// with: address, byte sequence, 32-byte word, boolean, uint256 and
// int256. Format and Parse are the single conversion functions in each
// direction; addresses, byte sequences and words use 0x-prefixed hex,
// booleans "true"/"false", integers decimal.
package literal

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"github.com/holiman/uint256"

	"github.com/ledgerwatch/erigon/common"
	"github.com/ledgerwatch/erigon/common/hexutil"
	"github.com/ledgerwatch/erigon-lib/common/length"
)

// ErrSyntax wraps every malformed-input failure of Parse.
var ErrSyntax = errors.New("malformed literal")

// Kind tags the semantic type held by a Value.
type Kind uint8

const (
	KindAddress Kind = iota
	KindBytes
	KindBytes32
	KindBool
	KindUint
	KindInt
)

func (k Kind) String() string {
	switch k {
	case KindAddress:
		return "address"
	case KindBytes:
		return "bytes"
	case KindBytes32:
		return "bytes32"
	case KindBool:
		return "bool"
	case KindUint:
		return "uint256"
	case KindInt:
		return "int256"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Value is one harness value together with its Kind.
type Value struct {
	kind Kind
	addr common.Address
	blob []byte
	word common.Hash
	flag bool
	num  *uint256.Int
	sig  *big.Int
}

func AddressValue(a common.Address) Value {
	return Value{kind: KindAddress, addr: a}
}

func BytesValue(b []byte) Value {
	return Value{kind: KindBytes, blob: b}
}

func Bytes32Value(w common.Hash) Value {
	return Value{kind: KindBytes32, word: w}
}

func BoolValue(b bool) Value {
	return Value{kind: KindBool, flag: b}
}

func UintValue(u *uint256.Int) Value {
	return Value{kind: KindUint, num: u}
}

func IntValue(i *big.Int) Value {
	return Value{kind: KindInt, sig: i}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) Address() (common.Address, bool) { return v.addr, v.kind == KindAddress }
func (v Value) Bytes() ([]byte, bool)           { return v.blob, v.kind == KindBytes }
func (v Value) Bytes32() (common.Hash, bool)    { return v.word, v.kind == KindBytes32 }
func (v Value) Bool() (bool, bool)              { return v.flag, v.kind == KindBool }
func (v Value) Uint() (*uint256.Int, bool)      { return v.num, v.kind == KindUint }
func (v Value) Int() (*big.Int, bool)           { return v.sig, v.kind == KindInt }

// Format renders the value in its canonical text form.
func (v Value) Format() string {
	switch v.kind {
	case KindAddress:
		return v.addr.Hex()
	case KindBytes:
		return hexutil.Encode(v.blob)
	case KindBytes32:
		return v.word.Hex()
	case KindBool:
		return strconv.FormatBool(v.flag)
	case KindUint:
		return v.num.Dec()
	case KindInt:
		return v.sig.String()
	default:
		return ""
	}
}

// Parse is the inverse of Format. Addresses, byte sequences and 32-byte
// words require the 0x prefix; uint256 additionally accepts 0x-hex input.
func Parse(kind Kind, s string) (Value, error) {
	switch kind {
	case KindAddress:
		b, err := hexutil.Decode(s)
		if err != nil {
			return Value{}, syntaxErr(kind, s, err)
		}
		if len(b) != length.Addr {
			return Value{}, syntaxErr(kind, s, fmt.Errorf("want %d bytes, got %d", length.Addr, len(b)))
		}
		return AddressValue(common.BytesToAddress(b)), nil

	case KindBytes:
		b, err := hexutil.Decode(s)
		if err != nil {
			return Value{}, syntaxErr(kind, s, err)
		}
		return BytesValue(b), nil

	case KindBytes32:
		b, err := hexutil.Decode(s)
		if err != nil {
			return Value{}, syntaxErr(kind, s, err)
		}
		if len(b) != length.Hash {
			return Value{}, syntaxErr(kind, s, fmt.Errorf("want %d bytes, got %d", length.Hash, len(b)))
		}
		return Bytes32Value(common.BytesToHash(b)), nil

	case KindBool:
		switch s {
		case "true":
			return BoolValue(true), nil
		case "false":
			return BoolValue(false), nil
		default:
			return Value{}, syntaxErr(kind, s, errors.New(`want "true" or "false"`))
		}

	case KindUint:
		var (
			u   *uint256.Int
			err error
		)
		if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
			u, err = uint256.FromHex(s)
		} else {
			u, err = uint256.FromDecimal(s)
		}
		if err != nil {
			return Value{}, syntaxErr(kind, s, err)
		}
		return UintValue(u), nil

	case KindInt:
		i, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return Value{}, syntaxErr(kind, s, errors.New("want a decimal integer"))
		}
		return IntValue(i), nil

	default:
		return Value{}, fmt.Errorf("%w: unknown kind %s", ErrSyntax, kind)
	}
}

func syntaxErr(kind Kind, s string, err error) error {
	return fmt.Errorf("%w: %q as %s: %v", ErrSyntax, s, kind, err)
}
