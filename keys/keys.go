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

// Package keys derives reproducible identities from human-readable labels.
package keys

import (
	"crypto/ecdsa"
	"fmt"

	"github.com/ledgerwatch/erigon/common"
	"github.com/ledgerwatch/erigon/crypto"

	"github.com/pyk/medusa-std/vm"
)

// MakeAddrAndKey derives an address and its private key from a label. The
// key is keccak256 of the label bytes interpreted as a secp256k1 scalar,
// so the same label always yields the same pair, in every process, with no
// registry behind it.
//
// A label whose digest falls outside the valid scalar range fails with
// vm.ErrInvalidSignerKey. The key is never coerced into range.
func MakeAddrAndKey(label string) (common.Address, *ecdsa.PrivateKey, error) {
	digest := crypto.Keccak256Hash([]byte(label))
	key, err := crypto.ToECDSA(digest[:])
	if err != nil {
		return common.Address{}, nil, fmt.Errorf("deriving key for label %q: %w: %v", label, vm.ErrInvalidSignerKey, err)
	}
	return crypto.PubkeyToAddress(key.PublicKey), key, nil
}

// MakeAddr derives only the address for a label.
func MakeAddr(label string) (common.Address, error) {
	addr, _, err := MakeAddrAndKey(label)
	return addr, err
}
