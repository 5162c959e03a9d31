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

// Package vm defines the host fuzz-state capability consumed by fuzzing
// harnesses: the set of cheats a host exposes for manipulating block
// context, caller identity, account state, nonces, snapshots and signing.
//
// The host owns all mutable state. Nothing in this package mutates
// anything itself; a VM implementation is injected into the helpers that
// need one, which also makes harness code testable against an in-process
// host such as memvm.VM.
package vm

import (
	"errors"

	"github.com/holiman/uint256"

	"github.com/ledgerwatch/erigon/common"
)

var (
	// ErrNonceDecrease is returned by SetNonce when the new nonce is not
	// strictly greater than the account's current one.
	ErrNonceDecrease = errors.New("new nonce must be strictly higher than the current nonce")

	// ErrFfiDisabled is returned by Ffi on hosts that have not explicitly
	// enabled foreign-process invocation.
	ErrFfiDisabled = errors.New("ffi is disabled on this host")

	// ErrInvalidSignerKey is returned when a signer key is zero or not
	// below the secp256k1 curve order.
	ErrInvalidSignerKey = errors.New("signer key is not a valid secp256k1 scalar")
)

// VM is the host fuzz-state capability. One method per cheat.
//
// Block-context setters and state setters always succeed; failures of the
// host contract (nonce regression, unknown snapshot id, disabled ffi) are
// reported through the return values documented per method and are
// propagated to callers unchanged.
type VM interface {
	// Timestamp returns the current block timestamp. Warp sets it.
	Timestamp() uint64
	Warp(timestamp uint64)

	// Roll sets the current block number.
	Roll(blockNumber uint64)

	// Fee sets the block base fee.
	Fee(baseFee *uint256.Int)

	// Prevrandao sets the block randomness seed.
	Prevrandao(seed common.Hash)

	// ChainID sets the chain id.
	ChainID(id uint64)

	// Coinbase sets the block coinbase.
	Coinbase(addr common.Address)

	// Prank makes addr the sender of the next call only.
	Prank(addr common.Address)

	// StartPrank makes addr the sender of every subsequent call until
	// StopPrank.
	StartPrank(addr common.Address)
	StopPrank()

	// PrankHere makes addr the sender for the remainder of the current
	// call only.
	PrankHere(addr common.Address)

	// Deal sets the balance of addr.
	Deal(addr common.Address, amount *uint256.Int)

	// Etch sets the code of addr.
	Etch(addr common.Address, code []byte)

	// Store writes value into the given storage slot of account; Load
	// reads it back.
	Store(account common.Address, slot, value common.Hash)
	Load(account common.Address, slot common.Hash) common.Hash

	// GetNonce returns the nonce of account. SetNonce sets it and fails
	// with ErrNonceDecrease unless the new value is strictly higher.
	GetNonce(account common.Address) uint64
	SetNonce(account common.Address, nonce uint64) error

	// Addr derives the address controlled by the given private key.
	// Fails with ErrInvalidSignerKey for out-of-range scalars.
	Addr(key *uint256.Int) (common.Address, error)

	// Sign signs digest with the given private key and returns the
	// recovery id (27 or 28) and the r and s signature components.
	Sign(key *uint256.Int, digest common.Hash) (v byte, r, s common.Hash, err error)

	// Snapshot checkpoints the host's entire mutable state and returns an
	// opaque id. RevertTo restores the checkpoint, discarding it and any
	// later ones; it reports false for an unknown id.
	Snapshot() uint64
	RevertTo(id uint64) bool

	// Ffi runs args as an external command and returns its output.
	// Requires the host to have ffi explicitly enabled, otherwise fails
	// with ErrFfiDisabled.
	Ffi(args []string) ([]byte, error)
}
