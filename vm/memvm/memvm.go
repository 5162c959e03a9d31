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

// Package memvm is an in-process implementation of the vm.VM host
// capability. It keeps account state in plain maps, snapshots it by deep
// copy and signs with the same keccak/secp256k1 primitives a real host
// uses. It backs this module's own tests and is usable as a lightweight
// host for harnesses that do not need real code execution: it records
// state and caller intent but runs no calls itself.
package memvm

import (
	"crypto/ecdsa"
	"fmt"
	"os/exec"

	"github.com/holiman/uint256"

	"github.com/ledgerwatch/erigon/common"
	"github.com/ledgerwatch/erigon/crypto"
	"github.com/ledgerwatch/log/v3"

	"github.com/pyk/medusa-std/vm"
)

type account struct {
	balance uint256.Int
	nonce   uint64
	code    []byte
	storage map[common.Hash]common.Hash
}

func (a *account) copy() *account {
	c := &account{
		balance: a.balance,
		nonce:   a.nonce,
		code:    common.CopyBytes(a.code),
		storage: make(map[common.Hash]common.Hash, len(a.storage)),
	}
	for slot, val := range a.storage {
		c.storage[slot] = val
	}
	return c
}

type blockContext struct {
	timestamp   uint64
	blockNumber uint64
	chainID     uint64
	baseFee     uint256.Int
	prevRandao  common.Hash
	coinbase    common.Address
}

type checkpoint struct {
	id       uint64
	block    blockContext
	accounts map[common.Address]*account
}

// VM implements vm.VM in memory. The zero value is not usable; construct
// with New.
type VM struct {
	logger log.Logger

	block    blockContext
	accounts map[common.Address]*account

	nextCaller   *common.Address
	scopedCaller *common.Address
	callCaller   *common.Address

	checkpoints []checkpoint
	snapshotSeq uint64

	ffiEnabled bool
}

var _ vm.VM = (*VM)(nil)

// New returns an empty host. A nil logger falls back to log.Root().
func New(logger log.Logger) *VM {
	if logger == nil {
		logger = log.Root()
	}
	return &VM{
		logger:   logger,
		accounts: make(map[common.Address]*account),
	}
}

// EnableFfi opts in to foreign-process invocation via Ffi.
func (m *VM) EnableFfi() {
	m.ffiEnabled = true
}

func (m *VM) acct(addr common.Address) *account {
	a, ok := m.accounts[addr]
	if !ok {
		a = &account{storage: make(map[common.Hash]common.Hash)}
		m.accounts[addr] = a
	}
	return a
}

func (m *VM) Timestamp() uint64 {
	return m.block.timestamp
}

func (m *VM) Warp(timestamp uint64) {
	m.block.timestamp = timestamp
	m.logger.Trace("warp", "timestamp", timestamp)
}

func (m *VM) Roll(blockNumber uint64) {
	m.block.blockNumber = blockNumber
	m.logger.Trace("roll", "blockNumber", blockNumber)
}

// BlockNumber returns the current block number.
func (m *VM) BlockNumber() uint64 {
	return m.block.blockNumber
}

func (m *VM) Fee(baseFee *uint256.Int) {
	m.block.baseFee.Set(baseFee)
}

// BaseFee returns the current block base fee.
func (m *VM) BaseFee() *uint256.Int {
	return new(uint256.Int).Set(&m.block.baseFee)
}

func (m *VM) Prevrandao(seed common.Hash) {
	m.block.prevRandao = seed
}

func (m *VM) ChainID(id uint64) {
	m.block.chainID = id
}

func (m *VM) Coinbase(addr common.Address) {
	m.block.coinbase = addr
}

func (m *VM) Prank(addr common.Address) {
	a := addr
	m.nextCaller = &a
}

func (m *VM) StartPrank(addr common.Address) {
	a := addr
	m.scopedCaller = &a
}

func (m *VM) StopPrank() {
	m.scopedCaller = nil
}

func (m *VM) PrankHere(addr common.Address) {
	a := addr
	m.callCaller = &a
}

// CallSender resolves the sender the host must attribute to the next call
// a harness executes, falling back to def when no prank is active. The
// one-shot and call-scoped pranks are consumed; a scoped prank stays
// active until StopPrank.
func (m *VM) CallSender(def common.Address) common.Address {
	if m.nextCaller != nil {
		addr := *m.nextCaller
		m.nextCaller = nil
		return addr
	}
	if m.callCaller != nil {
		addr := *m.callCaller
		m.callCaller = nil
		return addr
	}
	if m.scopedCaller != nil {
		return *m.scopedCaller
	}
	return def
}

func (m *VM) Deal(addr common.Address, amount *uint256.Int) {
	m.acct(addr).balance.Set(amount)
	m.logger.Trace("deal", "addr", addr, "amount", amount)
}

// Balance returns the balance of addr.
func (m *VM) Balance(addr common.Address) *uint256.Int {
	return new(uint256.Int).Set(&m.acct(addr).balance)
}

func (m *VM) Etch(addr common.Address, code []byte) {
	m.acct(addr).code = common.CopyBytes(code)
}

// Code returns the code of addr.
func (m *VM) Code(addr common.Address) []byte {
	return common.CopyBytes(m.acct(addr).code)
}

func (m *VM) Store(account common.Address, slot, value common.Hash) {
	m.acct(account).storage[slot] = value
}

func (m *VM) Load(account common.Address, slot common.Hash) common.Hash {
	return m.acct(account).storage[slot]
}

func (m *VM) GetNonce(account common.Address) uint64 {
	return m.acct(account).nonce
}

func (m *VM) SetNonce(account common.Address, nonce uint64) error {
	a := m.acct(account)
	if nonce <= a.nonce {
		return fmt.Errorf("set nonce of %s to %d (current %d): %w", account, nonce, a.nonce, vm.ErrNonceDecrease)
	}
	a.nonce = nonce
	return nil
}

func toECDSA(key *uint256.Int) (*ecdsa.PrivateKey, error) {
	b := key.Bytes32()
	priv, err := crypto.ToECDSA(b[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", vm.ErrInvalidSignerKey, err)
	}
	return priv, nil
}

func (m *VM) Addr(key *uint256.Int) (common.Address, error) {
	priv, err := toECDSA(key)
	if err != nil {
		return common.Address{}, err
	}
	return crypto.PubkeyToAddress(priv.PublicKey), nil
}

func (m *VM) Sign(key *uint256.Int, digest common.Hash) (byte, common.Hash, common.Hash, error) {
	priv, err := toECDSA(key)
	if err != nil {
		return 0, common.Hash{}, common.Hash{}, err
	}
	sig, err := crypto.Sign(digest[:], priv)
	if err != nil {
		return 0, common.Hash{}, common.Hash{}, fmt.Errorf("signing digest %s: %w", digest, err)
	}
	var r, s common.Hash
	copy(r[:], sig[:32])
	copy(s[:], sig[32:64])
	return sig[64] + 27, r, s, nil
}

func (m *VM) Snapshot() uint64 {
	id := m.snapshotSeq
	m.snapshotSeq++

	accounts := make(map[common.Address]*account, len(m.accounts))
	for addr, a := range m.accounts {
		accounts[addr] = a.copy()
	}
	m.checkpoints = append(m.checkpoints, checkpoint{
		id:       id,
		block:    m.block,
		accounts: accounts,
	})
	m.logger.Debug("snapshot taken", "id", id)
	return id
}

func (m *VM) RevertTo(id uint64) bool {
	for i, cp := range m.checkpoints {
		if cp.id != id {
			continue
		}
		m.block = cp.block
		m.accounts = cp.accounts
		// The restored checkpoint and everything after it are gone.
		m.checkpoints = m.checkpoints[:i]
		m.logger.Debug("reverted to snapshot", "id", id)
		return true
	}
	m.logger.Warn("revert to unknown snapshot", "id", id)
	return false
}

func (m *VM) Ffi(args []string) ([]byte, error) {
	if !m.ffiEnabled {
		return nil, vm.ErrFfiDisabled
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("ffi: empty argv")
	}
	out, err := exec.Command(args[0], args[1:]...).Output()
	if err != nil {
		return nil, fmt.Errorf("ffi %q: %w", args[0], err)
	}
	for len(out) > 0 && (out[len(out)-1] == '\n' || out[len(out)-1] == '\r') {
		out = out[:len(out)-1]
	}
	return out, nil
}
