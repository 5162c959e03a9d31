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

// Package cheats composes the host capability into the shorthand
// operations harness code reaches for most: fund an account and make it
// the caller, or move block time forward.
package cheats

import (
	"github.com/holiman/uint256"

	"github.com/ledgerwatch/erigon/common"
	"github.com/ledgerwatch/log/v3"

	"github.com/pyk/medusa-std/vm"
)

// DefaultBalance is dealt when no amount is given: 2^128 wei, large
// enough that funded callers never fail on gas or value transfers during
// a fuzzing campaign.
var DefaultBalance = new(uint256.Int).Lsh(uint256.NewInt(1), 128)

// Cheats wraps a host with the convenience compositions.
type Cheats struct {
	host   vm.VM
	logger log.Logger
}

// New wraps host. A nil logger falls back to log.Root().
func New(host vm.VM, logger log.Logger) *Cheats {
	if logger == nil {
		logger = log.Root()
	}
	return &Cheats{host: host, logger: logger}
}

// Deal sets who's balance to amount, or to DefaultBalance when no amount
// is given.
func (c *Cheats) Deal(who common.Address, amount ...*uint256.Int) {
	c.host.Deal(who, dealAmount(amount))
}

// Hoax funds who and makes it the sender of the next call.
func (c *Cheats) Hoax(who common.Address, amount ...*uint256.Int) {
	funded := dealAmount(amount)
	c.host.Deal(who, funded)
	c.host.Prank(who)
	c.logger.Debug("hoax", "who", who, "amount", funded)
}

// StartHoax funds who and makes it the sender of every subsequent call
// until StopPrank.
func (c *Cheats) StartHoax(who common.Address, amount ...*uint256.Int) {
	funded := dealAmount(amount)
	c.host.Deal(who, funded)
	c.host.StartPrank(who)
	c.logger.Debug("start hoax", "who", who, "amount", funded)
}

// Skip moves the block timestamp forward by seconds.
func (c *Cheats) Skip(seconds uint64) {
	c.host.Warp(c.host.Timestamp() + seconds)
}

func dealAmount(amount []*uint256.Int) *uint256.Int {
	if len(amount) > 0 {
		return amount[0]
	}
	return DefaultBalance
}
