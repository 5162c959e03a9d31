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

package main

import (
	"fmt"
	"os"

	"github.com/holiman/uint256"
	"github.com/urfave/cli/v2"

	"github.com/ledgerwatch/erigon/common/hexutil"
	"github.com/ledgerwatch/erigon/crypto"
	"github.com/ledgerwatch/log/v3"

	"github.com/pyk/medusa-std/keys"
	"github.com/pyk/medusa-std/literal"
	"github.com/pyk/medusa-std/utils"
)

func main() {
	app := &cli.App{
		Name:  "medusa-std",
		Usage: "helpers for medusa fuzzing harnesses",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "verbosity",
				Usage: "log level (trace|debug|info|warn|error)",
				Value: "info",
			},
		},
		Before: func(ctx *cli.Context) error {
			lvl, err := log.LvlFromString(ctx.String("verbosity"))
			if err != nil {
				return err
			}
			log.Root().SetHandler(log.LvlFilterHandler(lvl, log.StderrHandler))
			return nil
		},
		Commands: []*cli.Command{
			makeAddrCommand,
			boundCommand,
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Root().Error("command failed", "err", err)
		os.Exit(1)
	}
}

var makeAddrCommand = &cli.Command{
	Name:      "makeaddr",
	Usage:     "derive the address and private key for a label",
	ArgsUsage: "<label>",
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() != 1 {
			return fmt.Errorf("want exactly one label argument, got %d", ctx.NArg())
		}
		label := ctx.Args().First()
		addr, key, err := keys.MakeAddrAndKey(label)
		if err != nil {
			return err
		}
		fmt.Printf("label:   %s\n", label)
		fmt.Printf("address: %s\n", literal.AddressValue(addr).Format())
		fmt.Printf("key:     %s\n", hexutil.Encode(crypto.FromECDSA(key)))
		return nil
	},
}

var boundCommand = &cli.Command{
	Name:      "bound",
	Usage:     "fold a value into an inclusive range",
	ArgsUsage: "<x> <min> <max>",
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() != 3 {
			return fmt.Errorf("want <x> <min> <max>, got %d arguments", ctx.NArg())
		}
		args := make([]*uint256.Int, 3)
		for i := 0; i < 3; i++ {
			v, err := literal.Parse(literal.KindUint, ctx.Args().Get(i))
			if err != nil {
				return err
			}
			args[i], _ = v.Uint()
		}
		fmt.Println(utils.Bound(args[0], args[1], args[2]).Dec())
		return nil
	},
}
