// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect string
	seed    string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const (
	defaultConnect = "127.0.0.1:2130"
	keyEnvironment = "PARATENSOR_KEY"
)

func main() {

	app := cli.NewApp()
	app.Name = "paratensor-cli"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: defaultConnect,
			Usage: " paratensord host/IP and port, `HOST:PORT`",
		},
		cli.StringFlag{
			Name:   "key, k",
			Value:  "",
			EnvVar: keyEnvironment,
			Usage:  " signing key `SEED` from keygen",
		},
	}
	app.Commands = commands()

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			connect: c.GlobalString("connect"),
			seed:    c.GlobalString("key"),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func commands() []cli.Command {
	netuidFlag := cli.UintFlag{
		Name:  "netuid, n",
		Value: 0,
		Usage: "*subnetwork `NETUID`",
	}

	return []cli.Command{
		{
			Name:   "keygen",
			Usage:  "generate a signing key, prints the seed and public key",
			Action: runKeygen,
		},
		{
			Name:   "info",
			Usage:  "display paratensord status",
			Action: runInfo,
		},
		{
			Name:      "metagraph",
			Usage:     "display a subnetwork, or one of its vectors",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				netuidFlag,
				cli.StringFlag{
					Name:  "vector, V",
					Value: "",
					Usage: " only this vector `NAME` e.g. stake, rank, trust, incentive",
				},
			},
			Action: runMetagraph,
		},
		{
			Name:      "register",
			Usage:     "solve the registration work and register the signing key as a hotkey",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				netuidFlag,
				cli.StringFlag{
					Name:  "coldkey, C",
					Value: "",
					Usage: "*owning coldkey `KEY`",
				},
			},
			Action: runRegister,
		},
		{
			Name:      "set-weights",
			Usage:     "replace the weight row of the signing hotkey",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				netuidFlag,
				cli.StringFlag{
					Name:  "uids, u",
					Value: "",
					Usage: "*comma separated `UIDS`",
				},
				cli.StringFlag{
					Name:  "values, w",
					Value: "",
					Usage: "*comma separated weight `VALUES`",
				},
			},
			Action: runSetWeights,
		},
		{
			Name:      "serve-axon",
			Usage:     "publish the endpoint of the signing hotkey",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "ip, i",
					Value: "",
					Usage: "*endpoint `IP` address",
				},
				cli.UintFlag{
					Name:  "port, p",
					Value: 0,
					Usage: "*endpoint `PORT`",
				},
				cli.UintFlag{
					Name:  "ip-type, t",
					Value: 4,
					Usage: " `4` or `6`",
				},
				cli.UintFlag{
					Name:  "modality, m",
					Value: 0,
					Usage: " `MODALITY` code",
				},
				cli.UintFlag{
					Name:  "axon-version, a",
					Value: 0,
					Usage: " software `VERSION`",
				},
			},
			Action: runServeAxon,
		},
		{
			Name:      "add-stake",
			Usage:     "stake balance of the signing coldkey on a hotkey",
			ArgsUsage: "\n   (* = required)",
			Flags:     stakeFlags(),
			Action:    runAddStake,
		},
		{
			Name:      "remove-stake",
			Usage:     "return stake of a hotkey to the signing coldkey",
			ArgsUsage: "\n   (* = required)",
			Flags:     stakeFlags(),
			Action:    runRemoveStake,
		},
		{
			Name:      "account",
			Usage:     "display balance and stakes of a coldkey",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "coldkey, C",
					Value: "",
					Usage: " coldkey `KEY` default is the signing key",
				},
			},
			Action: runAccount,
		},
		{
			Name:      "admin",
			Usage:     "administrative requests, signed by an admin key",
			ArgsUsage: "\n   (* = required)",
			Subcommands: []cli.Command{
				{
					Name:  "mint",
					Usage: "credit new funds to a coldkey",
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:  "coldkey, C",
							Value: "",
							Usage: "*receiving coldkey `KEY`",
						},
						cli.Uint64Flag{
							Name:  "amount, a",
							Value: 0,
							Usage: "*`AMOUNT` to credit",
						},
					},
					Action: runMint,
				},
				{
					Name:  "set-tempo",
					Usage: "change the epoch period of a subnetwork",
					Flags: []cli.Flag{
						netuidFlag,
						cli.UintFlag{
							Name:  "tempo, t",
							Value: 0,
							Usage: "*`BLOCKS` between epochs",
						},
					},
					Action: runSetTempo,
				},
				{
					Name:  "set-emission-ratio",
					Usage: "change the emission share of a subnetwork, 65535 is one",
					Flags: []cli.Flag{
						netuidFlag,
						cli.UintFlag{
							Name:  "ratio, r",
							Value: 0,
							Usage: "*`RATIO` of block emission",
						},
					},
					Action: runSetEmissionRatio,
				},
				{
					Name:  "set-blocks-per-step",
					Usage: "change the global tempo multiplier",
					Flags: []cli.Flag{
						cli.Uint64Flag{
							Name:  "blocks, b",
							Value: 0,
							Usage: "*`BLOCKS` per step",
						},
					},
					Action: runSetBlocksPerStep,
				},
				{
					Name:  "create-subnetwork",
					Usage: "add an empty subnetwork with default parameters",
					Flags: []cli.Flag{
						netuidFlag,
						cli.UintFlag{
							Name:  "ratio, r",
							Value: 0,
							Usage: " emission `RATIO`",
						},
						cli.UintFlag{
							Name:  "tempo, t",
							Value: 0,
							Usage: " `BLOCKS` between epochs",
						},
						cli.UintFlag{
							Name:  "max-uids, u",
							Value: 0,
							Usage: " maximum `COUNT` of uids",
						},
						cli.Uint64Flag{
							Name:  "difficulty, d",
							Value: 0,
							Usage: " registration `DIFFICULTY`",
						},
					},
					Action: runCreateSubnetwork,
				},
				{
					Name:  "set-hyperparameters",
					Usage: "change parameters of a subnetwork, others keep their current value",
					Flags: []cli.Flag{
						netuidFlag,
						cli.UintFlag{
							Name:  "tempo, t",
							Value: 0,
							Usage: " `BLOCKS` between epochs",
						},
						cli.UintFlag{
							Name:  "max-uids, u",
							Value: 0,
							Usage: " maximum `COUNT` of uids",
						},
						cli.Uint64Flag{
							Name:  "difficulty, d",
							Value: 0,
							Usage: " registration `DIFFICULTY`",
						},
					},
					Action: runSetHyperparameters,
				},
				{
					Name:   "remove-subnetwork",
					Usage:  "delete a subnetwork and its registrations",
					Flags:  []cli.Flag{netuidFlag},
					Action: runRemoveSubnetwork,
				},
				{
					Name:  "deregister",
					Usage: "free a uid slot",
					Flags: []cli.Flag{
						netuidFlag,
						cli.UintFlag{
							Name:  "uid, u",
							Value: 0,
							Usage: "*`UID` to free",
						},
					},
					Action: runDeregister,
				},
			},
		},
		{
			Name:  "version",
			Usage: "display paratensor-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}
}

func stakeFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "hotkey, H",
			Value: "",
			Usage: "*staked hotkey `KEY`",
		},
		cli.Uint64Flag{
			Name:  "amount, a",
			Value: 0,
			Usage: "*`AMOUNT` to move",
		},
	}
}
