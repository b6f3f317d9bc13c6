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

	"github.com/bitmark-inc/aitrustd/command/aitrust-cli/rpccalls"
)

type metadata struct {
	connect      string
	organisation string
	verbose      bool
	e            io.Writer
	w            io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// flags shared by create and update
func recordFlags(required string) []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "uuid, u",
			Value: "",
			Usage: required + "asset identifier `UUID`",
		},
		cli.StringFlag{
			Name:  "json, j",
			Value: "",
			Usage: " read the request from a JSON `FILE`, other flags override it",
		},
		cli.StringFlag{
			Name:  "hashes",
			Value: "",
			Usage: " asset hashes as a JSON object `{\"ALG\":\"HEX\"}`",
		},
		cli.StringFlag{
			Name:  "content",
			Value: "",
			Usage: " plain text content as a JSON object `{\"KEY\":\"TEXT\"}`",
		},
		cli.StringSliceFlag{
			Name:  "source, s",
			Usage: " source asset `UUID` (repeat for several)",
		},
		cli.StringFlag{
			Name:  "transformation, t",
			Value: "",
			Usage: " transformation type `NAME`",
		},
		cli.StringFlag{
			Name:  "transformation-info",
			Value: "",
			Usage: " transformation details as a JSON `OBJECT`",
		},
		cli.StringFlag{
			Name:  "other",
			Value: "",
			Usage: " other information as a JSON `ARRAY`",
		},
	}
}

func main() {

	app := cli.NewApp()
	app.Name = "aitrust-cli"
	app.Usage = "AITrust asset registry client"
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
			Name:   "connect, c",
			Value:  "127.0.0.1:2130",
			Usage:  " aitrustd host/IP and port, `HOST:PORT`",
			EnvVar: "AITRUST_CONNECT",
		},
		cli.StringFlag{
			Name:   "organisation, o",
			Value:  "",
			Usage:  " act as organisation `ORG` [server default]",
			EnvVar: "AITRUST_ORGANISATION",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "create",
			Usage:     "register a new asset owned by the organisation",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "type, T",
					Value: "",
					Usage: "*asset type `TYPE` [Data|Linear_Model|Performance_Claim|Model_Inference]",
				},
			}, recordFlags(" ")...),
			Action: runCreate,
		},
		{
			Name:      "read",
			Usage:     "show the current version of an asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "uuid, u",
					Value: "",
					Usage: "*asset identifier `UUID`",
				},
			},
			Action: runRead,
		},
		{
			Name:      "exists",
			Usage:     "check whether an asset is registered",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "uuid, u",
					Value: "",
					Usage: "*asset identifier `UUID`",
				},
			},
			Action: runExists,
		},
		{
			Name:      "update",
			Usage:     "replace some fields of an owned asset",
			ArgsUsage: "\n   (* = required)",
			Flags:     recordFlags("*"),
			Action:    runUpdate,
		},
		{
			Name:      "delete",
			Usage:     "remove an owned asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "uuid, u",
					Value: "",
					Usage: "*asset identifier `UUID`",
				},
			},
			Action: runDelete,
		},
		{
			Name:      "list",
			Usage:     "list current assets of one type",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "type, T",
					Value: "",
					Usage: "*asset type `TYPE`",
				},
				cli.StringFlag{
					Name:  "owner",
					Value: "",
					Usage: " only assets of owner `ORG`",
				},
			},
			Action: runList,
		},
		{
			Name:      "history",
			Usage:     "show every version of an asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "uuid, u",
					Value: "",
					Usage: "*asset identifier `UUID`",
				},
			},
			Action: runHistory,
		},
		{
			Name:      "provenance",
			Usage:     "follow the source assets of an asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "uuid, u",
					Value: "",
					Usage: "*asset identifier `UUID`",
				},
				cli.IntFlag{
					Name:  "depth, d",
					Value: rpccalls.DefaultProvenanceDepth,
					Usage: " ancestor levels to follow `COUNT`",
				},
			},
			Action: runProvenance,
		},
		{
			Name:      "fingerprint",
			Usage:     "fingerprint a file (for use in asset hashes)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "*file of data to fingerprint `FILE`",
				},
			},
			Action: runFingerprint,
		},
		{
			Name:   "info",
			Usage:  "display aitrustd status",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display aitrust-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		connect, err := checkConnect(c.GlobalString("connect"))
		if nil != err {
			return err
		}

		organisation := c.GlobalString("organisation")
		if verbose {
			fmt.Fprintf(e, "connect: %s  organisation: %q\n", connect, organisation)
		}

		c.App.Metadata["config"] = &metadata{
			connect:      connect,
			organisation: organisation,
			verbose:      verbose,
			e:            e,
			w:            w,
		}

		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
