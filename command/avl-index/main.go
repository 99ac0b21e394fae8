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

	"github.com/bitmark-inc/avlindex/index"
	"github.com/bitmark-inc/logger"
)

type metadata struct {
	index   *index.Index[string, string]
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	logging := &logSession{}

	app := cli.NewApp()
	app.Name = "avl-index"
	app.Usage = "order statistic queries over a set of keys"
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
			Name:  "database, d",
			Value: "",
			Usage: "+LevelDB database `DIRECTORY` to read keys from",
		},
		cli.StringFlag{
			Name:  "prefix, p",
			Value: "",
			Usage: " only database keys starting with `PREFIX`",
		},
		cli.StringFlag{
			Name:  "file, f",
			Value: "",
			Usage: "+text `FILE` with one key per line, - for stdin",
		},
		cli.IntFlag{
			Name:  "limit, l",
			Value: 0,
			Usage: " maximum number of keys `COUNT` (0 = no limit)",
		},
		cli.StringFlag{
			Name:  "log-directory, L",
			Value: ".",
			Usage: " write avl-index.log in `DIRECTORY`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "select",
			Usage:     "key at a rank",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "rank, r",
					Value: 0,
					Usage: "*one based `RANK`",
				},
			},
			Action: runSelect,
		},
		{
			Name:      "search",
			Usage:     "value and rank of a key",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: "*`KEY` to find",
				},
			},
			Action: runSearch,
		},
		{
			Name:      "rank",
			Usage:     "rank of a key, zero if absent",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: "*`KEY` to rank",
				},
			},
			Action: runRank,
		},
		{
			Name:      "slice",
			Usage:     "consecutive keys starting at a rank",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "rank, r",
					Value: 1,
					Usage: " first `RANK`",
				},
				cli.IntFlag{
					Name:  "count, c",
					Value: 10,
					Usage: " number of keys `COUNT`",
				},
			},
			Action: runSlice,
		},
		{
			Name:      "stats",
			Usage:     "size, height and balancing counters",
			ArgsUsage: " ",
			Flags:     []cli.Flag{},
			Action:    runStats,
		},
		{
			Name:      "dump",
			Usage:     "draw the tree",
			ArgsUsage: " ",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "data, D",
					Usage: " include values",
				},
			},
			Action: runDump,
		},
		{
			Name:      "version",
			Usage:     "display avl-index version",
			ArgsUsage: " ",
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

		// no keys are needed to print the version
		command := c.Args().Get(0)
		if "version" == command || "help" == command || "" == command {
			return nil
		}

		level := "warn"
		if verbose {
			level = "debug"
		}
		configuration := logger.Configuration{
			Directory: c.GlobalString("log-directory"),
			File:      "avl-index.log",
			Size:      1048576,
			Count:     10,
			Console:   false,
			Levels: map[string]string{
				logger.DefaultTag: level,
			},
		}
		if err := logging.start(configuration); nil != err {
			return fmt.Errorf("logger setup failed with error: %s", err)
		}

		source := keySource{
			database: c.GlobalString("database"),
			prefix:   c.GlobalString("prefix"),
			file:     c.GlobalString("file"),
			limit:    c.GlobalInt("limit"),
		}

		if verbose {
			fmt.Fprintf(e, "source: %+v\n", source)
		}

		ix, err := source.load(logger.New("index"))
		if nil != err {
			return err
		}

		if verbose {
			fmt.Fprintf(e, "loaded: %d keys\n", ix.Count())
		}

		c.App.Metadata["config"] = &metadata{
			index:   ix,
			verbose: verbose,
			e:       e,
			w:       w,
		}

		return nil
	}
	// runs even when Before fails part way
	app.After = func(c *cli.Context) error {
		logging.finish()
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
