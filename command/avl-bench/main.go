// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/bitmark-inc/avlindex/avl"
	"github.com/bitmark-inc/avlindex/bench"
	"github.com/bitmark-inc/avlindex/fault"
	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "count", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'n'},
		{Long: "order", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'o'},
		{Long: "seed", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] [--config-file=FILE] [--count=N] [--order=sequential|permuted|random] [--seed=S] [N]", program)
	}

	theConfiguration := defaultConfiguration()
	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	} else if 1 == len(options["config-file"]) {
		configurationFile := options["config-file"][0]
		theConfiguration, err = getConfiguration(configurationFile)
		if nil != err {
			exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
		}
	}

	// command line takes precedence over the configuration file
	if err := applyOptions(theConfiguration, options, arguments); nil != err {
		exitwithstatus.Message("%s: %s", program, err)
	}

	if nil == theConfiguration.Logging.Levels {
		theConfiguration.Logging.Levels = map[string]string{}
	}
	if len(options["verbose"]) > 0 {
		theConfiguration.Logging.Console = true
		theConfiguration.Logging.Levels[logger.DefaultTag] = "debug"
	} else if len(options["quiet"]) > 0 {
		theConfiguration.Logging.Console = false
		theConfiguration.Logging.Levels[logger.DefaultTag] = "warn"
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// last resort channel for internal consistency failures
	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("configuration: %+v", theConfiguration)

	keys, err := theConfiguration.keys()
	if nil != err {
		log.Criticalf("key generation error: %s", err)
		exitwithstatus.Message("%s: key generation error: %s", program, err)
	}

	tree := avl.New[int, int]()
	if theConfiguration.NodeLimit > 0 {
		tree, err = avl.NewWithLimit[int, int](theConfiguration.NodeLimit)
		if nil != err {
			exitwithstatus.Message("%s: tree setup error: %s", program, err)
		}
	}

	result, err := bench.New(logger.New("bench")).Run(tree, keys)
	if nil != err {
		log.Criticalf("benchmark error: %s", err)
		exitwithstatus.Message("%s: benchmark error: %s", program, err)
	}

	if err := tree.Check(); nil != err {
		log.Criticalf("tree check error: %s", err)
		exitwithstatus.Message("%s: tree check error: %s", program, err)
	}

	log.Infof("statistics: %+v", tree.Statistics())

	fmt.Println(result)
}

// override configuration values from the command line
//
// a single bare argument is accepted as the count
func applyOptions(theConfiguration *Configuration, options map[string][]string, arguments []string) error {

	count := ""
	if len(arguments) > 1 {
		return fmt.Errorf("too many arguments: %q", arguments)
	} else if 1 == len(arguments) {
		count = arguments[0]
	}
	if len(options["count"]) > 0 {
		count = options["count"][0]
	}
	if "" != count {
		n, err := strconv.Atoi(count)
		if nil != err {
			return fmt.Errorf("count: %q is not a number", count)
		}
		theConfiguration.Count = n
	}

	if len(options["order"]) > 0 {
		theConfiguration.Order = options["order"][0]
	}

	if len(options["seed"]) > 0 {
		seed, err := strconv.ParseInt(options["seed"][0], 10, 64)
		if nil != err {
			return fmt.Errorf("seed: %q is not a number", options["seed"][0])
		}
		theConfiguration.Seed = seed
	}

	return theConfiguration.validate()
}
