// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/bitmark-inc/avlindex/configuration"
	"github.com/bitmark-inc/avlindex/fault"
	"github.com/bitmark-inc/avlindex/keysource"
	"github.com/bitmark-inc/avlindex/util"
	"github.com/bitmark-inc/logger"
)

// basic defaults (log directory is relative to the configuration file)
const (
	defaultCount = 1000000
	defaultOrder = keysource.OrderSequential
	defaultSeed  = 1

	defaultLogDirectory = "."
	defaultLogFile      = "avl-bench.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// Configuration - benchmark settings
type Configuration struct {
	Count     int                  `gluamapper:"count" json:"count"`
	Order     string               `gluamapper:"order" json:"order"`
	Seed      int64                `gluamapper:"seed" json:"seed"`
	NodeLimit int                  `gluamapper:"node_limit" json:"node_limit"`
	Logging   logger.Configuration `gluamapper:"logging" json:"logging"`
}

func defaultConfiguration() *Configuration {
	return &Configuration{
		Count: defaultCount,
		Order: string(defaultOrder),
		Seed:  defaultSeed,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels: map[string]string{
				logger.DefaultTag: "info",
			},
		},
	}
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the directory holding the configuration
	baseDirectory, _ := filepath.Split(configurationFileName)

	options := defaultConfiguration()

	if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	if err := options.validate(); nil != err {
		return nil, err
	}

	options.Logging.Directory = util.EnsureAbsolute(baseDirectory, options.Logging.Directory)

	return options, nil
}

func (options *Configuration) validate() error {
	if options.Count < 0 {
		return fault.ErrInvalidCount
	}
	if options.NodeLimit < 0 {
		return fault.ErrInvalidNodeLimit
	}
	if _, err := keysource.ParseOrder(options.Order); nil != err {
		return err
	}
	return nil
}

// generate the configured keys
func (options *Configuration) keys() ([]int, error) {
	order, err := keysource.ParseOrder(options.Order)
	if nil != err {
		return nil, err
	}
	return keysource.Generate(order, options.Count, options.Seed)
}
