// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
)

// the session shared by all tests
var testLogging = &logSession{}

func TestMain(m *testing.M) {
	os.Exit(runTests(m))
}

func runTests(m *testing.M) int {
	logDirectory, err := ioutil.TempDir("", "avl-index-log")
	if nil != err {
		fmt.Printf("temp dir error: %s\n", err)
		return 1
	}
	defer os.RemoveAll(logDirectory)

	configuration := logger.Configuration{
		Directory: logDirectory,
		File:      "test.log",
		Size:      50000,
		Count:     10,
		Levels: map[string]string{
			logger.DefaultTag: "trace",
		},
	}
	if err := testLogging.start(configuration); nil != err {
		fmt.Printf("logger setup failed with error: %s\n", err)
		return 1
	}
	defer testLogging.finish()

	return m.Run()
}
