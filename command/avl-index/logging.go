// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/avlindex/fault"
	"github.com/bitmark-inc/logger"
)

// tracks whether the logger needs finalising
type logSession struct {
	started bool
}

// initialise the logger and the fault channel
func (s *logSession) start(configuration logger.Configuration) error {
	if err := logger.Initialise(configuration); nil != err {
		return err
	}
	s.started = true

	if err := fault.Initialise(); nil != err {
		return err
	}
	return nil
}

// flush and close the log if start succeeded
func (s *logSession) finish() {
	if !s.started {
		return
	}
	fault.Finalise()
	logger.Finalise()
	s.started = false
}
