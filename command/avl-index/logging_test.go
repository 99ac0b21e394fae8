// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
)

func TestLogSession(t *testing.T) {
	assert.True(t, testLogging.started, "shared session started")

	// a session that never started must not finalise the running logger
	s := &logSession{}
	s.finish()
	assert.False(t, s.started)

	assert.True(t, testLogging.started, "shared session still running")
	assert.NotNil(t, logger.New("after"), "logger still usable")
}

func TestLoadFailureLeavesSessionToFinish(t *testing.T) {
	_, err := keySource{}.load(logger.New("test"))
	assert.Error(t, err)
	assert.True(t, testLogging.started, "finish still required")
}
