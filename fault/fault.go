// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AllocationError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAllocationFailed      = AllocationError("node allocation failed")
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrBalanceViolated       = InvalidError("balance factor out of range")
	ErrConfigurationNotTable = InvalidError("configuration must return a table")
	ErrCountMismatch         = InvalidError("node count does not match tree size")
	ErrHeightMismatch        = InvalidError("cached height is inconsistent")
	ErrInvalidCount          = InvalidError("invalid count")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidNodeLimit      = InvalidError("invalid node limit")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrKeyNotFound           = NotFoundError("key not found")
	ErrMissingKey            = InvalidError("missing key")
	ErrMissingKeySource      = InvalidError("missing key source")
	ErrMultipleKeySources    = InvalidError("only one key source is allowed")
	ErrOrderingViolated      = InvalidError("key ordering violated")
	ErrParentLinkBroken      = InvalidError("parent link is inconsistent")
	ErrRankOutOfRange        = NotFoundError("rank out of range")
	ErrSizeMismatch          = InvalidError("cached size is inconsistent")
	ErrTooManyRotations      = ProcessError("more than one rotation during insert")
	ErrUnknownKeyOrder       = InvalidError("unknown key order")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AllocationError) Error() string { return string(e) }
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e ProcessError) Error() string    { return string(e) }

// determine the class of an error
func IsErrAllocation(e error) bool { _, ok := e.(AllocationError); return ok }
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
