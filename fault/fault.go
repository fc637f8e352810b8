// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrConfigDirPath         = InvalidError("config is not a folder")
	ErrInvalidCount          = InvalidError("count is invalid")
	ErrInvalidKeyOrder       = InvalidError("key order is invalid")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrIteratorInvalidated   = InvalidError("iterator invalidated by tree modification")
	ErrKeyLength             = LengthError("key length is invalid")
	ErrKeyNotFound           = NotFoundError("key not found")
	ErrMissingParameters     = InvalidError("missing parameters")
	ErrNotFoundConfigFile    = NotFoundError("config file is not found")
	ErrNotFoundDatabase      = NotFoundError("database is not found")
	ErrOrderViolation        = RecordError("keys are not in ascending order")
	ErrParentLinkBroken      = RecordError("parent link is inconsistent")
	ErrScriptFailed          = ProcessError("script execution failed")
	ErrUnbalancedTree        = RecordError("tree is not balanced")
	ErrWrongBalanceFactor    = RecordError("stored balance factor is wrong")
	ErrWatcherFileRemoved    = ProcessError("watched file was removed")
	ErrWatcherNotInitialised = ProcessError("watcher is not initialised")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
