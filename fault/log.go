// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/bitmark-inc/logger"
)

const panicChannel = "PANIC"

// the last-gasp logger channel
var (
	logLock sync.Mutex
	log     *logger.L
)

// Initialise - setup a log channel for last attempt to log something
//
// the logger package must already be initialised
func Initialise() error {
	logLock.Lock()
	defer logLock.Unlock()

	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New(panicChannel)
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data and detach from the logger
func Finalise() {
	logLock.Lock()
	defer logLock.Unlock()

	if nil != log {
		log.Flush()
		log = nil
	}
}

// Critical - log a simple string prefixed with the caller location
func Critical(message string) {
	criticalf(2, "%s", message)
}

// Criticalf - log a formatted string with arguments like fmt.Sprintf()
func Criticalf(format string, arguments ...interface{}) {
	criticalf(2, format, arguments...)
}

// Panicf - log the formatted message then panic
//
// used for broken invariants where continuing would corrupt data
func Panicf(format string, arguments ...interface{}) {
	s := criticalf(2, format, arguments...)
	panic(s)
}

// PanicWithError - log and panic with an error
func PanicWithError(message string, err error) {
	s := criticalf(2, "%s failed with error: %v", message, err)
	panic(s)
}

// PanicIfError - conditional panic
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	s := criticalf(2, "%s failed with error: %v", message, err)
	panic(s)
}

// format and output, returns the message without the location prefix
func criticalf(skip int, format string, arguments ...interface{}) string {
	message := fmt.Sprintf(format, arguments...)

	location := ""
	if _, file, line, ok := runtime.Caller(skip); ok {
		location = fmt.Sprintf("(%q:%d) ", file, line)
	}

	logLock.Lock()
	defer logLock.Unlock()

	if nil == log {
		fmt.Printf("*** %s%s\n", location, message)
	} else {
		log.Criticalf("%s%s", location, message)
		log.Flush() // make sure log file is saved
	}
	return message
}
