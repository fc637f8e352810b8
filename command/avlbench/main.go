// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avlbench - repeated random workloads against fresh AVL trees,
// verifying the tree invariants as it goes
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/stress"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const (
	defaultOperations = 100000
	defaultKeyRange   = 10000
	defaultInsert     = 60
	defaultRounds     = 1
	defaultLogDir     = "log"
)

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "operations", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'n'},
		{Long: "range", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'r'},
		{Long: "insert", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'i'},
		{Long: "check", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "seed", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
		{Long: "rounds", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'R'},
		{Long: "log-directory", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'l'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] [--operations=N] [--range=N] [--insert=PERCENT] [--check=N] [--seed=N] [--rounds=N] [--log-directory=DIR]", program)
	}

	if 0 != len(arguments) {
		exitwithstatus.Message("%s: unexpected arguments: %q", program, arguments)
	}

	verbose := len(options["verbose"]) > 0
	quiet := len(options["quiet"]) > 0

	operations := intOption(program, options, "operations", defaultOperations)
	keyRange := intOption(program, options, "range", defaultKeyRange)
	insert := intOption(program, options, "insert", defaultInsert)
	check := intOption(program, options, "check", 0)
	rounds := intOption(program, options, "rounds", defaultRounds)
	seed := int64(intOption(program, options, "seed", int(time.Now().UnixNano()&0x7fffffff)))

	logDirectory := defaultLogDir
	if 1 == len(options["log-directory"]) {
		logDirectory = options["log-directory"][0]
	}
	if err := os.MkdirAll(logDirectory, 0700); nil != err {
		exitwithstatus.Message("%s: log directory: %q  error: %s", program, logDirectory, err)
	}

	level := "info"
	if verbose {
		level = "debug"
	}
	logging := logger.Configuration{
		Directory: logDirectory,
		File:      "avlbench.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			"main":            level,
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err := fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)

	total := avl.Stats{}
	for round := 0; round < rounds; round += 1 {
		o := stress.Options{
			Operations:    operations,
			KeyRange:      keyRange,
			InsertPercent: insert,
			CheckEvery:    check,
			Seed:          seed + int64(round),
		}

		result, err := stress.Run(avl.New[string, string](), o, log)
		if nil != err {
			log.Criticalf("round: %d  seed: %d  error: %s", round, o.Seed, err)
			exitwithstatus.Message("%s: round: %d  seed: %d  error: %s", program, round, o.Seed, err)
		}

		total.Single += result.Rotations.Single
		total.Double += result.Rotations.Double

		if !quiet {
			fmt.Printf("round: %d  seed: %d  %s\n", round, o.Seed, result)
		}
	}

	if !quiet {
		fmt.Printf("rounds: %d  single rotations: %d  double rotations: %d\n", rounds, total.Single, total.Double)
	}
}

// fetch a single numeric option or its default
func intOption(program string, options map[string][]string, name string, value int) int {
	switch len(options[name]) {
	case 0:
		return value
	case 1:
		n, err := strconv.Atoi(options[name][0])
		if nil != err || n < 0 {
			exitwithstatus.Message("%s: invalid %s: %q", program, name, options[name][0])
		}
		return n
	default:
		exitwithstatus.Message("%s: only one %s option is allowed", program, name)
	}
	return value
}
