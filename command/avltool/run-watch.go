// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/background"
	"github.com/bitmark-inc/avltree/fault"
)

func runWatch(c *cli.Context) error {
	m, err := getMetadata(c)
	if nil != err {
		return err
	}

	if 1 != c.NArg() {
		return fault.ErrMissingParameters
	}
	fileName := c.Args().Get(0)

	watcher, err := newFileWatcher(fileName, logger.New(fileWatcherLoggerPrefix))
	if nil != err {
		return err
	}
	if err := watcher.Start(); nil != err {
		return err
	}

	r := &rerunner{
		log:      logger.New("rerun"),
		fileName: fileName,
		watcher:  watcher,
		done:     make(chan struct{}),
		execute: func() error {
			runner, err := newRunner(m)
			if nil != err {
				return err
			}
			if err := runner.RunFile(fileName); nil != err {
				fmt.Fprintf(m.e, "script error: %s\n", err)
				return err
			}
			printTree(m.w, runner.Tree(), m.colour)
			return nil
		},
	}

	processes := background.Processes{
		watcher,
		r,
	}
	p := background.Start(processes, nil)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-ch:
		m.log.Infof("received signal: %v", sig)
	case <-r.finished():
		m.log.Info("script removed")
	}

	p.Stop()
	return nil
}

// reruns a script each time its watcher reports a change
type rerunner struct {
	log      *logger.L
	fileName string
	watcher  FileWatcher
	execute  func() error
	done     chan struct{}
}

// closed when Run returns
func (r *rerunner) finished() <-chan struct{} {
	return r.done
}

func (r *rerunner) Run(args interface{}, shutdown <-chan struct{}) {
	defer close(r.done)

	r.once()
	for {
		select {
		case <-shutdown:
			return
		case <-r.watcher.Change():
			r.once()
		case <-r.watcher.Remove():
			r.log.Warnf("file: %s removed", r.fileName)
			return
		}
	}
}

func (r *rerunner) once() {
	r.log.Infof("run: %s", r.fileName)
	if err := r.execute(); nil != err {
		r.log.Errorf("run: %s  error: %s", r.fileName, err)
	}
}
