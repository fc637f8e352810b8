// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - run long lived loops, such as the script
// watcher, that stop together on request
package background

// Process - a background loop; Run must return soon after shutdown
// is closed
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// T - handle for a started set of processes
type T struct {
	shutdown chan struct{}
	finished []chan struct{}
}

// Start - start up a set of background processes
func Start(processes Processes, args interface{}) *T {

	register := &T{
		shutdown: make(chan struct{}),
		finished: make([]chan struct{}, len(processes)),
	}

	for i, p := range processes {
		finished := make(chan struct{})
		register.finished[i] = finished
		go func(p Process) {
			defer close(finished)
			p.Run(args, register.shutdown)
		}(p)
	}
	return register
}

// Stop - signal all processes and wait until every one has returned
func (t *T) Stop() {
	if nil == t {
		return
	}
	select {
	case <-t.shutdown:
		// already stopped
	default:
		close(t.shutdown)
	}

	for _, finished := range t.finished {
		<-finished
	}
}

// Done - closed once every process has returned, whether or not
// Stop was called
func (t *T) Done() <-chan struct{} {
	done := make(chan struct{})
	go func() {
		for _, finished := range t.finished {
			<-finished
		}
		close(done)
	}()
	return done
}
