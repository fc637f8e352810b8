// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/avltree/fault"
)

const (
	fileWatcherLoggerPrefix = "file-watcher"
)

// FileWatcher - report changes to a single file
type FileWatcher interface {
	Start() error
	Change() <-chan struct{}
	Remove() <-chan struct{}
}

type fileWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	change   chan struct{}
	remove   chan struct{}
}

func newFileWatcher(targetFile string, log *logger.L) (*fileWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		log.Errorf("parse file %s error: %s", targetFile, err)
		return nil, err
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	return &fileWatcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		change:   make(chan struct{}, 1),
		remove:   make(chan struct{}, 1),
	}, nil
}

// Start - begin watching, events are delivered once Run is started
func (w *fileWatcher) Start() error {
	if nil == w.watcher {
		return fault.ErrWatcherNotInitialised
	}
	err := w.watcher.Add(w.filePath)
	if nil != err {
		w.log.Errorf("watcher add error: %s, abort", err)
		return err
	}
	return nil
}

func (w *fileWatcher) Change() <-chan struct{} {
	return w.change
}

func (w *fileWatcher) Remove() <-chan struct{} {
	return w.remove
}

// Run - background process translating file system events
func (w *fileWatcher) Run(args interface{}, shutdown <-chan struct{}) {
	defer w.watcher.Close()

	for {
		select {
		case <-shutdown:
			w.log.Info("stopped")
			return

		case err := <-w.watcher.Errors:
			w.log.Errorf("watcher error: %s", err)

		case event := <-w.watcher.Events:
			w.log.Debugf("file event: %v", event)

			if path.Base(event.Name) != path.Base(w.filePath) {
				w.log.Debugf("file %s not match, discard event", event.Name)
				continue
			}

			if watcherEventFileRemove(event) {
				w.log.Errorf("file %s removed, stop", w.filePath)
				sendEvent(w.log, w.remove, "remove")
				return
			}

			if watcherEventFileChange(event) {
				w.log.Info("sending change event…")
				sendEvent(w.log, w.change, "change")
			}
		}
	}
}

// never block: one pending event is enough to trigger a rerun
func sendEvent(log *logger.L, ch chan<- struct{}, name string) {
	select {
	case ch <- struct{}{}:
	default:
		log.Debugf("event channel %s full, discard event", name)
	}
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Name == "" ||
		event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}
