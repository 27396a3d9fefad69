// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/avltrace/fault"
)

const (
	watcherLoggerPrefix = "file-watcher"
)

// notifications from the watcher, each channel holds at most one
// pending event so bursts of writes collapse into one re-run
type watcherChannel struct {
	change chan struct{}
	remove chan struct{}
}

func newWatcherChannel() watcherChannel {
	return watcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
}

type fileWatcher struct {
	log      *logger.L
	channels watcherChannel
	watcher  *fsnotify.Watcher
	filePath string
	done     chan struct{}
}

func newFileWatcher(targetFile string, log *logger.L, channels watcherChannel) (*fileWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		log.Errorf("parse file %s error: %s", targetFile, err)
		return nil, err
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fault.ErrWatchedFileDoesNotExist
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	return &fileWatcher{
		log:      log,
		channels: channels,
		watcher:  watcher,
		filePath: filePath,
		done:     make(chan struct{}),
	}, nil
}

// Start - begin delivering events for the file
func (w *fileWatcher) Start() error {
	err := w.watcher.Add(w.filePath)
	if nil != err {
		w.log.Errorf("watcher add error: %s, abort", err)
		return err
	}

	go w.loop()

	return nil
}

// Stop - release the watcher
func (w *fileWatcher) Stop() {
	close(w.done)
	w.watcher.Close()
}

func (w *fileWatcher) loop() {
	for {
		select {
		case <-w.done:
			return

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Errorf("watcher error: %s", err)

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.log.Debugf("file event: %v", event)

			if filepath.Base(event.Name) != filepath.Base(w.filePath) {
				w.log.Debugf("file %s not match, discard event", event.Name)
				continue
			}

			if watcherEventFileRemove(event) {
				w.log.Warnf("file %s removed, stop", w.filePath)
				w.sendEvent(w.channels.remove, "remove")
				return
			}

			if watcherEventFileChange(event) {
				w.log.Info("sending change event…")
				w.sendEvent(w.channels.change, "change")
			}
		}
	}
}

func (w *fileWatcher) sendEvent(ch chan struct{}, name string) {
	select {
	case ch <- struct{}{}:
	default:
		w.log.Debugf("event channel %s full, discard event", name)
	}
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create
}
