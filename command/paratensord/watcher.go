// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/paratensord/configuration"
	"github.com/bitmark-inc/paratensord/rpc/admin"
)

const watcherLoggerPrefix = "key-watcher"

// only the admin keys are reloaded, everything else needs a restart
type adminKeysOnly struct {
	AdminKeys []string `gluamapper:"admin_keys"`
}

// keyWatcher - reload the admin key set when the configuration file changes
type keyWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	fileName string
	keys     *admin.KeySet
}

// the directory is watched since editors usually replace the file
func newKeyWatcher(fileName string, keys *admin.KeySet) (*keyWatcher, error) {
	fileName, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, err
	}

	err = watcher.Add(filepath.Dir(fileName))
	if nil != err {
		watcher.Close()
		return nil, err
	}

	return &keyWatcher{
		log:      logger.New(watcherLoggerPrefix),
		watcher:  watcher,
		fileName: fileName,
		keys:     keys,
	}, nil
}

// Run - background process loop
func (w *keyWatcher) Run(args interface{}, shutdown <-chan struct{}) {

	log := w.log

	log.Infof("watching: %q", w.fileName)

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			if !w.isConfigurationChange(event) {
				continue loop
			}
			log.Debugf("file event: %v", event)
			if err := w.reload(); nil != err {
				log.Errorf("reload: %q  error: %s", w.fileName, err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				break loop
			}
			log.Errorf("watcher error: %s", err)
		}
	}

	w.watcher.Close()
	log.Info("stopped")
}

func (w *keyWatcher) isConfigurationChange(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.fileName {
		return false
	}
	return 0 != event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename)
}

// an unreadable file keeps the previous keys
func (w *keyWatcher) reload() error {
	options := &adminKeysOnly{}
	err := configuration.ParseConfigurationFile(w.fileName, options)
	if nil != err {
		return err
	}

	keys, err := parseAdminKeys(options.AdminKeys)
	if nil != err {
		return err
	}

	w.keys.Set(keys)
	w.log.Infof("admin keys: %d", len(keys))
	return nil
}
