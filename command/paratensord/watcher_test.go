// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/paratensord/background"
	"github.com/bitmark-inc/paratensord/fixtures"
	"github.com/bitmark-inc/paratensord/rpc/admin"
)

func setupWatcher(t *testing.T) (string, string) {
	fixtures.SetupTestLogger()

	dir, err := ioutil.TempDir("", "paratensord-watcher")
	require.Nil(t, err, "temp dir")

	return dir, writeConfiguration(t, dir, `return { chain = "local" }`)
}

func teardownWatcher(dir string) {
	os.RemoveAll(dir)
	fixtures.TeardownTestLogger()
}

func TestKeyWatcherReload(t *testing.T) {
	dir, fileName := setupWatcher(t)
	defer teardownWatcher(dir)

	keys := admin.NewKeySet(nil)
	w, err := newKeyWatcher(fileName, keys)
	require.Nil(t, err, "new watcher")
	defer w.watcher.Close()

	key := fixtures.Key()
	writeConfiguration(t, dir, fmt.Sprintf(`return { admin_keys = { %q } }`, key.String()))

	err = w.reload()
	require.Nil(t, err, "reload")
	assert.Equal(t, 1, keys.Count(), "key count")
	assert.True(t, keys.Contains(key), "key missing")

	// broken file keeps the current keys
	writeConfiguration(t, dir, `return { admin_keys = { "bad" } }`)
	err = w.reload()
	assert.NotNil(t, err, "bad key accepted")
	assert.True(t, keys.Contains(key), "key dropped")
}

func TestKeyWatcherEventFilter(t *testing.T) {
	dir, fileName := setupWatcher(t)
	defer teardownWatcher(dir)

	w, err := newKeyWatcher(fileName, admin.NewKeySet(nil))
	require.Nil(t, err, "new watcher")
	defer w.watcher.Close()

	other := filepath.Join(dir, "other.conf")

	assert.True(t, w.isConfigurationChange(fsnotify.Event{Name: fileName, Op: fsnotify.Write}), "write")
	assert.True(t, w.isConfigurationChange(fsnotify.Event{Name: fileName, Op: fsnotify.Create}), "create")
	assert.False(t, w.isConfigurationChange(fsnotify.Event{Name: fileName, Op: fsnotify.Chmod}), "chmod")
	assert.False(t, w.isConfigurationChange(fsnotify.Event{Name: other, Op: fsnotify.Write}), "other file")
}

func TestKeyWatcherRun(t *testing.T) {
	dir, fileName := setupWatcher(t)
	defer teardownWatcher(dir)

	keys := admin.NewKeySet(nil)
	w, err := newKeyWatcher(fileName, keys)
	require.Nil(t, err, "new watcher")

	processes := background.Start(background.Processes{w}, nil)
	defer processes.Stop()

	key := fixtures.Key()
	writeConfiguration(t, dir, fmt.Sprintf(`return { admin_keys = { %q } }`, key.String()))

	deadline := time.Now().Add(5 * time.Second)
	for !keys.Contains(key) && time.Now().Before(deadline) {
		time.Sleep(20 * time.Millisecond)
	}
	assert.True(t, keys.Contains(key), "key not reloaded")
}
