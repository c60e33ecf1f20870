// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/paratensord/fixtures"
	"github.com/bitmark-inc/paratensord/rpc/certificate"
)

// a TLS configuration from a freshly generated self signed certificate
func testTLS(t *testing.T) *tls.Config {
	dir, err := ioutil.TempDir("", "paratensord-listeners")
	require.Nil(t, err, "wrong TempDir")
	defer os.RemoveAll(dir)

	cer := filepath.Join(dir, "test.crt")
	key := filepath.Join(dir, "test.key")
	require.Nil(t, certificate.MakeSelfSigned("test", cer, key, false, []string{"127.0.0.1"}), "wrong MakeSelfSigned")

	tlsConfig, _, err := certificate.Load(logger.New(fixtures.LogCategory), "test", cer, key)
	require.Nil(t, err, "wrong Load")
	return tlsConfig
}
