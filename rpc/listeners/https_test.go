// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"fmt"
	"io/ioutil"
	"math/rand"
	"net"
	"net/http"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/paratensord/fixtures"
	"github.com/bitmark-inc/paratensord/rpc/listeners"
)

type testHandler struct {
	allow map[string][]*net.IPNet
}

func (h *testHandler) RPC(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("RPC"))
}

func (h *testHandler) Details(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("Details"))
}

func (h *testHandler) Root(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("Root"))
}

func (h *testHandler) SetAllow(allow map[string][]*net.IPNet) {
	h.allow = allow
}

var client = &http.Client{
	Transport: &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
	},
}

func setupHTTPS(t *testing.T) (string, *testHandler) {
	port := rand.Intn(30000) + 30000

	conf := listeners.HTTPSConfiguration{
		MaximumConnections: 5,
		Listen:             []string{fmt.Sprintf("127.0.0.1:%d", port)},
		Allow: map[string][]string{
			"details": {"127.0.0.1/32", " 10.0.0.0/8 "},
		},
	}

	h := &testHandler{}
	l, err := listeners.NewHTTPS(&conf, logger.New(fixtures.LogCategory), testTLS(t), h)
	require.Nil(t, err, "wrong NewHTTPS")
	require.Nil(t, l.Serve(), "wrong Serve")

	return fmt.Sprintf("https://127.0.0.1:%d", port), h
}

func get(t *testing.T, url string) string {
	resp, err := client.Get(url)
	require.Nil(t, err, "wrong Get")
	defer resp.Body.Close()

	content, _ := ioutil.ReadAll(resp.Body)
	return string(content)
}

func TestHttpsListenerServe(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	base, h := setupHTTPS(t)

	assert.Equal(t, "RPC", get(t, base+listeners.PathPrefix+"rpc"), "wrong RPC route")
	assert.Equal(t, "Details", get(t, base+listeners.PathPrefix+"details"), "wrong Details route")
	assert.Equal(t, "Root", get(t, base+"/"), "wrong Root route")
	assert.Equal(t, "Root", get(t, base+listeners.PathPrefix+"peers"), "wrong unknown route")

	require.Equal(t, 2, len(h.allow["details"]), "wrong allow list")
	assert.True(t, h.allow["details"][1].Contains(net.ParseIP("10.1.2.3")), "wrong allow network")
}

func TestHttpsListenerDisabled(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	l, err := listeners.NewHTTPS(&listeners.HTTPSConfiguration{}, logger.New(fixtures.LogCategory), &tls.Config{}, &testHandler{})
	assert.Nil(t, err, "wrong error")
	assert.Nil(t, l, "listener created without listen addresses")
}

func TestHttpsListenerInvalidAllow(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	conf := listeners.HTTPSConfiguration{
		MaximumConnections: 5,
		Listen:             []string{"127.0.0.1:2131"},
		Allow: map[string][]string{
			"details": {"not a network"},
		},
	}
	_, err := listeners.NewHTTPS(&conf, logger.New(fixtures.LogCategory), &tls.Config{}, &testHandler{})
	assert.NotNil(t, err, "invalid allow accepted")
}
