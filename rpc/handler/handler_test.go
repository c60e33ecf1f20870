// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler_test

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"net/rpc"
	"strings"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/paratensord/fixtures"
	"github.com/bitmark-inc/paratensord/rpc/handler"
)

// httptest requests come from this address
const testNetwork = "192.0.2.0/24"

type errorBody struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

type Height struct{}

type HeightArguments struct {
	Offset uint64 `json:"offset"`
}

type HeightReply struct {
	Height uint64 `json:"height"`
}

func (Height) Get(arguments *HeightArguments, reply *HeightReply) error {
	reply.Height = 100 + arguments.Offset
	return nil
}

func summary() (interface{}, error) {
	return map[string]string{"chain": "testing"}, nil
}

func failedSummary() (interface{}, error) {
	return nil, fmt.Errorf("storage closed")
}

func newHandler(t *testing.T, maximumConnections uint64, s handler.Summary) handler.Handler {
	server := rpc.NewServer()
	require.Nil(t, server.Register(Height{}), "register")

	return handler.New(logger.New(fixtures.LogCategory), server, time.Now(), "1.0", maximumConnections, s)
}

func allowTestNetwork(h handler.Handler) {
	_, cidr, _ := net.ParseCIDR(testNetwork)
	h.SetAllow(map[string][]*net.IPNet{"details": {cidr}})
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	var body errorBody
	err := json.Unmarshal(w.Body.Bytes(), &body)
	require.Nil(t, err, "error body: %q", w.Body.String())
	return body
}

func TestRoot(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h := newHandler(t, 5, nil)

	w := httptest.NewRecorder()
	h.Root(w, httptest.NewRequest(http.MethodGet, "/anything", nil))

	assert.Equal(t, http.StatusNotFound, w.Code, "status")
	assert.Equal(t, "not found", decodeError(t, w).Error, "body")
}

func TestRPC(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h := newHandler(t, 5, nil)

	request := `{"id":7,"method":"Height.Get","params":[{"offset":23}]}`
	w := httptest.NewRecorder()
	h.RPC(w, httptest.NewRequest(http.MethodPost, "/paratensord/rpc", strings.NewReader(request)))

	assert.Equal(t, http.StatusOK, w.Code, "status")
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"), "content type")

	var reply struct {
		ID     int          `json:"id"`
		Result HeightReply  `json:"result"`
		Error  *interface{} `json:"error"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &reply)
	require.Nil(t, err, "reply: %q", w.Body.String())
	assert.Equal(t, 7, reply.ID, "id")
	assert.Equal(t, uint64(123), reply.Result.Height, "height")
}

func TestRPCRejected(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	w := httptest.NewRecorder()
	newHandler(t, 5, nil).RPC(w, httptest.NewRequest(http.MethodGet, "/paratensord/rpc", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code, "GET accepted")

	request := `{"id":1,"method":"Height.Get","params":[{}]}`
	w = httptest.NewRecorder()
	newHandler(t, 0, nil).RPC(w, httptest.NewRequest(http.MethodPost, "/paratensord/rpc", strings.NewReader(request)))
	assert.Equal(t, http.StatusTooManyRequests, w.Code, "connection limit")
	assert.Equal(t, http.StatusText(http.StatusTooManyRequests), decodeError(t, w).Error, "limit body")
}

func TestDetails(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h := newHandler(t, 5, summary)
	allowTestNetwork(h)

	w := httptest.NewRecorder()
	h.Details(w, httptest.NewRequest(http.MethodGet, "/paratensord/details", nil))
	require.Equal(t, http.StatusOK, w.Code, "status")

	var reply struct {
		Version string            `json:"version"`
		Uptime  string            `json:"uptime"`
		Node    map[string]string `json:"node"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &reply)
	require.Nil(t, err, "reply: %q", w.Body.String())
	assert.Equal(t, "1.0", reply.Version, "version")
	assert.NotEqual(t, "", reply.Uptime, "uptime")
	assert.Equal(t, "testing", reply.Node["chain"], "summary")
}

func TestDetailsRejected(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	// nothing allowed
	w := httptest.NewRecorder()
	newHandler(t, 5, summary).Details(w, httptest.NewRequest(http.MethodGet, "/paratensord/details", nil))
	assert.Equal(t, http.StatusForbidden, w.Code, "not in allow list")

	h := newHandler(t, 5, summary)
	allowTestNetwork(h)
	w = httptest.NewRecorder()
	h.Details(w, httptest.NewRequest(http.MethodPost, "/paratensord/details", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code, "POST accepted")

	h = newHandler(t, 5, failedSummary)
	allowTestNetwork(h)
	w = httptest.NewRecorder()
	h.Details(w, httptest.NewRequest(http.MethodGet, "/paratensord/details", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code, "summary error hidden")
}
