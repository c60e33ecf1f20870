// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/paratensord/fault"
	"github.com/bitmark-inc/paratensord/rpc/handler"
)

const (
	httpsLogName     = "https_rpc"
	readWriteTimeout = 10 * time.Second
	keepAlivePeriod  = 3 * time.Minute
	maxHeaderBytes   = 1 << 20

	// URL prefix of every endpoint
	PathPrefix = "/paratensord/"
)

// HTTPSConfiguration - https_rpc section of the configuration file
//
// Allow maps an endpoint name to the CIDRs permitted to call it
type HTTPSConfiguration struct {
	MaximumConnections uint64              `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string            `gluamapper:"listen" json:"listen"`
	Certificate        string              `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string              `gluamapper:"private_key" json:"private_key"`
	Allow              map[string][]string `gluamapper:"allow" json:"allow"`
}

type httpsListener struct {
	log       *logger.L
	endpoints []endpoint
	tlsConfig *tls.Config
	mux       *http.ServeMux
}

// NewHTTPS - validate the configuration for an HTTPS listener
//
// returns nil without error when no listen address is configured
func NewHTTPS(
	configuration *HTTPSConfiguration,
	log *logger.L,
	tlsConfig *tls.Config,
	hdlr handler.Handler,
) (Listener, error) {
	if 0 == len(configuration.Listen) {
		log.Infof("%s: no listen addresses", httpsLogName)
		return nil, nil
	}

	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("%s: maximum connections: %d below: %d", httpsLogName, configuration.MaximumConnections, minConnectionCount)
		return nil, fault.MissingParameters
	}

	endpoints, err := parseListenAddress(configuration.Listen, log)
	if nil != err {
		return nil, err
	}

	allow, err := parseAllow(configuration.Allow)
	if nil != err {
		log.Errorf("%s: allow error: %s", httpsLogName, err)
		return nil, err
	}
	hdlr.SetAllow(allow)

	routes := map[string]http.HandlerFunc{
		PathPrefix + "rpc":     hdlr.RPC,
		PathPrefix + "details": hdlr.Details,
		"/":                    hdlr.Root,
	}
	mux := http.NewServeMux()
	for pattern, f := range routes {
		mux.HandleFunc(pattern, f)
	}

	return &httpsListener{
		log:       log,
		endpoints: endpoints,
		tlsConfig: tlsConfig,
		mux:       mux,
	}, nil
}

func parseAllow(allow map[string][]string) (map[string][]*net.IPNet, error) {
	result := make(map[string][]*net.IPNet, len(allow))
	for path, cidrs := range allow {
		nets := make([]*net.IPNet, 0, len(cidrs))
		for _, s := range cidrs {
			_, n, err := net.ParseCIDR(strings.TrimSpace(s))
			if nil != err {
				return nil, err
			}
			nets = append(nets, n)
		}
		result[path] = nets
	}
	return result, nil
}

// Serve - bind every address, then serve in background
func (h *httpsListener) Serve() error {
	h.tlsConfig.NextProtos = []string{"http/1.1"}

	for _, e := range h.endpoints {
		ln, err := net.Listen(e.network, e.address)
		if nil != err {
			h.log.Errorf("%s: listen on: %s  error: %s", httpsLogName, e.address, err)
			return err
		}
		h.log.Infof("%s: listening on: %s", httpsLogName, e.address)

		server := &http.Server{
			Addr:           e.address,
			Handler:        h.mux,
			ReadTimeout:    readWriteTimeout,
			WriteTimeout:   readWriteTimeout,
			MaxHeaderBytes: maxHeaderBytes,
		}
		secure := tls.NewListener(keepAlive{ln.(*net.TCPListener)}, h.tlsConfig)

		go func(address string) {
			err := server.Serve(secure)
			h.log.Errorf("%s: serve on: %s  terminated: %s", httpsLogName, address, err)
		}(e.address)
	}
	return nil
}

// keepAlive - accepted connections probe idle peers
type keepAlive struct {
	*net.TCPListener
}

func (k keepAlive) Accept() (net.Conn, error) {
	conn, err := k.AcceptTCP()
	if nil != err {
		return nil, err
	}
	_ = conn.SetKeepAlive(true)
	_ = conn.SetKeepAlivePeriod(keepAlivePeriod)
	return conn, nil
}
