// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gateway

import (
	"net"
	"net/http"
	"net/rpc"
	"strings"

	"github.com/julienschmidt/httprouter"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/aitrustd/counter"
	"github.com/bitmark-inc/aitrustd/fault"
	"github.com/bitmark-inc/aitrustd/rpc/assets"
	"github.com/bitmark-inc/aitrustd/rpc/node"
	"github.com/bitmark-inc/aitrustd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

// header carrying the caller organisation
const organisationHeader = "x-org-name"

// route names used for allow lists and metrics labels
const (
	allowRPC     = "rpc"
	allowDetails = "details"
	allowMetrics = "metrics"
)

// shared by all routes, excess requests get 429 rather than waiting
const (
	rateLimitGateway = 200
	rateBurstGateway = 100
)

// Gateway - the HTTP handler for the https_rpc listener
type Gateway struct {
	log     *logger.L
	assets  *assets.Assets
	node    *node.Node
	server  *rpc.Server
	count   *counter.Counter
	allow   map[string][]*net.IPNet
	limiter *rate.Limiter
	metrics *metrics
	router  *httprouter.Router
}

// New - build the gateway routes
//
// allow maps a route name (rpc, details, metrics) to CIDR strings;
// a route with no entry refuses every client
func New(
	log *logger.L,
	a *assets.Assets,
	n *node.Node,
	server *rpc.Server,
	count *counter.Counter,
	allow map[string][]string,
) (*Gateway, error) {
	if nil == log || nil == a || nil == n || nil == server || nil == count {
		return nil, fault.MissingParameters
	}

	nets, err := parseAllow(allow)
	if nil != err {
		log.Errorf("invalid allow list: %s", err)
		return nil, err
	}

	g := &Gateway{
		log:     log,
		assets:  a,
		node:    n,
		server:  server,
		count:   count,
		allow:   nets,
		limiter: rate.NewLimiter(rateLimitGateway, rateBurstGateway),
		metrics: newMetrics(),
	}

	r := httprouter.New()
	r.RedirectTrailingSlash = false
	r.HandleMethodNotAllowed = true
	r.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		sendMethodNotAllowed(w)
	})
	r.NotFound = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		sendNotFound(w)
	})

	r.GET("/", g.instrument("root", g.health))
	r.GET("/health", g.instrument("health", g.health))

	r.POST("/AITrustAssets", g.instrument("create", g.create))
	r.GET("/AITrustAssets", g.instrument("query", g.query))
	r.GET("/AITrustAssets/:assetId", g.instrument("read", g.read))
	r.PATCH("/AITrustAssets/:assetId", g.instrument("update", g.update))
	r.DELETE("/AITrustAssets/:assetId", g.instrument("delete", g.delete))
	r.POST("/getHistoryForAITrustAsset", g.instrument("history", g.history))

	r.POST("/aitrustd/rpc", g.instrument(allowRPC, g.restrict(allowRPC, g.rpc)))
	r.GET("/aitrustd/details", g.instrument(allowDetails, g.restrict(allowDetails, g.details)))
	r.Handler(http.MethodGet, "/metrics", g.restrictHandler(allowMetrics, g.metrics.handler()))

	g.router = r

	return g, nil
}

// ServeHTTP - dispatch a request
func (g *Gateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.router.ServeHTTP(w, r)
}

// organisation - the caller as given by the request header
//
// blank selects the default organisation
func organisation(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(organisationHeader))
}

func parseAllow(allow map[string][]string) (map[string][]*net.IPNet, error) {
	nets := make(map[string][]*net.IPNet)
	for route, addresses := range allow {
		set := make([]*net.IPNet, 0, len(addresses))
		for _, ip := range addresses {
			_, cidr, err := net.ParseCIDR(strings.Trim(ip, " "))
			if nil != err {
				return nil, err
			}
			set = append(set, cidr)
		}
		nets[route] = set
	}
	return nets, nil
}

// allowed - check the remote address against a route's allow list
func (g *Gateway) allowed(route string, remoteAddr string) bool {
	host, _, err := net.SplitHostPort(remoteAddr)
	if nil != err {
		return false
	}
	ip := net.ParseIP(host)
	if nil == ip {
		return false
	}
	for _, cidr := range g.allow[route] {
		if cidr.Contains(ip) {
			return true
		}
	}
	return false
}

func (g *Gateway) throttle(route string, h httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if err := ratelimit.Allow(g.limiter); nil != err {
			g.fail(w, route, err)
			return
		}
		h(w, r, ps)
	}
}

func (g *Gateway) restrict(route string, h httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if !g.allowed(route, r.RemoteAddr) {
			g.log.Warnf("deny access: %s  from: %q", route, r.RemoteAddr)
			sendForbidden(w)
			return
		}
		h(w, r, ps)
	}
}

func (g *Gateway) restrictHandler(route string, h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !g.allowed(route, r.RemoteAddr) {
			g.log.Warnf("deny access: %s  from: %q", route, r.RemoteAddr)
			sendForbidden(w)
			return
		}
		h.ServeHTTP(w, r)
	})
}
