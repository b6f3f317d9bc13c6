// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/aitrustd/fault"
)

// Limit - wait for a token, for JSON-RPC handlers
//
// fails at once if the wait could never be satisfied
func Limit(limiter *rate.Limiter) error {
	reservation := limiter.Reserve()
	if !reservation.OK() {
		return fault.RateLimiting
	}
	time.Sleep(reservation.Delay())
	return nil
}

// Allow - take a token without waiting, for HTTP routes
func Allow(limiter *rate.Limiter) error {
	if limiter.Allow() {
		return nil
	}
	return fault.RateLimiting
}
