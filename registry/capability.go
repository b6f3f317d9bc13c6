// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

// EventSink - receives one named payload per successful mutation
type EventSink interface {
	SetEvent(name string, payload []byte) error
}

// IdentityProvider - the organisation of the current caller
type IdentityProvider interface {
	OrganisationID() (string, error)
}
