// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package identity - the organisations allowed to call the registry
package identity

import (
	"fmt"
	"sort"

	"github.com/bitmark-inc/aitrustd/fault"
)

// Organisations - the configured set of organisations
type Organisations struct {
	names       map[string]struct{}
	defaultName string
}

// Caller - a resolved organisation, used as the registry's identity
type Caller string

// New - organisation set from configuration
//
// the default is used for requests that do not name an organisation
func New(names []string, defaultName string) (*Organisations, error) {
	if 0 == len(names) {
		return nil, fault.MissingParameters
	}

	o := &Organisations{
		names:       make(map[string]struct{}, len(names)),
		defaultName: defaultName,
	}
	for _, name := range names {
		if "" == name {
			return nil, fault.InvalidOrganisation
		}
		if _, ok := o.names[name]; ok {
			return nil, fault.ExistsError(fmt.Sprintf("organisation %s listed twice", name))
		}
		o.names[name] = struct{}{}
	}

	if "" != defaultName {
		if _, ok := o.names[defaultName]; !ok {
			return nil, fault.InvalidError(fmt.Sprintf("default organisation %s is not listed", defaultName))
		}
	}
	return o, nil
}

// Resolve - the caller for a requested organisation name
func (o *Organisations) Resolve(name string) (Caller, error) {
	if "" == name {
		name = o.defaultName
	}
	if "" == name {
		return "", fault.UnknownOrganisation
	}
	if _, ok := o.names[name]; !ok {
		return "", fault.ForbiddenError(fmt.Sprintf("unknown organisation: %s", name))
	}
	return Caller(name), nil
}

// Names - the organisations in sorted order
func (o *Organisations) Names() []string {
	names := make([]string, 0, len(o.names))
	for name := range o.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// OrganisationID - the caller's organisation
func (c Caller) OrganisationID() (string, error) {
	if "" == c {
		return "", fault.UnknownOrganisation
	}
	return string(c), nil
}
