// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type ForbiddenError GenericError
type IntegrityError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised           = ExistsError("already initialised")
	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	CertificateFileNotFound      = NotFoundError("certificate file not found")
	ConfigurationFileNotFound    = NotFoundError("configuration file not found")
	CorruptRecord                = IntegrityError("stored record is corrupt")
	DatabaseIsNotSet             = ProcessError("database is not set")
	IndexNotDeclared             = NotFoundError("index is not declared")
	InvalidCount                 = InvalidError("invalid count")
	InvalidIpAddress             = InvalidError("invalid IP address")
	InvalidOrganisation          = InvalidError("invalid organisation")
	InvalidPortNumber            = InvalidError("invalid port number")
	InvalidPrivateKeyFile        = InvalidError("invalid private key file")
	InvalidPublicKeyFile         = InvalidError("invalid public key file")
	InvalidStructPointer         = InvalidError("invalid struct pointer")
	KeyFileAlreadyExists         = ExistsError("key file already exists")
	KeyTooLong                   = LengthError("key too long")
	MissingAssetType             = InvalidError("missing asset type")
	MissingAssetUUID             = InvalidError("missing asset uuid")
	MissingParameters            = InvalidError("missing parameters")
	NoChangesProvided            = InvalidError("No changes were provided")
	NotAvailableDuringStartup    = InvalidError("not available during startup")
	NotInitialised               = NotFoundError("not initialised")
	NotOwner                     = ForbiddenError("caller does not own the asset")
	QueueFull                    = ProcessError("queue full")
	RateLimiting                 = InvalidError("rate limiting")
	ReadOnlyTransaction          = ProcessError("write attempted in read-only transaction")
	SelectorMismatch             = InvalidError("selector fields do not match index")
	UnknownBackend               = InvalidError("unknown database backend")
	UnknownOrganisation          = ForbiddenError("unknown organisation")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string    { return string(e) }
func (e ForbiddenError) Error() string { return string(e) }
func (e IntegrityError) Error() string { return string(e) }
func (e InvalidError) Error() string   { return string(e) }
func (e LengthError) Error() string    { return string(e) }
func (e NotFoundError) Error() string  { return string(e) }
func (e ProcessError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool    { var x ExistsError; return errors.As(e, &x) }
func IsErrForbidden(e error) bool { var x ForbiddenError; return errors.As(e, &x) }
func IsErrIntegrity(e error) bool { var x IntegrityError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool   { var x InvalidError; return errors.As(e, &x) }
func IsErrLength(e error) bool    { var x LengthError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool  { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool   { var x ProcessError; return errors.As(e, &x) }
