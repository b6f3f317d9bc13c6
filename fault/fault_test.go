// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/aitrustd/fault"
)

var (
	ErrExistsOne    = fault.ExistsError("exists one ")
	ErrExistsTwo    = fault.ExistsError("exists two")
	ErrForbiddenOne = fault.ForbiddenError("forbidden one")
	ErrIntegrityOne = fault.IntegrityError("integrity one")
	ErrInvalidOne   = fault.InvalidError("invalid one")
	ErrInvalidTwo   = fault.InvalidError("invalid two")
	ErrLengthOne    = fault.LengthError("length one")
	ErrNotFoundOne  = fault.NotFoundError("not found one")
	ErrNotFoundTwo  = fault.NotFoundError("not found two")
	ErrProcessOne   = fault.ProcessError("process one")
)

// test that the various errors can be subclassed
func TestClasses(t *testing.T) {
	errorList := []struct {
		err       error
		exists    bool
		forbidden bool
		integrity bool
		invalid   bool
		length    bool
		notFound  bool
		process   bool
	}{
		{ErrExistsOne, true, false, false, false, false, false, false},
		{ErrExistsTwo, true, false, false, false, false, false, false},
		{ErrForbiddenOne, false, true, false, false, false, false, false},
		{ErrIntegrityOne, false, false, true, false, false, false, false},
		{ErrInvalidOne, false, false, false, true, false, false, false},
		{ErrInvalidTwo, false, false, false, true, false, false, false},
		{ErrLengthOne, false, false, false, false, true, false, false},
		{ErrNotFoundOne, false, false, false, false, false, true, false},
		{ErrNotFoundTwo, false, false, false, false, false, true, false},
		{ErrProcessOne, false, false, false, false, false, false, true},
		{fault.NotOwner, false, true, false, false, false, false, false},
		{fault.CorruptRecord, false, false, true, false, false, false, false},
	}

	for i, e := range errorList {
		err := e.err
		assert.Equal(t, e.exists, fault.IsErrExists(err), "%d: exists: %v", i, err)
		assert.Equal(t, e.forbidden, fault.IsErrForbidden(err), "%d: forbidden: %v", i, err)
		assert.Equal(t, e.integrity, fault.IsErrIntegrity(err), "%d: integrity: %v", i, err)
		assert.Equal(t, e.invalid, fault.IsErrInvalid(err), "%d: invalid: %v", i, err)
		assert.Equal(t, e.length, fault.IsErrLength(err), "%d: length: %v", i, err)
		assert.Equal(t, e.notFound, fault.IsErrNotFound(err), "%d: not found: %v", i, err)
		assert.Equal(t, e.process, fault.IsErrProcess(err), "%d: process: %v", i, err)
	}
}

func TestWrappedErrorKeepsClass(t *testing.T) {
	err := fmt.Errorf("read A1: %w", fault.NotFoundError("asset A1 does not exist"))

	assert.True(t, fault.IsErrNotFound(err), "wrapped class lost")
	assert.False(t, fault.IsErrExists(err), "wrong class")
	assert.Equal(t, "read A1: asset A1 does not exist", err.Error(), "wrong message")
}
