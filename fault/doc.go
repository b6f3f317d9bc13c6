// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches
//
// Errors that must mention a particular asset are created by converting
// a message into the class, e.g. NotFoundError("asset A1 does not exist"),
// and are tested with the IsErr… functions rather than by equality
package fault
