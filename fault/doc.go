// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches
//
// Store and layout failures carry their cause and location, so these
// are struct types; use the IsErrXXX functions to classify an error
// even after it has been wrapped with fmt.Errorf("...: %w", err)
package fault
