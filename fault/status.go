// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// process exit status for each class of failure
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitOpen     = 2
	ExitNotFound = 3
	ExitIO       = 4
	ExitLayout   = 5
	ExitOutput   = 6
)

// OutputError - an artifact could not be written
type OutputError struct {
	Name string
	Err  error
}

func (e *OutputError) Error() string {
	return "write: " + e.Name + " failed with error: " + e.Err.Error()
}

func (e *OutputError) Unwrap() error { return e.Err }

// ExitStatus - map an error to a stable process exit status
//
// the order matters: a layout error found while reading is reported
// as a layout error, not as the generic failure of its caller
func ExitStatus(err error) int {
	switch {
	case nil == err:
		return ExitOK
	case IsErrOpen(err):
		return ExitOpen
	case IsErrIO(err):
		return ExitIO
	case IsErrLayout(err):
		return ExitLayout
	case IsErrNotFound(err):
		return ExitNotFound
	case IsErrOutput(err):
		return ExitOutput
	default:
		return ExitFailure
	}
}
