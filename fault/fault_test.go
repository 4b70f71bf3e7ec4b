// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/bitmark-inc/ckbdump/fault"
)

var (
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrInvalidTwo  = fault.InvalidError("invalid two")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrNotFoundTwo = fault.NotFoundError("not found two")
	ErrProcessOne  = fault.ProcessError("process one")
	ErrProcessTwo  = fault.ProcessError("process two")
	ErrOpen        = &fault.OpenError{Path: "/nonexistant", Err: errors.New("missing")}
	ErrIO          = &fault.IOError{Partition: "1", Key: []byte{1, 2}, Err: errors.New("corrupt")}
	ErrLayout      = fault.NewLayoutError(4, "offset: %d decreases", 8)
)

// test that various errors can be subclassed
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		invalid  bool
		notFound bool
		process  bool
		open     bool
		io       bool
		layout   bool
	}{
		{ErrInvalidOne, true, false, false, false, false, false},
		{ErrInvalidTwo, true, false, false, false, false, false},
		{ErrNotFoundOne, false, true, false, false, false, false},
		{ErrNotFoundTwo, false, true, false, false, false, false},
		{ErrProcessOne, false, false, true, false, false, false},
		{ErrProcessTwo, false, false, true, false, false, false},
		{ErrOpen, false, false, false, true, false, false},
		{ErrIO, false, false, false, false, true, false},
		{ErrLayout, false, false, false, false, false, true},
		{fmt.Errorf("height: 7: %w", ErrLayout), false, false, false, false, false, true},
		{fmt.Errorf("height: 7: %w", ErrNotFoundOne), false, true, false, false, false, false},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrOpen(err) != e.open {
			t.Errorf("%d: expected 'open' == %v for err = %v", i, e.open, err)
		}
		if fault.IsErrIO(err) != e.io {
			t.Errorf("%d: expected 'io' == %v for err = %v", i, e.io, err)
		}
		if fault.IsErrLayout(err) != e.layout {
			t.Errorf("%d: expected 'layout' == %v for err = %v", i, e.layout, err)
		}
	}
}

func TestExitStatus(t *testing.T) {
	statusList := []struct {
		err    error
		status int
	}{
		{nil, fault.ExitOK},
		{ErrInvalidOne, fault.ExitFailure},
		{ErrProcessOne, fault.ExitFailure},
		{ErrOpen, fault.ExitOpen},
		{fmt.Errorf("height: 3: %w", fault.ErrKeyNotFound), fault.ExitNotFound},
		{ErrIO, fault.ExitIO},
		{fmt.Errorf("height: 3: header: %w", ErrLayout), fault.ExitLayout},
		{&fault.OutputError{Name: "3.json", Err: errors.New("disk full")}, fault.ExitOutput},
	}

	for i, s := range statusList {
		if actual := fault.ExitStatus(s.err); actual != s.status {
			t.Errorf("%d: exit status: %d  expected: %d for err = %v", i, actual, s.status, s.err)
		}
	}
}

func TestLayoutErrorMessage(t *testing.T) {
	err := fault.NewLayoutError(12, "total size: %d  actual: %d", 40, 36)
	expected := "layout: total size: 40  actual: 36 at offset: 12"
	if err.Error() != expected {
		t.Errorf("message: %q  expected: %q", err.Error(), expected)
	}
}
