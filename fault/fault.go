// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
	"fmt"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ProcessError("already initialised")
	ErrInvalidColumn        = InvalidError("invalid column")
	ErrInvalidConfiguration = InvalidError("configuration must return a table")
	ErrInvalidCount         = InvalidError("invalid count")
	ErrInvalidEngine        = InvalidError("invalid storage engine")
	ErrInvalidHashLength    = InvalidError("invalid hash length")
	ErrInvalidHeightRange   = InvalidError("invalid height range")
	ErrInvalidSchema        = InvalidError("invalid schema")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrKeyNotFound          = NotFoundError("key not found")
	ErrMissingRecord        = NotFoundError("record is empty")
	ErrNoPartitions         = NotFoundError("no partitions found")
	ErrNoSchema             = InvalidError("no schema for partition")
	ErrNotInitialised       = ProcessError("not initialised")
	ErrPartitionNotOpen     = NotFoundError("partition is not open")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// OpenError - the store or one of its partitions could not be opened
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open: %q failed with error: %s", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// IOError - a read failed for a reason other than a missing key
type IOError struct {
	Partition string
	Key       []byte
	Err       error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("read partition: %s  key: %x  failed with error: %s", e.Partition, e.Key, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// LayoutError - a binary buffer does not match its declared layout
//
// Offset is the byte position in the buffer being verified where the
// violation was detected
type LayoutError struct {
	Reason string
	Offset int
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("layout: %s at offset: %d", e.Reason, e.Offset)
}

// NewLayoutError - create a layout error with a formatted reason
func NewLayoutError(offset int, format string, arguments ...interface{}) error {
	return &LayoutError{
		Reason: fmt.Sprintf(format, arguments...),
		Offset: offset,
	}
}

// determine the class of an error
func IsErrInvalid(e error) bool  { var t InvalidError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool  { var t ProcessError; return errors.As(e, &t) }
func IsErrOpen(e error) bool     { var t *OpenError; return errors.As(e, &t) }
func IsErrIO(e error) bool       { var t *IOError; return errors.As(e, &t) }
func IsErrLayout(e error) bool   { var t *LayoutError; return errors.As(e, &t) }
func IsErrOutput(e error) bool   { var t *OutputError; return errors.As(e, &t) }
