// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised      = ExistsError("already initialised")
	ErrConfigurationNotATable  = ProcessError("configuration did not return a table")
	ErrInvalidLoggerChannel    = InvalidError("invalid logger channel")
	ErrInvalidOperation        = InvalidError("invalid operation")
	ErrInvalidOutputFormat     = InvalidError("invalid output format")
	ErrInvalidStructPointer    = InvalidError("invalid struct pointer")
	ErrInvalidValue            = InvalidError("invalid value")
	ErrMissingValue            = InvalidError("missing value")
	ErrNotFoundConfigFile      = NotFoundError("config file is not found")
	ErrSnapshotDuplicateID     = InvalidError("snapshot contains a duplicate node id")
	ErrSnapshotNotOrdered      = InvalidError("snapshot values are not in search tree order")
	ErrSnapshotUnbalanced      = InvalidError("snapshot tree is not balanced")
	ErrSnapshotZeroID          = InvalidError("snapshot contains a zero node id")
	ErrWatchedFileDoesNotExist = NotFoundError("watched file does not exist")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
