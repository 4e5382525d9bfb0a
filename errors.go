// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/msgdoc

package msgdoc

import "errors"

var (
	// ErrReadMessageFile is returned when message description file loading fails.
	ErrReadMessageFile = errors.New("read message file")
	// ErrDecodeMessage is returned when message description JSON decoding fails.
	ErrDecodeMessage = errors.New("decode message")
	// ErrValidateMessage is returned when a message description does not match the message schema.
	ErrValidateMessage = errors.New("validate message")
	// ErrCompileSchema is returned when the embedded message schema cannot be compiled.
	ErrCompileSchema = errors.New("compile message schema")
	// ErrTableNoColumns is returned when a table is rendered without header columns.
	ErrTableNoColumns = errors.New("table has no columns")
	// ErrTableRowArity is returned when a table row width differs from header width.
	ErrTableRowArity = errors.New("table row arity mismatch")
	// ErrReadInputDir is returned when the message input directory cannot be listed.
	ErrReadInputDir = errors.New("read input directory")
	// ErrReservedPagePath is returned when a message page would overwrite a generated index file.
	ErrReservedPagePath = errors.New("reserved page path")
	// ErrWriteOutput is returned when a generated page or index cannot be written.
	ErrWriteOutput = errors.New("write output")
)
