// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scenario

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bitmark-inc/avltrace/fault"
)

// operation names
const (
	OpInsert   = "insert"
	OpDelete   = "delete"
	OpFind     = "find"
	OpInOrder  = "inorder"
	OpPrint    = "print"
	OpSnapshot = "snapshot"
)

// Operation - one step of a scenario, Value is ignored by the
// operations that view the whole tree
type Operation struct {
	Op    string `gluamapper:"op" json:"op"`
	Value int    `gluamapper:"value" json:"value,omitempty"`
}

// String - operation as it would be written on the command line
func (op Operation) String() string {
	if takesValue(op.Op) {
		return fmt.Sprintf("%s %d", op.Op, op.Value)
	}
	return op.Op
}

func takesValue(op string) bool {
	switch op {
	case OpInsert, OpDelete, OpFind:
		return true
	default:
		return false
	}
}

func isOperation(op string) bool {
	switch op {
	case OpInsert, OpDelete, OpFind, OpInOrder, OpPrint, OpSnapshot:
		return true
	default:
		return false
	}
}

// Validate - check that every operation is known
func Validate(ops []Operation) error {
	for _, op := range ops {
		if !isOperation(op.Op) {
			return fault.ErrInvalidOperation
		}
	}
	return nil
}

// Inserts - an insert operation for each value
func Inserts(values []int) []Operation {
	ops := make([]Operation, len(values))
	for i, v := range values {
		ops[i] = Operation{Op: OpInsert, Value: v}
	}
	return ops
}

// ParseArguments - convert command line words to operations
//
// a value taking operation is followed by one or more integers:
//
//	insert 10 20 30 delete 20 find 10 print
func ParseArguments(arguments []string) ([]Operation, error) {
	ops := make([]Operation, 0, len(arguments))

	current := ""
	pending := false // current operation has not yet had a value
	for _, word := range arguments {
		w := strings.ToLower(strings.TrimSpace(word))
		if isOperation(w) {
			if pending {
				return nil, fault.ErrMissingValue
			}
			if takesValue(w) {
				current = w
				pending = true
			} else {
				current = ""
				ops = append(ops, Operation{Op: w})
			}
			continue
		}

		value, err := strconv.Atoi(w)
		if nil != err {
			return nil, fault.ErrInvalidValue
		}
		if "" == current {
			return nil, fault.ErrInvalidOperation
		}
		ops = append(ops, Operation{Op: current, Value: value})
		pending = false
	}
	if pending {
		return nil, fault.ErrMissingValue
	}
	return ops, nil
}
