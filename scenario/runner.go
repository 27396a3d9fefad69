// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scenario

import (
	"bytes"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltrace/avl"
	"github.com/bitmark-inc/avltrace/fault"
)

// Result - outcome of one operation
type Result struct {
	Operation Operation         `json:"operation"`
	Trace     avl.Trace         `json:"trace,omitempty"`
	Node      *avl.NodeRef      `json:"node,omitempty"`
	Values    []int             `json:"values,omitempty"`
	Snapshot  *avl.SnapshotNode `json:"snapshot,omitempty"`
	Text      string            `json:"text,omitempty"`
	Count     int               `json:"count"`
	Balanced  bool              `json:"balanced"`
}

// Runner - applies operations to a single tree
//
// like the tree itself a runner must only be used from one goroutine
type Runner struct {
	log       *logger.L
	tree      *avl.Tree
	printTree bool
}

// NewRunner - create a runner for a tree, a nil tree starts empty
func NewRunner(tree *avl.Tree, log *logger.L) (*Runner, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if nil == tree {
		tree = avl.New()
	}
	return &Runner{
		log:  log,
		tree: tree,
	}, nil
}

// SetPrintTree - include a drawing of the tree after every mutation
func (r *Runner) SetPrintTree(enabled bool) {
	r.printTree = enabled
}

// Tree - the tree being operated on
func (r *Runner) Tree() *avl.Tree {
	return r.tree
}

// Run - apply each operation in order, stopping at the first error
func (r *Runner) Run(ops []Operation) ([]Result, error) {
	if err := Validate(ops); nil != err {
		r.log.Errorf("validate: %d operations  error: %s", len(ops), err)
		return nil, err
	}

	results := make([]Result, 0, len(ops))
	for _, op := range ops {
		result, err := r.Step(op)
		if nil != err {
			return results, err
		}
		results = append(results, result)
	}
	r.log.Infof("completed: %d operations  count: %d", len(ops), r.tree.Count())
	return results, nil
}

// Step - apply a single operation
func (r *Runner) Step(op Operation) (Result, error) {
	result := Result{
		Operation: op,
	}

	switch op.Op {
	case OpInsert:
		result.Trace = r.tree.Insert(op.Value)
		_, created := result.Trace.Created()
		r.log.Infof("insert: %d  created: %t  rotations: %d", op.Value, created, len(result.Trace.Rotations()))
		r.mutated(&result)

	case OpDelete:
		result.Trace = r.tree.Delete(op.Value)
		_, deleted := result.Trace.Deleted()
		r.log.Infof("delete: %d  deleted: %t  rotations: %d", op.Value, deleted, len(result.Trace.Rotations()))
		r.mutated(&result)

	case OpFind:
		if n := r.tree.Find(op.Value); nil != n {
			result.Node = &avl.NodeRef{ID: n.ID(), Value: n.Value()}
		}
		r.log.Infof("find: %d  found: %t", op.Value, nil != result.Node)

	case OpInOrder:
		result.Values = r.tree.InOrder()
		r.log.Debugf("inorder: %v", result.Values)

	case OpPrint:
		result.Text = r.draw()

	case OpSnapshot:
		result.Snapshot = r.tree.Snapshot()
		r.log.Debugf("snapshot: %d nodes", r.tree.Count())

	default:
		r.log.Errorf("unknown operation: %q", op.Op)
		return result, fault.ErrInvalidOperation
	}

	result.Count = r.tree.Count()
	result.Balanced = r.tree.IsBalanced()
	return result, nil
}

// record the trace and check the tree after an insert or delete
func (r *Runner) mutated(result *Result) {
	for i, e := range result.Trace {
		r.log.Tracef("%s[%d]: %s", result.Operation.Op, i, e)
	}
	if !r.tree.IsBalanced() || !r.tree.CheckHeights() {
		r.log.Criticalf("%s: tree invariant broken", result.Operation)
	}
	if r.printTree {
		result.Text = r.draw()
	}
}

func (r *Runner) draw() string {
	var buffer bytes.Buffer
	depth := r.tree.Print(&buffer)
	r.log.Debugf("print: depth: %d", depth)
	return buffer.String()
}
