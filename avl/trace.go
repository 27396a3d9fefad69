// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"encoding/json"
	"fmt"
	"strings"
)

// NodeRef - identity and value of a node at the time of an event
type NodeRef struct {
	ID    uint64 `json:"id"`
	Value int    `json:"value"`
}

// String - node as "value#id"
func (r NodeRef) String() string {
	return fmt.Sprintf("%d#%d", r.Value, r.ID)
}

// Rotation - the shape of the imbalance a rotation repaired
type Rotation int

// rotation kinds
const (
	LL Rotation = iota // single right rotation
	LR Rotation = iota // left rotate left child, then right rotate
	RR Rotation = iota // single left rotation
	RL Rotation = iota // right rotate right child, then left rotate
)

// String - rotation kind name
func (r Rotation) String() string {
	switch r {
	case LL:
		return "LL"
	case LR:
		return "LR"
	case RR:
		return "RR"
	case RL:
		return "RL"
	default:
		return fmt.Sprintf("Rotation(%d)", int(r))
	}
}

// Event - one step of a trace
//
// the concrete types are: VisitEvent, CreateEvent, DeleteEvent,
// ReplaceEvent and RotateEvent
type Event interface {
	fmt.Stringer
	isEvent()
}

// VisitEvent - a comparison reached this existing node
type VisitEvent struct {
	Node NodeRef
}

// CreateEvent - a new node was allocated by insert
type CreateEvent struct {
	Node NodeRef
}

// DeleteEvent - the node holding the target value was located for removal
type DeleteEvent struct {
	Node NodeRef
}

// ReplaceEvent - a node with two children was replaced by a new node
// carrying its in-order predecessor's value
type ReplaceEvent struct {
	Old  NodeRef
	With NodeRef
}

// RotateEvent - a rotation was applied, Pivot is the node that was
// unbalanced before the rotation
type RotateEvent struct {
	Kind  Rotation
	Pivot NodeRef
}

func (VisitEvent) isEvent()   {}
func (CreateEvent) isEvent()  {}
func (DeleteEvent) isEvent()  {}
func (ReplaceEvent) isEvent() {}
func (RotateEvent) isEvent()  {}

func (e VisitEvent) String() string   { return "visit " + e.Node.String() }
func (e CreateEvent) String() string  { return "create " + e.Node.String() }
func (e DeleteEvent) String() string  { return "delete " + e.Node.String() }
func (e ReplaceEvent) String() string { return "replace " + e.Old.String() + " → " + e.With.String() }
func (e RotateEvent) String() string  { return "rotate " + e.Kind.String() + " at " + e.Pivot.String() }

// Trace - ordered list of the events of a single insert or delete
type Trace []Event

// append an event, used only while the operation is in progress
func (t *Trace) add(e Event) {
	*t = append(*t, e)
}

// Rotations - all rotate events in order
func (t Trace) Rotations() []RotateEvent {
	r := []RotateEvent{}
	for _, e := range t {
		if rotate, ok := e.(RotateEvent); ok {
			r = append(r, rotate)
		}
	}
	return r
}

// Replacements - all replace events in order
func (t Trace) Replacements() []ReplaceEvent {
	r := []ReplaceEvent{}
	for _, e := range t {
		if replace, ok := e.(ReplaceEvent); ok {
			r = append(r, replace)
		}
	}
	return r
}

// Visits - all visit events in order
func (t Trace) Visits() []NodeRef {
	r := []NodeRef{}
	for _, e := range t {
		if visit, ok := e.(VisitEvent); ok {
			r = append(r, visit.Node)
		}
	}
	return r
}

// Created - the node created by an insert, if any
func (t Trace) Created() (NodeRef, bool) {
	for _, e := range t {
		if create, ok := e.(CreateEvent); ok {
			return create.Node, true
		}
	}
	return NodeRef{}, false
}

// Deleted - the first node located for removal by a delete, if any
//
// a delete of a node with two children also removes the predecessor
// node, which appears later in the trace
func (t Trace) Deleted() (NodeRef, bool) {
	for _, e := range t {
		if del, ok := e.(DeleteEvent); ok {
			return del.Node, true
		}
	}
	return NodeRef{}, false
}

// String - one event per line
func (t Trace) String() string {
	s := make([]string, len(t))
	for i, e := range t {
		s[i] = e.String()
	}
	return strings.Join(s, "\n")
}

// JSON form of a single event
type jsonEvent struct {
	Event string `json:"event"`
	ID    uint64 `json:"id,omitempty"`
	Value *int   `json:"value,omitempty"`

	Kind  string   `json:"kind,omitempty"`
	Old   *NodeRef `json:"old,omitempty"`
	With  *NodeRef `json:"with,omitempty"`
	Pivot *NodeRef `json:"pivot,omitempty"`
}

// MarshalJSON - tagged list of events
func (t Trace) MarshalJSON() ([]byte, error) {
	list := make([]jsonEvent, 0, len(t))
	for _, e := range t {
		var j jsonEvent
		switch ev := e.(type) {
		case VisitEvent:
			j = simpleEvent("visit", ev.Node)
		case CreateEvent:
			j = simpleEvent("create", ev.Node)
		case DeleteEvent:
			j = simpleEvent("delete", ev.Node)
		case ReplaceEvent:
			j = jsonEvent{
				Event: "replace",
				Old:   &ev.Old,
				With:  &ev.With,
			}
		case RotateEvent:
			j = jsonEvent{
				Event: "rotate",
				Kind:  ev.Kind.String(),
				Pivot: &ev.Pivot,
			}
		default:
			return nil, fmt.Errorf("unknown trace event: %T", e)
		}
		list = append(list, j)
	}
	return json.Marshal(list)
}

func simpleEvent(name string, r NodeRef) jsonEvent {
	v := r.Value
	return jsonEvent{
		Event: name,
		ID:    r.ID,
		Value: &v,
	}
}
