// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bitmark-inc/avltrace/avl"
	"github.com/bitmark-inc/avltrace/fault"
	"github.com/bitmark-inc/avltrace/scenario"
)

// colours
const (
	opColour     = "\033[1;36m"
	rotateColour = "\033[1;31m"
	changeColour = "\033[1;33m"
	endColour    = "\033[0m"
)

// presentation options
type presenter struct {
	w       io.Writer
	format  string
	verbose bool // also show operations that only set up the tree
	colour  bool
}

// output all results, the first skip results are initial values and
// are only shown when verbose
func (p *presenter) show(results []scenario.Result, skip int) error {
	if skip > len(results) || p.verbose {
		skip = 0
	}
	results = results[skip:]

	if outputJSON == p.format {
		return p.printJSON(results)
	}
	for _, result := range results {
		p.printText(result)
	}
	return nil
}

func (p *presenter) printJSON(results []scenario.Result) error {
	b, err := json.MarshalIndent(results, "", "  ")
	if nil != err {
		return err
	}
	_, err = fmt.Fprintf(p.w, "%s\n", b)
	return err
}

func (p *presenter) printText(result scenario.Result) {
	co, cr, cc, ce := "", "", "", ""
	if p.colour {
		co, cr, cc, ce = opColour, rotateColour, changeColour, endColour
	}

	fmt.Fprintf(p.w, "%s%s%s\n", co, result.Operation, ce)

	switch result.Operation.Op {
	case scenario.OpInsert, scenario.OpDelete:
		if 0 == len(result.Trace) {
			fmt.Fprintf(p.w, "  (empty tree)\n")
		}
		for _, e := range result.Trace {
			s := e.String()
			switch e.(type) {
			case avl.VisitEvent:
			case avl.RotateEvent:
				s = cr + s + ce
			default:
				s = cc + s + ce
			}
			fmt.Fprintf(p.w, "  %s\n", s)
		}
		fmt.Fprintf(p.w, "  count: %d  balanced: %t\n", result.Count, result.Balanced)

	case scenario.OpFind:
		if nil == result.Node {
			fmt.Fprintf(p.w, "  not found\n")
		} else {
			fmt.Fprintf(p.w, "  found: %s\n", result.Node)
		}

	case scenario.OpInOrder:
		fmt.Fprintf(p.w, "  %v\n", result.Values)

	case scenario.OpSnapshot:
		b, err := json.MarshalIndent(result.Snapshot, "  ", "  ")
		fault.PanicIfError("snapshot marshal", err)
		fmt.Fprintf(p.w, "  %s\n", b)
	}

	if "" != result.Text {
		fmt.Fprint(p.w, result.Text)
	}
}
