// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"bytes"
	"math/rand"
	"sort"
	"testing"

	"github.com/bitmark-inc/avltrace/avl"
)

func TestListShort(t *testing.T) {
	addList := []int{
		4201, 1254, 8608, 1639, 8950,
		6740,
	}
	doList(t, addList)
	doTraverse(t, addList)
}

// to make sure that lots of duplicates do not increment the node
// count incorrectly
func TestListDuplicates(t *testing.T) {
	addList := []int{
		1720, 506, 8382, 6774, 1247,
		1250, 1264, 1258, 1255, 2247,
		2004, 2194, 2644, 2169, 8133,
		2136, 9651, 4079, 1042, 3579,
		3630, 1427, 5843, 9549, 5433,
		1274, 9034, 4724, 6179, 5072,
		9272, 4030, 4205, 3363, 8582,
		1720, 506, 8382, 6774, 1042,

		1042, 1042, 1042, 1042, 1042,
		1042, 1042, 1042, 1042, 1042,
		1042, 1042, 1042, 1042, 1042,
	}
	doList(t, addList)
	doTraverse(t, addList)
}

func TestListLong(t *testing.T) {
	addList := []int{
		8133, 2136, 9651, 4079, 1042,
		3579, 3630, 1427, 5843, 9549,
		5433, 1274, 9034, 4724, 6179,
		5072, 9272, 4030, 4205, 3363,
		8582, 1720, 506, 8382, 6774,
		3088, 2329, 9039, 6703, 1027,
		7297, 6063, 4156, 1005, 982,
		3065, 2553, 795, 8426, 2377,
		877, 9085, 5918, 2581, 7797,
		3028, 5880, 3061, 5212, 6539,
		1320, 3581, 3334, 4348, 2934,
		8342, 8814, 8736, 1353, 3082,
		9620, 56, 5063, 1245, 7066,
		7435, 2999, 7803, 1303, 1697,
		17, 4314, 9926, 7587, 2531,
		8123, 5693, 7495, 9975, 5465,
		4342, 7958, 7138, 9382, 672,
		5402, 204, 2397, 2712, 938,
		9610, 3611, 2140, 4289, 9271,
		4786, 4145, 1066, 4366, 6716,
	}

	doList(t, addList)
	doTraverse(t, addList)
}

// ascending and descending runs force long chains of single rotations
func TestListSequential(t *testing.T) {
	up := make([]int, 200)
	down := make([]int, 200)
	for i := range up {
		up[i] = i
		down[i] = len(down) - i
	}
	doList(t, up)
	doTraverse(t, up)
	doList(t, down)
	doTraverse(t, down)
}

// verify all the structural properties of a tree
func checkTree(t *testing.T, tree *avl.Tree, title string) {
	t.Helper()
	if !tree.IsBalanced() {
		tree.Print(testWriter{t})
		t.Fatalf("%s: unbalanced tree", title)
	}
	if !tree.CheckHeights() {
		tree.Print(testWriter{t})
		t.Fatalf("%s: inconsistent heights", title)
	}
	if !tree.CheckOrder() {
		tree.Print(testWriter{t})
		t.Fatalf("%s: values out of order", title)
	}
	if !tree.CheckCount() {
		t.Fatalf("%s: count: %d does not match nodes", title, tree.Count())
	}
}

// delete every prefix of the list, then the remainder
func doList(t *testing.T, addList []int) {

	for i := 0; i < len(addList)+1; i += 1 {

		alreadyDeleted := make(map[int]struct{})

		tree := avl.New()
		for _, value := range addList {
			tree.Insert(value)
		}
		checkTree(t, tree, "add")

	delete_items:
		for _, value := range addList[:i] {
			if _, ok := alreadyDeleted[value]; ok {
				continue delete_items
			}
			alreadyDeleted[value] = struct{}{}
			trace := tree.Delete(value)
			if d, ok := trace.Deleted(); !ok || d.Value != value {
				t.Fatalf("delete: %d trace: %s", value, trace)
			}
			if nil != tree.Find(value) {
				t.Fatalf("delete: %d still in tree", value)
			}
		}
		checkTree(t, tree, "delete")

	delete_remainder:
		for _, value := range addList[i:] {
			if _, ok := alreadyDeleted[value]; ok {
				continue delete_remainder
			}
			alreadyDeleted[value] = struct{}{}
			tree.Delete(value)
		}
		if !tree.IsEmpty() {
			tree.Print(testWriter{t})
			t.Fatal("remainder: remaining nodes")
		}
		if 0 != tree.Count() {
			t.Fatalf("remaining count not zero: %d", tree.Count())
		}
	}
}

// traverse the tree and compare to the sorted unique values
func doTraverse(t *testing.T, addList []int) {

	unique := make(map[int]struct{})
	tree := avl.New()
	for _, value := range addList {
		unique[value] = struct{}{}
		tree.Insert(value)
	}

	expected := make([]int, 0, len(unique))
	for value := range unique {
		expected = append(expected, value)
	}
	sort.Ints(expected)

	actual := tree.InOrder()
	if len(actual) != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", len(actual), len(expected))
	}
	for i := range expected {
		if actual[i] != expected[i] {
			t.Fatalf("[%d]: actual: %d  expected: %d", i, actual[i], expected[i])
		}
	}

	// restartable
	again := tree.InOrder()
	if len(again) != len(actual) {
		t.Fatalf("second traversal: %d items  expected: %d", len(again), len(actual))
	}

	if p := tree.First(); nil == p || p.Value() != expected[0] {
		t.Fatalf("first: %v  expected: %d", p, expected[0])
	}
	if p := tree.Last(); nil == p || p.Value() != expected[len(expected)-1] {
		t.Fatalf("last: %v  expected: %d", p, expected[len(expected)-1])
	}

	if len(expected) != tree.Count() {
		t.Fatalf("tree count: actual: %d  expected: %d", tree.Count(), len(expected))
	}

	for _, value := range expected {
		tree.Delete(value)
	}

	if !tree.IsEmpty() {
		tree.Print(testWriter{t})
		t.Fatalf("remaining nodes")
	}
}

func TestRandomTree(t *testing.T) {

	r := rand.New(rand.NewSource(1))

	randomTree(t, r, 2200, 2000)
	randomTree(t, r, 3400, 2760)
	randomTree(t, r, 5467, 1234)

	for i := 0; i < 5; i += 1 {
		randomTree(t, r, 2100, 2000)
	}
}

func randomTree(t *testing.T, r *rand.Rand, total int, toDelete int) {

	if toDelete > total {
		t.Fatalf("failed: total: %d  < deletions: %d", total, toDelete)
	}

	tree := avl.New()
	present := make(map[int]struct{})
	d := make([]int, toDelete)

	for i := 0; i < total; i += 1 {
		value := r.Intn(10000)
		if i < len(d) {
			d[i] = value
		}
		_, exists := present[value]
		trace := tree.Insert(value)
		_, created := trace.Created()
		if created == exists {
			t.Fatalf("insert: %d  exists: %t  trace: %s", value, exists, trace)
		}
		present[value] = struct{}{}
	}
	checkTree(t, tree, "random add")

	for _, value := range d {
		_, exists := present[value]
		trace := tree.Delete(value)
		_, deleted := trace.Deleted()
		if deleted != exists {
			t.Fatalf("delete: %d  exists: %t  trace: %s", value, exists, trace)
		}
		delete(present, value)
	}
	checkTree(t, tree, "random delete")

	expected := make([]int, 0, len(present))
	for value := range present {
		expected = append(expected, value)
	}
	sort.Ints(expected)

	actual := tree.InOrder()
	if len(actual) != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", len(actual), len(expected))
	}
	for i := range expected {
		if actual[i] != expected[i] {
			t.Fatalf("[%d]: actual: %d  expected: %d", i, actual[i], expected[i])
		}
	}
}

func TestGetDepthInTree(t *testing.T) {
	tree := avl.New()
	for _, value := range []int{1, 2, 3, 4, 5, 6, 7} {
		tree.Insert(value)
	}

	if d, ok := tree.Depth(4); !ok || d != 0 {
		t.Fatalf("incorrect root depth: %d", d)
	}
	if d, ok := tree.Depth(2); !ok || d != 1 {
		t.Fatalf("incorrect node depth: %d", d)
	}
	if d, ok := tree.Depth(3); !ok || d != 2 {
		t.Fatalf("incorrect node depth: %d", d)
	}
	if _, ok := tree.Depth(8); ok {
		t.Fatal("depth of missing value")
	}
}

func TestNodesAtDepth(t *testing.T) {
	tree := avl.New()
	if n := tree.NodesAtDepth(0); 0 != len(n) {
		t.Fatalf("empty tree has nodes: %d", len(n))
	}

	for _, value := range []int{1, 2, 3, 4, 5, 6, 7} {
		tree.Insert(value)
	}

	if n := tree.NodesAtDepth(1); len(n) != 2 || n[0].Value() != 2 || n[1].Value() != 6 {
		t.Fatalf("incorrect children at depth 1: %v", n)
	}

	n := tree.NodesAtDepth(2)
	if len(n) != 4 {
		t.Fatalf("incorrect children number at depth 2: %d", len(n))
	}
	for i, value := range []int{1, 3, 5, 7} {
		if n[i].Value() != value {
			t.Fatalf("depth 2 [%d]: %d  expected: %d", i, n[i].Value(), value)
		}
	}
}

func TestPrint(t *testing.T) {
	tree := avl.New()
	var buffer bytes.Buffer
	if d := tree.Print(&buffer); 0 != d || 0 != buffer.Len() {
		t.Fatalf("empty tree printed depth: %d  output: %q", d, buffer.String())
	}

	for _, value := range []int{1, 2, 3, 4, 5, 6, 7, 8} {
		tree.Insert(value)
	}
	depth := tree.Print(&buffer)
	if depth != tree.Root().Height() {
		t.Fatalf("print depth: %d  root height: %d", depth, tree.Root().Height())
	}
	if lines := bytes.Count(buffer.Bytes(), []byte("\n")); lines != tree.Count() {
		t.Fatalf("printed lines: %d  expected: %d", lines, tree.Count())
	}
}

// route tree printing to the test log
type testWriter struct {
	t *testing.T
}

func (w testWriter) Write(b []byte) (int, error) {
	w.t.Log(string(bytes.TrimRight(b, "\n")))
	return len(b), nil
}
