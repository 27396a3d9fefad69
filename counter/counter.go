// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - monotonic counters safe for concurrent use
package counter

import (
	"sync/atomic"
)

// Counter - a 64 bit unsigned counter that only moves forward
type Counter uint64

// Increment - add 1 to a counter, returns new value
func (ic *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(ic), 1)
}

// Advance - raise the counter to at least n, returns the resulting value
//
// a counter already beyond n is left unchanged
func (ic *Counter) Advance(n uint64) uint64 {
	for {
		current := atomic.LoadUint64((*uint64)(ic))
		if current >= n {
			return current
		}
		if atomic.CompareAndSwapUint64((*uint64)(ic), current, n) {
			return n
		}
	}
}

// Uint64 - returns current value
func (ic *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(ic))
}

// IsZero - check if zero
func (ic *Counter) IsZero() bool {
	return atomic.LoadUint64((*uint64)(ic)) == 0
}
