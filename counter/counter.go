// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"sync/atomic"
)

// Counter - type to denote a counter that can be synchronously
// incremented or decremented, a signed 64 bit integer so that
// decrementing below zero gives a negative value
type Counter int64

// Increment - add 1 to a counter, returns new value
func (ic *Counter) Increment() int64 {
	return atomic.AddInt64((*int64)(ic), 1)
}

// Decrement - subtract 1 from a counter, returns new value
func (ic *Counter) Decrement() int64 {
	return atomic.AddInt64((*int64)(ic), -1)
}

// Int64 - returns current value
func (ic *Counter) Int64() int64 {
	return atomic.LoadInt64((*int64)(ic))
}

// Set - overwrite the current value
func (ic *Counter) Set(n int64) {
	atomic.StoreInt64((*int64)(ic), n)
}

// IsZero - check if zero
func (ic *Counter) IsZero() bool {
	return atomic.LoadInt64((*int64)(ic)) == 0
}
