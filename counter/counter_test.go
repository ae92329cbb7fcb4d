// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"testing"

	"github.com/bitmark-inc/avltree/counter"
)

// test incrementing/decrementing a counter
func TestCounter(t *testing.T) {

	var c1 counter.Counter

	if !c1.IsZero() {
		t.Errorf("counter is not zero at start: %d", c1.Int64())
	}

	c1.Increment()
	c1.Increment()
	c1.Increment()
	c1.Increment()
	c1.Increment()

	if 5 != c1.Int64() {
		t.Errorf("counter is not 5 after incrementing: %d", c1.Int64())
	}

	c1.Decrement()

	if 4 != c1.Int64() {
		t.Errorf("counter is not 4 after decrementing: %d", c1.Int64())
	}

	c1.Decrement()
	c1.Decrement()
	c1.Decrement()
	c1.Decrement()

	if !c1.IsZero() {
		t.Errorf("counter did not return to zero: %d", c1.Int64())
	}

	// goes negative rather than wrapping
	if -1 != c1.Decrement() {
		t.Errorf("counter did not go negative: %d", c1.Int64())
	}
}

func TestCounterSet(t *testing.T) {
	var c1 counter.Counter

	c1.Set(42)
	if 43 != c1.Increment() {
		t.Errorf("counter is not 43 after set and increment: %d", c1.Int64())
	}

	c1.Set(0)
	if !c1.IsZero() {
		t.Errorf("counter is not zero after reset: %d", c1.Int64())
	}
}
