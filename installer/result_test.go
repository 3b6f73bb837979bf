// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package installer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportAccumulatesInOrder(t *testing.T) {
	var rep Report

	ok := rep.Add(Result{OK: true, Success: []string{"a", "b"}})
	assert.True(t, ok)
	assert.True(t, rep.OK())

	ok = rep.Add(Result{OK: false, Success: []string{"c"}, Errors: []string{"x"}})
	assert.False(t, ok)
	assert.False(t, rep.OK())

	assert.Equal(t, []string{"a", "b", "c"}, rep.Successes())
	assert.Equal(t, []string{"x"}, rep.Errors())
}

func TestResultDone(t *testing.T) {
	var r Result
	r.pass("Directory %s writable", "uploads")
	assert.True(t, r.done().OK)

	r.fail("Required file missing: %s", "app.py")
	done := r.done()
	assert.False(t, done.OK)
	assert.Equal(t, []string{"Directory uploads writable"}, done.Success)
	assert.Equal(t, []string{"Required file missing: app.py"}, done.Errors)
}
