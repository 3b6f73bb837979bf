// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package installer

import "fmt"

// Result is what every installer operation returns: the outcome plus the
// messages it produced, in order.
type Result struct {
	OK      bool
	Success []string
	Errors  []string
}

func (r *Result) pass(format string, args ...any) {
	r.Success = append(r.Success, fmt.Sprintf(format, args...))
}

func (r *Result) fail(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// done sets OK from the accumulated errors and returns the result
func (r Result) done() Result {
	r.OK = len(r.Errors) == 0
	return r
}

// merge appends other's messages to r without touching r.OK
func (r *Result) merge(other Result) {
	r.Success = append(r.Success, other.Success...)
	r.Errors = append(r.Errors, other.Errors...)
}

// Report accumulates the results of one request
type Report struct {
	success []string
	errors  []string
}

// Add appends a result's messages and returns its outcome
func (rep *Report) Add(r Result) bool {
	rep.success = append(rep.success, r.Success...)
	rep.errors = append(rep.errors, r.Errors...)
	return r.OK
}

// Fail records a failure that did not come from an installer operation
func (rep *Report) Fail(format string, args ...any) {
	rep.errors = append(rep.errors, fmt.Sprintf(format, args...))
}

// Successes returns the passed entries in order
func (rep *Report) Successes() []string {
	return rep.success
}

// Errors returns the failed entries in order
func (rep *Report) Errors() []string {
	return rep.errors
}

// OK reports whether nothing has failed so far
func (rep *Report) OK() bool {
	return len(rep.errors) == 0
}
