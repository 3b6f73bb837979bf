// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package wizard defines the installation steps and the transitions between
them.

A request names a step (the step query parameter) and a verb derived from
its HTTP method. The transition table maps every (step, verb) pair to an
action and, for submits, the step to move to when the action succeeds:

	step           view                submit
	requirements   check_requirements  check_requirements -> database
	database       render              test_connection    -> install
	install        render              install            -> complete
	complete       render              render

NewMachine rejects a table with a missing pair, an unknown action or an
unknown target, so an incomplete workflow fails at startup instead of at
request time.
*/
package wizard
