// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wizard

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

type Step string

const (
	Requirements Step = "requirements"
	Database     Step = "database"
	Install      Step = "install"
	Complete     Step = "complete"
)

// Steps lists the wizard steps in order
var Steps = []Step{Requirements, Database, Install, Complete}

var stepTitles = map[Step]string{
	Requirements: "System Requirements",
	Database:     "Database Configuration",
	Install:      "Installation",
	Complete:     "Complete",
}

type Verb string

const (
	View   Verb = "view"
	Submit Verb = "submit"
)

var Verbs = []Verb{View, Submit}

type Action string

const (
	ActionRender            Action = "render"
	ActionCheckRequirements Action = "check_requirements"
	ActionTestConnection    Action = "test_connection"
	ActionInstall           Action = "install"
)

var knownActions = map[Action]bool{
	ActionRender:            true,
	ActionCheckRequirements: true,
	ActionTestConnection:    true,
	ActionInstall:           true,
}

var (
	ErrUnknownStep   = errors.New("unknown step")
	ErrUnknownVerb   = errors.New("unsupported method")
	ErrIncompleteMap = errors.New("transition table incomplete")
	ErrInvalidTarget = errors.New("transition target invalid")
)

// ParseStep maps the step query value to a Step; empty means the first step
func ParseStep(s string) (Step, error) {
	if s == "" {
		return Requirements, nil
	}
	step := Step(strings.ToLower(s))
	if _, ok := stepTitles[step]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStep, s)
	}
	return step, nil
}

// VerbFor maps an HTTP method to a Verb
func VerbFor(method string) (Verb, error) {
	switch method {
	case http.MethodGet, http.MethodHead:
		return View, nil
	case http.MethodPost:
		return Submit, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownVerb, method)
}

func (s Step) Title() string {
	return stepTitles[s]
}

// Number is the 1-based position of the step
func (s Step) Number() int {
	for i, step := range Steps {
		if step == s {
			return i + 1
		}
	}
	return 0
}

// Key identifies one cell of the transition table
type Key struct {
	Step Step
	Verb Verb
}

// Transition is what happens for one (step, verb) pair. Next is the step
// to move to when the action succeeds; empty means stay and render.
type Transition struct {
	Action Action
	Next   Step
}

type Table map[Key]Transition

// DefaultTable is the installation workflow:
// requirements -> database -> install -> complete.
func DefaultTable() Table {
	return Table{
		{Requirements, View}:   {Action: ActionCheckRequirements},
		{Requirements, Submit}: {Action: ActionCheckRequirements, Next: Database},
		{Database, View}:       {Action: ActionRender},
		{Database, Submit}:     {Action: ActionTestConnection, Next: Install},
		{Install, View}:        {Action: ActionRender},
		{Install, Submit}:      {Action: ActionInstall, Next: Complete},
		{Complete, View}:       {Action: ActionRender},
		{Complete, Submit}:     {Action: ActionRender},
	}
}

// Machine resolves requests against a validated transition table
type Machine struct {
	table Table
}

// NewMachine checks that table covers every (step, verb) pair with a known
// action and a valid target.
func NewMachine(table Table) (*Machine, error) {
	for _, step := range Steps {
		for _, verb := range Verbs {
			t, ok := table[Key{step, verb}]
			if !ok {
				return nil, fmt.Errorf("%w: no transition for %s/%s", ErrIncompleteMap, step, verb)
			}
			if !knownActions[t.Action] {
				return nil, fmt.Errorf("%w: unknown action %q for %s/%s", ErrInvalidTarget, t.Action, step, verb)
			}
			if t.Next != "" && t.Next.Number() == 0 {
				return nil, fmt.Errorf("%w: unknown step %q for %s/%s", ErrInvalidTarget, t.Next, step, verb)
			}
		}
	}
	for key := range table {
		if key.Step.Number() == 0 {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStep, key.Step)
		}
	}

	cp := make(Table, len(table))
	for k, v := range table {
		cp[k] = v
	}
	return &Machine{table: cp}, nil
}

// MustMachine is NewMachine for tables known at compile time
func MustMachine(table Table) *Machine {
	m, err := NewMachine(table)
	if err != nil {
		panic(err)
	}
	return m
}

// Lookup returns the transition for a validated step and verb
func (m *Machine) Lookup(step Step, verb Verb) Transition {
	return m.table[Key{step, verb}]
}

// Resolve parses the raw step and method of a request
func (m *Machine) Resolve(rawStep, method string) (Step, Transition, error) {
	step, err := ParseStep(rawStep)
	if err != nil {
		return "", Transition{}, err
	}
	verb, err := VerbFor(method)
	if err != nil {
		return "", Transition{}, err
	}
	// HEAD never runs a step's action
	if method == http.MethodHead {
		return step, Transition{Action: ActionRender}, nil
	}
	return step, m.Lookup(step, verb), nil
}

// Gate returns the step a request must be redirected to, if any. Once
// installed, anything but an exact request for complete is redirected,
// including steps and methods the table does not know.
func Gate(installed bool, rawStep string) (Step, bool) {
	if installed && rawStep != string(Complete) {
		return Complete, true
	}
	return "", false
}
