// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wizard

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStep(t *testing.T) {
	tests := []struct {
		in      string
		want    Step
		wantErr bool
	}{
		{"", Requirements, false},
		{"requirements", Requirements, false},
		{"database", Database, false},
		{"INSTALL", Install, false},
		{"complete", Complete, false},
		{"admin", "", true},
		{"../etc", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStep(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownStep)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVerbFor(t *testing.T) {
	v, err := VerbFor(http.MethodGet)
	require.NoError(t, err)
	assert.Equal(t, View, v)

	v, err = VerbFor(http.MethodPost)
	require.NoError(t, err)
	assert.Equal(t, Submit, v)

	_, err = VerbFor(http.MethodDelete)
	assert.ErrorIs(t, err, ErrUnknownVerb)
}

func TestDefaultTableIsValid(t *testing.T) {
	m, err := NewMachine(DefaultTable())
	require.NoError(t, err)

	assert.Equal(t, Transition{Action: ActionTestConnection, Next: Install}, m.Lookup(Database, Submit))
	assert.Equal(t, Transition{Action: ActionInstall, Next: Complete}, m.Lookup(Install, Submit))
	assert.Equal(t, Transition{Action: ActionCheckRequirements}, m.Lookup(Requirements, View))
}

func TestDefaultTableIsLinear(t *testing.T) {
	m := MustMachine(DefaultTable())

	// Following submit targets walks every step once
	step := Requirements
	var path []Step
	for step != "" {
		path = append(path, step)
		step = m.Lookup(step, Submit).Next
	}
	assert.Equal(t, Steps, path)
}

func TestNewMachineRejectsIncompleteTable(t *testing.T) {
	table := DefaultTable()
	delete(table, Key{Install, Submit})

	_, err := NewMachine(table)
	assert.ErrorIs(t, err, ErrIncompleteMap)
}

func TestNewMachineRejectsBadTransitions(t *testing.T) {
	t.Run("unknown action", func(t *testing.T) {
		table := DefaultTable()
		table[Key{Database, Submit}] = Transition{Action: "drop_database"}
		_, err := NewMachine(table)
		assert.ErrorIs(t, err, ErrInvalidTarget)
	})

	t.Run("unknown target", func(t *testing.T) {
		table := DefaultTable()
		table[Key{Database, Submit}] = Transition{Action: ActionTestConnection, Next: "payments"}
		_, err := NewMachine(table)
		assert.ErrorIs(t, err, ErrInvalidTarget)
	})

	t.Run("unknown step key", func(t *testing.T) {
		table := DefaultTable()
		table[Key{"payments", View}] = Transition{Action: ActionRender}
		_, err := NewMachine(table)
		assert.ErrorIs(t, err, ErrUnknownStep)
	})
}

func TestMachineCopiesTable(t *testing.T) {
	table := DefaultTable()
	m := MustMachine(table)

	table[Key{Database, Submit}] = Transition{Action: ActionRender}
	assert.Equal(t, ActionTestConnection, m.Lookup(Database, Submit).Action)
}

func TestResolve(t *testing.T) {
	m := MustMachine(DefaultTable())

	step, tr, err := m.Resolve("database", http.MethodPost)
	require.NoError(t, err)
	assert.Equal(t, Database, step)
	assert.Equal(t, ActionTestConnection, tr.Action)

	_, _, err = m.Resolve("bogus", http.MethodGet)
	assert.ErrorIs(t, err, ErrUnknownStep)
}

func TestGate(t *testing.T) {
	for _, raw := range []string{"", "requirements", "database", "install", "jackpot", "COMPLETE"} {
		to, redirect := Gate(true, raw)
		assert.True(t, redirect, raw)
		assert.Equal(t, Complete, to)
	}

	_, redirect := Gate(true, string(Complete))
	assert.False(t, redirect)

	for _, raw := range []string{"", "requirements", "complete", "jackpot"} {
		_, redirect := Gate(false, raw)
		assert.False(t, redirect, raw)
	}
}

func TestResolveHeadOnlyRenders(t *testing.T) {
	m := MustMachine(DefaultTable())

	for _, step := range Steps {
		got, tr, err := m.Resolve(string(step), http.MethodHead)
		require.NoError(t, err)
		assert.Equal(t, step, got)
		assert.Equal(t, Transition{Action: ActionRender}, tr, step)
	}

	_, tr, err := m.Resolve("requirements", http.MethodGet)
	require.NoError(t, err)
	assert.Equal(t, ActionCheckRequirements, tr.Action)
}

func TestStepNumberAndTitle(t *testing.T) {
	assert.Equal(t, 1, Requirements.Number())
	assert.Equal(t, 4, Complete.Number())
	assert.Equal(t, 0, Step("bogus").Number())
	assert.Equal(t, "Database Configuration", Database.Title())
}
