// Copyright (c) Kilnworks. All rights reserved.
// Licensed under the MIT License.

package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilnworks/kiln/internal/doctor"
)

type stubValidator struct {
	title  string
	result doctor.Result
}

func (v *stubValidator) Title() string {
	return v.title
}

func (v *stubValidator) Validate(context.Context) doctor.Result {
	return v.result
}

func TestDoctorResultEventLeaf(t *testing.T) {
	sender := &recordingSender{}
	v := &stubValidator{title: "Git", result: doctor.Result{Status: doctor.StatusMissing}}

	NewDoctorResultEvent(sender, v, v.result).Send()

	require.Len(t, sender.sent, 1)
	got := sender.sent[0]
	assert.Equal(t, CategoryDoctorResult, got.category)
	assert.Equal(t, "stubValidator", got.parameter)
	assert.Equal(t, "missing", got.opts.Label)
}

func TestDoctorResultEventGroupFansOut(t *testing.T) {
	sender := &recordingSender{}

	group := doctor.NewGroup("Host tools",
		&stubValidator{title: "A", result: doctor.Result{Status: doctor.StatusPassed}},
		&stubValidator{title: "B", result: doctor.Result{Status: doctor.StatusPartial}},
		&stubValidator{title: "C", result: doctor.Result{Status: doctor.StatusCrash}},
	)
	result := group.Validate(context.Background())

	NewDoctorResultEvent(sender, group, result).Send()

	// One event per leaf, none for the group container.
	require.Len(t, sender.sent, 3)
	assert.Equal(t, "passed", sender.sent[0].opts.Label)
	assert.Equal(t, "partial", sender.sent[1].opts.Label)
	assert.Equal(t, "crash", sender.sent[2].opts.Label)
	for _, got := range sender.sent {
		assert.Equal(t, CategoryDoctorResult, got.category)
		assert.Equal(t, "stubValidator", got.parameter)
	}
}

func TestDoctorResultEventNestedGroup(t *testing.T) {
	sender := &recordingSender{}

	inner := doctor.NewGroup("Inner",
		&stubValidator{title: "A", result: doctor.Result{Status: doctor.StatusPassed}},
		&stubValidator{title: "B", result: doctor.Result{Status: doctor.StatusMissing}},
	)
	outer := doctor.NewGroup("Outer",
		inner,
		&stubValidator{title: "C", result: doctor.Result{Status: doctor.StatusPassed}},
	)
	result := outer.Validate(context.Background())

	NewDoctorResultEvent(sender, outer, result).Send()

	// Recursion reports leaves only: two from the inner group plus one direct.
	require.Len(t, sender.sent, 3)
	labels := []string{}
	for _, got := range sender.sent {
		labels = append(labels, got.opts.Label)
	}
	assert.Equal(t, []string{"passed", "missing", "passed"}, labels)
}

func TestDoctorResultEventUnvalidatedGroup(t *testing.T) {
	sender := &recordingSender{}
	group := doctor.NewGroup("Host tools",
		&stubValidator{title: "A", result: doctor.Result{Status: doctor.StatusPassed}},
	)

	// Validate never ran, so there are no sub-results to report.
	NewDoctorResultEvent(sender, group, doctor.Result{}).Send()

	assert.Empty(t, sender.sent)
}
