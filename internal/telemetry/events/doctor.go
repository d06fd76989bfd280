// Copyright (c) Kilnworks. All rights reserved.
// Licensed under the MIT License.

package events

import (
	"reflect"

	"github.com/kilnworks/kiln/internal/doctor"
)

// DoctorResultEvent reports the outcome of one doctor validator.
//
// A grouping validator produces no event of its own: Send fans out to one
// fresh event per sub-validator instead. The recursion handles nested groups
// transparently, reporting exactly one event per leaf result.
type DoctorResultEvent struct {
	UsageEvent

	validator doctor.Validator
	result    doctor.Result
}

func NewDoctorResultEvent(sender Sender, validator doctor.Validator, result doctor.Result) *DoctorResultEvent {
	return &DoctorResultEvent{
		UsageEvent: UsageEvent{
			Category:  CategoryDoctorResult,
			Parameter: validatorName(validator),
			Label:     string(result.Status),
			sender:    sender,
		},
		validator: validator,
		result:    result,
	}
}

func (e *DoctorResultEvent) Send() {
	group, ok := e.validator.(doctor.Grouping)
	if !ok {
		e.UsageEvent.Send()
		return
	}

	subValidators := group.SubValidators()
	subResults := group.SubResults()
	for i, v := range subValidators {
		if i >= len(subResults) {
			// Results are index-aligned with validators; a short result list
			// means the group was never validated.
			break
		}
		NewDoctorResultEvent(e.sender, v, subResults[i]).Send()
	}
}

// validatorName derives the event parameter from the validator's concrete
// type name, matching how validators are identified in doctor output.
func validatorName(v doctor.Validator) string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}
