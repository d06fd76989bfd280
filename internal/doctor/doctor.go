// Copyright (c) Kilnworks. All rights reserved.
// Licensed under the MIT License.

// Package doctor holds the environment validators run by `kiln doctor` and
// the result model consumed by usage reporting.
package doctor

import (
	"context"
	"fmt"
)

// Status classifies a validation outcome.
type Status string

const (
	StatusPassed       Status = "passed"
	StatusPartial      Status = "partial"
	StatusNotAvailable Status = "notAvailable"
	StatusMissing      Status = "missing"
	StatusCrash        Status = "crash"
)

// Result is the outcome of running a single validator.
type Result struct {
	Status  Status
	Message string
}

// Validator checks one aspect of the host environment.
type Validator interface {
	Title() string
	Validate(ctx context.Context) Result
}

// Grouping is implemented by validators that aggregate sub-validators rather
// than producing a result of their own. SubResults is index-aligned with
// SubValidators and is populated by Validate.
type Grouping interface {
	Validator
	SubValidators() []Validator
	SubResults() []Result
}

// Group runs several validators under one doctor category. Its own result is
// the worst of the sub-results.
type Group struct {
	title      string
	validators []Validator
	results    []Result
}

func NewGroup(title string, validators ...Validator) *Group {
	return &Group{title: title, validators: validators}
}

func (g *Group) Title() string {
	return g.title
}

// Validate runs every sub-validator in order, retaining the individual
// results for reporting. A panicking validator is recorded as a crash and
// does not stop the remaining validators.
func (g *Group) Validate(ctx context.Context) Result {
	g.results = make([]Result, len(g.validators))
	merged := Result{Status: StatusPassed}

	for i, v := range g.validators {
		g.results[i] = runValidator(ctx, v)
		if severity(g.results[i].Status) > severity(merged.Status) {
			merged = Result{Status: g.results[i].Status, Message: g.results[i].Message}
		}
	}
	return merged
}

func (g *Group) SubValidators() []Validator {
	return g.validators
}

func (g *Group) SubResults() []Result {
	return g.results
}

func runValidator(ctx context.Context, v Validator) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			result = Result{
				Status:  StatusCrash,
				Message: fmt.Sprintf("%s crashed: %v", v.Title(), r),
			}
		}
	}()
	return v.Validate(ctx)
}

func severity(s Status) int {
	switch s {
	case StatusPassed:
		return 0
	case StatusPartial:
		return 1
	case StatusNotAvailable:
		return 2
	case StatusMissing:
		return 3
	case StatusCrash:
		return 4
	default:
		return 0
	}
}
