// Copyright (c) Kilnworks. All rights reserved.
// Licensed under the MIT License.

package doctor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// ToolValidator checks that an executable is present on PATH.
type ToolValidator struct {
	title string
	tool  string
}

func NewToolValidator(title, tool string) *ToolValidator {
	return &ToolValidator{title: title, tool: tool}
}

func (v *ToolValidator) Title() string {
	return v.title
}

func (v *ToolValidator) Validate(ctx context.Context) Result {
	path, err := exec.LookPath(v.tool)
	if err != nil {
		return Result{
			Status:  StatusMissing,
			Message: fmt.Sprintf("%s not found on PATH", v.tool),
		}
	}
	return Result{Status: StatusPassed, Message: path}
}

// EnvVarValidator checks that a required environment variable is set.
type EnvVarValidator struct {
	title  string
	envVar string
}

func NewEnvVarValidator(title, envVar string) *EnvVarValidator {
	return &EnvVarValidator{title: title, envVar: envVar}
}

func (v *EnvVarValidator) Title() string {
	return v.title
}

func (v *EnvVarValidator) Validate(ctx context.Context) Result {
	if os.Getenv(v.envVar) == "" {
		return Result{
			Status:  StatusNotAvailable,
			Message: fmt.Sprintf("%s is not set", v.envVar),
		}
	}
	return Result{Status: StatusPassed, Message: v.envVar + " is set"}
}
