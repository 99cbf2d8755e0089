package cmd

import (
	"github.com/Arekkusul/Rustypipe/internal/core"
	"github.com/Arekkusul/Rustypipe/internal/pipeline"
	"github.com/Arekkusul/Rustypipe/internal/validate"
)

// exitCodeFor maps a top-level command error to the exit-code scheme: 2 for
// parse/validate failures, the task's own exit code (or 1, if it has none)
// for a pipeline abort, and 1 for anything else.
func exitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	switch e := err.(type) {
	case *pipeline.ParseErr, *pipeline.IOErr:
		return 2
	case *validate.DuplicateNameErr, *validate.UnknownDependencyErr, *validate.CycleDetectedErr:
		return 2
	case *core.PipelineAbortedErr:
		if e.ExitCode != 0 {
			return e.ExitCode
		}
		return 1
	default:
		return 1
	}
}
