package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arekkusul/Rustypipe/internal/pipeline"
)

func task(name string, deps ...string) pipeline.TaskDef {
	return pipeline.TaskDef{Name: name, DependsOn: deps, Run: "echo " + name}
}

func TestValidateAcceptsValidPipeline(t *testing.T) {
	p := &pipeline.Pipeline{Tasks: []pipeline.TaskDef{
		task("a"),
		task("b", "a"),
		task("c", "a"),
		task("d", "b", "c"),
	}}
	assert.NoError(t, Validate(p))
}

func TestValidateRejectsDuplicateNames(t *testing.T) {
	p := &pipeline.Pipeline{Tasks: []pipeline.TaskDef{task("a"), task("a")}}
	err := Validate(p)
	require.Error(t, err)
	var dup *DuplicateNameErr
	assert.ErrorAs(t, err, &dup)
	assert.Equal(t, "a", dup.Name)
}

func TestValidateRejectsUnknownDependency(t *testing.T) {
	p := &pipeline.Pipeline{Tasks: []pipeline.TaskDef{task("a", "ghost")}}
	err := Validate(p)
	require.Error(t, err)
	var unk *UnknownDependencyErr
	assert.ErrorAs(t, err, &unk)
	assert.Equal(t, "ghost", unk.Dependency)
}

func TestValidateRejectsCycle(t *testing.T) {
	p := &pipeline.Pipeline{Tasks: []pipeline.TaskDef{task("a", "b"), task("b", "a")}}
	err := Validate(p)
	require.Error(t, err)
	var cyc *CycleDetectedErr
	assert.ErrorAs(t, err, &cyc)
}
