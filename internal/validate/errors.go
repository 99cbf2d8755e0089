package validate

import "fmt"

// DuplicateNameErr is returned when two tasks in the same pipeline share a name.
type DuplicateNameErr struct {
	Name string
}

func (e *DuplicateNameErr) Error() string {
	return fmt.Sprintf("duplicate task name %q", e.Name)
}

// UnknownDependencyErr is returned when a task's depends_on entry does not
// name a task defined in the same pipeline.
type UnknownDependencyErr struct {
	Task       string
	Dependency string
}

func (e *UnknownDependencyErr) Error() string {
	return fmt.Sprintf("task %q depends on unknown task %q", e.Task, e.Dependency)
}

// CycleDetectedErr is returned when the dependency graph contains a cycle.
// Node names a task on the cycle: the task itself when it depends on itself,
// otherwise the first vertex of the first cycle the graph library reports.
// It is not necessarily the task at which a depth-first traversal would meet
// the back-edge.
type CycleDetectedErr struct {
	Node string
}

func (e *CycleDetectedErr) Error() string {
	return fmt.Sprintf("dependency cycle detected at task %q", e.Node)
}
