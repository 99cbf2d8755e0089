// Package validate enforces name uniqueness, dependency-reference validity,
// and acyclicity over a parsed pipeline.Pipeline, per spec component C6.
package validate

import (
	"github.com/pyr-sh/dag"

	"github.com/Arekkusul/Rustypipe/internal/pipeline"
)

// Validate runs the three checks in order and fails fast on the first
// violation, matching spec.md §4.6.
func Validate(p *pipeline.Pipeline) error {
	if err := checkUniqueNames(p); err != nil {
		return err
	}
	if err := checkReferences(p); err != nil {
		return err
	}
	return checkAcyclic(p)
}

func checkUniqueNames(p *pipeline.Pipeline) error {
	seen := make(map[string]struct{}, len(p.Tasks))
	for _, t := range p.Tasks {
		if _, ok := seen[t.Name]; ok {
			return &DuplicateNameErr{Name: t.Name}
		}
		seen[t.Name] = struct{}{}
	}
	return nil
}

func checkReferences(p *pipeline.Pipeline) error {
	names := make(map[string]struct{}, len(p.Tasks))
	for _, t := range p.Tasks {
		names[t.Name] = struct{}{}
	}
	for _, t := range p.Tasks {
		for _, dep := range t.DependsOn {
			if _, ok := names[dep]; !ok {
				return &UnknownDependencyErr{Task: t.Name, Dependency: dep}
			}
		}
	}
	return nil
}

// checkAcyclic builds a dag.AcyclicGraph of the task-depends-on-dependency
// edges (dependent -> dependency) and reports the first cycle found.
func checkAcyclic(p *pipeline.Pipeline) error {
	g := &dag.AcyclicGraph{}
	for _, t := range p.Tasks {
		g.Add(t.Name)
	}
	for _, t := range p.Tasks {
		for _, dep := range t.DependsOn {
			if dep == t.Name {
				// Cycles() only reports cycles of two or more vertices, so a
				// task that depends on itself is caught here.
				return &CycleDetectedErr{Node: t.Name}
			}
			g.Connect(dag.BasicEdge(t.Name, dep))
		}
	}

	cycles := g.Cycles()
	if len(cycles) == 0 {
		return nil
	}
	// Name a node on the cycle: the first vertex of the first cycle
	// reported, which is not necessarily where a traversal would meet the
	// back-edge.
	first := cycles[0]
	if len(first) == 0 {
		return &CycleDetectedErr{Node: "<unknown>"}
	}
	return &CycleDetectedErr{Node: dag.VertexName(first[0])}
}
