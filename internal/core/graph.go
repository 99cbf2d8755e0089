package core

import "github.com/Arekkusul/Rustypipe/internal/pipeline"

// graph is the adjacency/indegree view of a validated pipeline, built fresh
// for each run. Plain maps are used rather than a library's walk so the
// executor can mutate indegree incrementally as tasks complete, per the
// decrement-and-redispatch invariant in spec.md's concurrency model.
type graph struct {
	indegree map[string]int
	adj      map[string][]string
	byName   map[string]*pipeline.TaskDef
}

func buildGraph(p *pipeline.Pipeline) *graph {
	g := &graph{
		indegree: make(map[string]int, len(p.Tasks)),
		adj:      make(map[string][]string, len(p.Tasks)),
		byName:   make(map[string]*pipeline.TaskDef, len(p.Tasks)),
	}
	for i := range p.Tasks {
		t := &p.Tasks[i]
		g.byName[t.Name] = t
		if _, ok := g.indegree[t.Name]; !ok {
			g.indegree[t.Name] = 0
		}
		for _, dep := range t.DependsOn {
			g.adj[dep] = append(g.adj[dep], t.Name)
			g.indegree[t.Name]++
		}
	}
	return g
}

// readySet returns every task whose indegree is currently zero.
func (g *graph) readySet() []string {
	var ready []string
	for name, d := range g.indegree {
		if d == 0 {
			ready = append(ready, name)
		}
	}
	return ready
}

// decrement drops the indegree of every dependent of task by one and
// returns those whose indegree just reached zero.
func (g *graph) decrement(task string) []string {
	var freed []string
	for _, dep := range g.adj[task] {
		g.indegree[dep]--
		if g.indegree[dep] == 0 {
			freed = append(freed, dep)
		}
	}
	return freed
}
