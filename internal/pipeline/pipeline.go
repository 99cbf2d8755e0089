// Package pipeline holds the declarative data model for a rustypipe
// pipeline document: the Pipeline and TaskDef shapes, their defaults, and
// the errors the parser can raise against them. Validation errors are
// defined in package validate.
package pipeline

const (
	// DefaultConcurrency is used when a pipeline document omits `concurrency`.
	DefaultConcurrency = 4

	// DefaultBackend is used when a task definition omits `backend`.
	DefaultBackend = "local"
)

// TaskDef is a single task entry from the pipeline document.
type TaskDef struct {
	Name           string   `yaml:"name"`
	DependsOn      []string `yaml:"depends_on,omitempty"`
	Run            string   `yaml:"run"`
	Retries        int      `yaml:"retries,omitempty"`
	TimeoutSeconds *int     `yaml:"timeout,omitempty"`
	Backend        string   `yaml:"backend,omitempty"`
	CacheKey       string   `yaml:"cache_key,omitempty"`
	ContinueOnFail bool     `yaml:"continue_on_fail,omitempty"`
}

// EffectiveBackend returns the task's backend selector, defaulted per spec.
func (t *TaskDef) EffectiveBackend() string {
	if t.Backend == "" {
		return DefaultBackend
	}
	return t.Backend
}

// Pipeline is the top-level parsed document.
type Pipeline struct {
	Name        string    `yaml:"name,omitempty"`
	Concurrency int       `yaml:"concurrency,omitempty"`
	StopOnFail  bool      `yaml:"stop_on_fail,omitempty"`
	Tasks       []TaskDef `yaml:"tasks"`
}

// ApplyDefaults fills in the zero-value defaults for optional fields. It
// is idempotent and safe to call more than once.
func (p *Pipeline) ApplyDefaults() {
	if p.Concurrency <= 0 {
		p.Concurrency = DefaultConcurrency
	}
	for i := range p.Tasks {
		if p.Tasks[i].Backend == "" {
			p.Tasks[i].Backend = DefaultBackend
		}
	}
}

// TaskByName returns the task definition with the given name, if any.
func (p *Pipeline) TaskByName(name string) (*TaskDef, bool) {
	for i := range p.Tasks {
		if p.Tasks[i].Name == name {
			return &p.Tasks[i], true
		}
	}
	return nil, false
}
