package attrspec

// Validator is a pure predicate over a candidate value. Implementations
// must be stateless so they can be shared across descriptors and
// goroutines.
type Validator interface {
	// Name identifies the rule for reporting.
	Name() string
	// Check returns nil when v passes, or the failure it produced.
	Check(v any) *Failure
}

// ValidatorFunc adapts a function to the Validator interface.
type ValidatorFunc struct {
	Rule string
	Fn   func(v any) *Failure
}

func (vf ValidatorFunc) Name() string { return vf.Rule }

func (vf ValidatorFunc) Check(v any) *Failure { return vf.Fn(v) }

// Pipeline is an ordered validator sequence. Declaration order is
// preserved: validators appended later run after earlier ones.
type Pipeline struct {
	vs []Validator
}

// Append adds validators to the end of the pipeline.
func (p *Pipeline) Append(vs ...Validator) {
	p.vs = append(p.vs, vs...)
}

// Run executes every validator against v regardless of earlier failures
// and returns the failures in execution order.
func (p Pipeline) Run(v any) Failures {
	var out Failures
	for _, vd := range p.vs {
		f := vd.Check(v)
		if f == nil {
			continue
		}
		g := *f
		if g.Path == "" {
			g.Path = "/"
		}
		if g.Rule == "" {
			g.Rule = vd.Name()
		}
		out = AppendFailures(out, g)
	}
	return out
}

// Len returns the number of validators in the pipeline.
func (p Pipeline) Len() int { return len(p.vs) }

// Validators returns the pipeline entries in declaration order.
func (p Pipeline) Validators() []Validator {
	out := make([]Validator, len(p.vs))
	copy(out, p.vs)
	return out
}
