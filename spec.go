package attrspec

// Choice is one permitted value together with its display label.
type Choice struct {
	Value any
	Label string
}

// BlankChoice is the sentinel prefixed when a caller asks for choices
// with a blank entry.
var BlankChoice = Choice{Value: nil, Label: "---------"}

// Capability is a named, composable unit of descriptor behavior. A
// variant's behavior is the union of its own rules plus whichever
// capabilities it declares; there is no inheritance search order.
type Capability interface {
	CapabilityName() string
}

// Provider produces a default value on demand. The produced value must
// still pass the descriptor's validation pipeline.
type Provider func() any

// Spec carries the metadata shared by every descriptor variant. Identity
// is (owner, name) and is fixed once bound; after binding a Spec is
// read-only and safe to share across goroutines.
type Spec struct {
	name        string
	column      string
	nullable    bool
	unique      bool
	primaryKey  bool
	notEditable bool
	hasDefault  bool
	defaultVal  any
	defaultFn   Provider
	choices     []Choice
	pipeline    Pipeline
	caps        []Capability
	owner       Owner
}

// Name returns the attribute name assigned at bind time.
func (s *Spec) Name() string { return s.name }

// ColumnName returns the storage column name. It defaults to the
// attribute name when not set explicitly.
func (s *Spec) ColumnName() string { return s.column }

// Nullable reports whether null is a legal read/write value. The flag is
// fixed at construction and never changes.
func (s *Spec) Nullable() bool { return s.nullable }

func (s *Spec) Unique() bool     { return s.unique }
func (s *Spec) PrimaryKey() bool { return s.primaryKey }
func (s *Spec) Editable() bool   { return !s.notEditable }

// HasDefault reports whether a default value or provider is configured.
func (s *Spec) HasDefault() bool { return s.hasDefault }

// DefaultValue produces the configured default. The second return is
// false when no default is configured.
func (s *Spec) DefaultValue() (any, bool) {
	if !s.hasDefault {
		return nil, false
	}
	if s.defaultFn != nil {
		return s.defaultFn(), true
	}
	return s.defaultVal, true
}

// Bind registers the descriptor on its owner under the given attribute
// name. Binding happens exactly once; a second call is a ConfigError.
// The column name is late-assigned from the attribute name when unset.
func (s *Spec) Bind(owner Owner, name string) error {
	if s.owner != nil {
		return configErrf("bind", "%q already bound to %s", s.name, s.owner.ModelName())
	}
	if owner == nil {
		return configErrf("bind", "nil owner for %q", name)
	}
	if name == "" {
		return configErrf("bind", "empty attribute name on %s", owner.ModelName())
	}
	s.owner = owner
	s.name = name
	if s.column == "" {
		s.column = name
	}
	return nil
}

// BoundTo returns the owner the descriptor is bound to, if any.
func (s *Spec) BoundTo() (Owner, bool) { return s.owner, s.owner != nil }

// Choices expands the configured enumeration, optionally prefixing the
// blank sentinel. It is a ConfigError to demand choices from a
// descriptor that has none.
func (s *Spec) Choices(includeBlank bool) ([]Choice, error) {
	if len(s.choices) == 0 {
		return nil, configErrf("choices", "%q has no choices configured", s.name)
	}
	out := make([]Choice, 0, len(s.choices)+1)
	if includeBlank {
		out = append(out, BlankChoice)
	}
	out = append(out, s.choices...)
	return out, nil
}

// FlatChoices returns just the permitted values, or nil when no choices
// are configured. Listing layers use this for read-only display.
func (s *Spec) FlatChoices() []any {
	if len(s.choices) == 0 {
		return nil
	}
	out := make([]any, len(s.choices))
	for i, c := range s.choices {
		out[i] = c.Value
	}
	return out
}

// Validators returns the pipeline entries in declaration order.
func (s *Spec) Validators() []Validator { return s.pipeline.Validators() }

// Capabilities returns the attached capability traits.
func (s *Spec) Capabilities() []Capability {
	out := make([]Capability, len(s.caps))
	copy(out, s.caps)
	return out
}

// HasCapability reports whether a capability with the given name is
// attached.
func (s *Spec) HasCapability(name string) bool {
	for _, c := range s.caps {
		if c.CapabilityName() == name {
			return true
		}
	}
	return false
}
