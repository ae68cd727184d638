package attrspec

// Option configures a descriptor at construction time. Options apply in
// order; later options win on conflict, and conflicting combinations are
// rejected eagerly by New.
type Option func(*Spec)

// Nullable makes null a legal read/write value. The flag is fixed for
// the lifetime of the descriptor.
func Nullable() Option {
	return func(s *Spec) { s.nullable = true }
}

// Unique marks the attribute's value as unique across instances.
func Unique() Option {
	return func(s *Spec) { s.unique = true }
}

// PrimaryKey marks the attribute as the owner's primary key. Primary
// keys are never nullable; combining the two is a ConfigError.
func PrimaryKey() Option {
	return func(s *Spec) { s.primaryKey = true }
}

// NotEditable excludes the attribute from editing surfaces.
func NotEditable() Option {
	return func(s *Spec) { s.notEditable = true }
}

// Column overrides the storage column name. When unset the bind step
// assigns the attribute name.
func Column(name string) Option {
	return func(s *Spec) { s.column = name }
}

// Default configures a literal default value. The value is coerced and
// validated eagerly by New.
func Default(v any) Option {
	return func(s *Spec) {
		s.hasDefault = true
		s.defaultVal = v
		s.defaultFn = nil
	}
}

// DefaultProvider configures a zero-argument default provider. Every
// produced value must pass the pipeline.
func DefaultProvider(fn Provider) Option {
	return func(s *Spec) {
		s.hasDefault = fn != nil
		s.defaultVal = nil
		s.defaultFn = fn
	}
}

// Choices restricts the attribute to an ordered enumeration of permitted
// values.
func Choices(cs ...Choice) Option {
	return func(s *Spec) { s.choices = append([]Choice(nil), cs...) }
}

// Validators appends validators after any inherited from the variant.
func Validators(vs ...Validator) Option {
	return func(s *Spec) { s.pipeline.Append(vs...) }
}

// Caps attaches capability traits to the descriptor. Attaching a trait
// whose name is already present is a no-op, so variant-supplied traits
// survive reconstruction without duplication.
func Caps(cs ...Capability) Option {
	return func(s *Spec) {
		for _, c := range cs {
			if s.HasCapability(c.CapabilityName()) {
				continue
			}
			s.caps = append(s.caps, c)
		}
	}
}
