package record

import (
	"fmt"

	attrspec "github.com/attrspec/attrspec"
	"github.com/attrspec/attrspec/deconstruct"
)

// Meta is the definition-time registry of a record type's attribute
// descriptors. Contribute is the one-time bind step; after definition a
// Meta is read-only and safe to share across goroutines.
type Meta struct {
	name   string
	order  []string
	fields map[string]attrspec.Bindable
}

// NewMeta starts the definition of a record type.
func NewMeta(name string) *Meta {
	return &Meta{name: name, fields: map[string]attrspec.Bindable{}}
}

// ModelName implements attrspec.Owner.
func (m *Meta) ModelName() string { return m.name }

// Contribute binds a descriptor under an attribute name. Contributing a
// name twice, or a descriptor already bound elsewhere, is a
// configuration error.
func (m *Meta) Contribute(name string, f attrspec.Bindable) error {
	if f == nil {
		return &attrspec.ConfigError{Op: "contribute", Reason: fmt.Sprintf("%s.%s: nil descriptor", m.name, name)}
	}
	if _, dup := m.fields[name]; dup {
		return &attrspec.ConfigError{Op: "contribute", Reason: fmt.Sprintf("%s.%s: attribute already declared", m.name, name)}
	}
	if err := f.Bind(m, name); err != nil {
		return err
	}
	m.fields[name] = f
	m.order = append(m.order, name)
	return nil
}

// Field looks up a descriptor by attribute name.
func (m *Meta) Field(name string) (attrspec.Bindable, bool) {
	f, ok := m.fields[name]
	return f, ok
}

// Fields returns the descriptors in declaration order.
func (m *Meta) Fields() []attrspec.Bindable {
	out := make([]attrspec.Bindable, 0, len(m.order))
	for _, name := range m.order {
		out = append(out, m.fields[name])
	}
	return out
}

// AttrNames returns the attribute names in declaration order.
func (m *Meta) AttrNames() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Forms deconstructs every attribute, keyed by name. Schema-migration
// tooling diffs two record versions through these.
func (m *Meta) Forms() map[string]deconstruct.Form {
	out := make(map[string]deconstruct.Form, len(m.fields))
	for name, f := range m.fields {
		out[name] = f.Deconstruct()
	}
	return out
}

// NewInstance allocates an empty value-slot holder for this type.
func (m *Meta) NewInstance() *Instance {
	return &Instance{meta: m, values: map[string]any{}}
}
