package field

import attrspec "github.com/attrspec/attrspec"

// AutoIncrement marks an integer variant whose value is assigned by the
// storage layer rather than written by callers.
type AutoIncrement struct{}

func (AutoIncrement) CapabilityName() string { return "auto_increment" }

// UnsignedRelative marks an unsigned integer variant that maps onto a
// relative column type on backends without native unsigned columns.
type UnsignedRelative struct{}

func (UnsignedRelative) CapabilityName() string { return "unsigned_relative" }

// capabilityByName restores a capability trait from its deconstructed
// name.
func capabilityByName(name string) (attrspec.Capability, bool) {
	switch name {
	case "auto_increment":
		return AutoIncrement{}, true
	case "unsigned_relative":
		return UnsignedRelative{}, true
	}
	return nil, false
}
