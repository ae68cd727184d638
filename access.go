package attrspec

import "fmt"

// Owner identifies the record type a descriptor is bound to.
type Owner interface {
	ModelName() string
}

// Instance is the per-record value slot a bound descriptor reads and
// writes. The slot is owned by the host record type; the descriptor only
// mediates access to it.
type Instance interface {
	Load(attr string) (any, bool)
	Store(attr string, v any)
}

// AccessContext tags every descriptor operation with its origin: an
// access through the owner type alone, or through one of its instances.
type AccessContext struct {
	owner Owner
	inst  Instance
}

// ClassAccess builds a context for access through the owner type.
func ClassAccess(owner Owner) AccessContext {
	return AccessContext{owner: owner}
}

// InstanceAccess builds a context for access through a live instance.
func InstanceAccess(owner Owner, inst Instance) AccessContext {
	return AccessContext{owner: owner, inst: inst}
}

// Owner returns the owner type reference carried by the context.
func (at AccessContext) Owner() Owner { return at.owner }

// Instance returns the instance carried by the context, if any.
func (at AccessContext) Instance() (Instance, bool) {
	return at.inst, at.inst != nil
}

// AccessContextError reports a (context, nullable) pair the resolver
// could not classify. The three resolver states are exhaustive, so this
// is a programming error in the resolver, not a condition callers can
// trigger.
type AccessContextError struct {
	Nullable bool
}

func (e *AccessContextError) Error() string {
	return fmt.Sprintf("attrspec: unclassifiable access context (nullable=%v)", e.Nullable)
}

// accessState is the resolver's classification of one access.
type accessState int

const (
	stateClass accessState = iota
	stateInstanceNonNull
	stateInstanceNullable
)

// resolveAccess dispatches (context, nullable) onto exactly one state.
// There is no fallback state.
func resolveAccess(at AccessContext, nullable bool) (accessState, error) {
	switch {
	case at.inst == nil:
		return stateClass, nil
	case !nullable:
		return stateInstanceNonNull, nil
	case nullable:
		return stateInstanceNullable, nil
	}
	return 0, &AccessContextError{Nullable: nullable}
}
