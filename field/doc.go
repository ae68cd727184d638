package field

// Package field provides the concrete descriptor variants built on the
// generic attrspec core: integer, decimal, text, boolean, temporal,
// identifier, array-of and geometry fields.
//
// Each variant fixes a read type and a coercion over accepted write
// inputs, and may only tighten those bounds relative to its parent
// (PositiveInteger accepts a subset of Integer's inputs, never more).
// The nullable flag is always forwarded unchanged to the core.
//
// Composite behavior is attached through capability traits (see
// AutoIncrement, UnsignedRelative) rather than inheritance, and every
// variant registers a factory under a stable path so descriptors can be
// reconstructed from their deconstructed forms.
