package deconstruct

// Package deconstruct defines the canonical serialization of a
// descriptor's construction arguments: an ordered (path, args, kwargs)
// tuple from which an equivalent descriptor is reconstructible.
//
// Form equality is the authoritative definition of "same schema". It is
// computed over canonical JSON bytes, so it is stable across process
// restarts and independent of object identity. Schema-migration tooling
// diffs two versions of a record type through Diff.
