package attrspec

// Package attrspec models typed, nullability-aware attribute descriptors
// for structured record types.
//
// - A generic Field[G] contract mediates every read and write for one
//   named attribute (coerce -> validate -> store).
// - A stable failure model via Failures (path, code, message), collected
//   exhaustively and never truncated at the first failure.
// - An explicit AccessContext distinguishes class-level access (which
//   yields descriptor metadata) from instance-level access (which yields
//   a stored value).
// - Deconstruction into a canonical Form for schema equality and diffing.
//
// Design policy:
// - Keep only public contracts in the root package; concrete field
//   variants live under field/, codecs under codec/, the host record
//   collaborator under record/, and the CLI under cmd/attrspec.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	title := attrspec.Must(field.Char(100))
//	meta := record.NewMeta("Article")
//	_ = meta.Contribute("title", title)
//
//	inst := meta.NewInstance()
//	err := title.Write(inst.Access(), "hello")
//	res, err := title.Read(inst.Access())
