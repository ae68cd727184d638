package attrspec

import "context"

// Codec performs bidirectional transformation between the wire
// representation A and the domain representation B. Concrete codecs for
// temporal, identifier and geometry values live under codec/.
type Codec[A, B any] interface {
	Decode(ctx context.Context, a A) (B, error)
	Encode(ctx context.Context, b B) (A, error)
}
