package codec

import (
	"context"

	attrspec "github.com/attrspec/attrspec"
	"github.com/google/uuid"
)

// UUIDString returns a Codec that converts between canonical UUID
// strings and uuid.UUID values.
func UUIDString() attrspec.Codec[string, uuid.UUID] {
	return uuidCodec{}
}

type uuidCodec struct{}

func (uuidCodec) Decode(ctx context.Context, a string) (uuid.UUID, error) {
	id, err := uuid.Parse(a)
	if err != nil {
		return uuid.Nil, attrspec.Failures{{Path: "/", Code: attrspec.CodeInvalidFormat, Message: "invalid UUID", Cause: err}}
	}
	return id, nil
}

func (uuidCodec) Encode(ctx context.Context, b uuid.UUID) (string, error) {
	return b.String(), nil
}
