package field

import (
	attrspec "github.com/attrspec/attrspec"
	"github.com/attrspec/attrspec/i18n"
	"github.com/google/uuid"
)

const PathUUID = "field.UUID"

// UUID builds an identifier descriptor reading uuid.UUID and accepting
// identifier values or canonical strings on write.
func UUID(opts ...attrspec.Option) (*attrspec.Field[uuid.UUID], error) {
	return attrspec.New[uuid.UUID](PathUUID, CoerceUUID, opts...)
}

// CoerceUUID accepts uuid.UUID values, 16-byte arrays and canonical
// string forms.
func CoerceUUID(v any) (uuid.UUID, attrspec.Failures) {
	switch id := v.(type) {
	case uuid.UUID:
		return id, nil
	case [16]byte:
		return uuid.UUID(id), nil
	case string:
		out, err := uuid.Parse(id)
		if err != nil {
			return uuid.Nil, attrspec.Failures{{Path: "/", Code: attrspec.CodeInvalidFormat, Message: i18n.T(attrspec.CodeInvalidFormat, nil), Cause: err}}
		}
		return out, nil
	}
	return uuid.Nil, attrspec.Failures{{Path: "/", Code: attrspec.CodeInvalidType, Message: i18n.T(attrspec.CodeInvalidType, nil)}}
}
