package codec

import (
	"context"

	attrspec "github.com/attrspec/attrspec"
	geom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkt"
)

// GeometryWKT returns a Codec that converts between WKT strings and
// typed geometry values.
func GeometryWKT() attrspec.Codec[string, geom.T] {
	return wktCodec{}
}

type wktCodec struct{}

func (wktCodec) Decode(ctx context.Context, a string) (geom.T, error) {
	g, err := wkt.Unmarshal(a)
	if err != nil {
		return nil, attrspec.Failures{{Path: "/", Code: attrspec.CodeInvalidFormat, Message: "invalid WKT geometry", Cause: err}}
	}
	return g, nil
}

func (wktCodec) Encode(ctx context.Context, b geom.T) (string, error) {
	s, err := wkt.Marshal(b)
	if err != nil {
		return "", attrspec.Failures{{Path: "/", Code: attrspec.CodeInvalidFormat, Message: "unencodable geometry", Cause: err}}
	}
	return s, nil
}
