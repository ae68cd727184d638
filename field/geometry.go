package field

import (
	"fmt"

	attrspec "github.com/attrspec/attrspec"
	"github.com/attrspec/attrspec/i18n"
	geom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkt"
)

const PathGeometry = "field.Geometry"

// GeometryKind names the geometry shapes a Geometry descriptor accepts.
type GeometryKind string

const (
	AnyGeometry  GeometryKind = "geometry"
	Point        GeometryKind = "point"
	LineString   GeometryKind = "linestring"
	Polygon      GeometryKind = "polygon"
	MultiPoint   GeometryKind = "multipoint"
	MultiPolygon GeometryKind = "multipolygon"
)

// Geometry builds a typed geometry descriptor for the given kind. Writes
// accept geometry values or WKT strings; mismatched shapes are rejected.
func Geometry(kind GeometryKind, opts ...attrspec.Option) (*attrspec.Field[geom.T], error) {
	switch kind {
	case AnyGeometry, Point, LineString, Polygon, MultiPoint, MultiPolygon:
	default:
		return nil, &attrspec.ConfigError{Op: "new", Reason: fmt.Sprintf("%s: unknown geometry kind %q", PathGeometry, kind)}
	}
	f, err := attrspec.New[geom.T](PathGeometry, coerceGeometry(kind), opts...)
	if err != nil {
		return nil, err
	}
	return f.DeconstructArgs(string(kind)), nil
}

func coerceGeometry(kind GeometryKind) attrspec.Coercer[geom.T] {
	return func(v any) (geom.T, attrspec.Failures) {
		var g geom.T
		switch t := v.(type) {
		case geom.T:
			g = t
		case string:
			parsed, err := wkt.Unmarshal(t)
			if err != nil {
				return nil, attrspec.Failures{{Path: "/", Code: attrspec.CodeInvalidFormat, Message: i18n.T(attrspec.CodeInvalidFormat, nil), Cause: err}}
			}
			g = parsed
		default:
			return nil, attrspec.Failures{{Path: "/", Code: attrspec.CodeInvalidType, Message: i18n.T(attrspec.CodeInvalidType, nil)}}
		}
		if kind != AnyGeometry && kindOf(g) != kind {
			return nil, attrspec.Failures{{
				Path:    "/",
				Code:    attrspec.CodeInvalidType,
				Message: i18n.T(attrspec.CodeInvalidType, nil),
				Rule:    "geometry_kind",
				Params:  map[string]any{"want": string(kind), "got": string(kindOf(g))},
			}}
		}
		return g, nil
	}
}

func kindOf(g geom.T) GeometryKind {
	switch g.(type) {
	case *geom.Point:
		return Point
	case *geom.LineString:
		return LineString
	case *geom.Polygon:
		return Polygon
	case *geom.MultiPoint:
		return MultiPoint
	case *geom.MultiPolygon:
		return MultiPolygon
	}
	return AnyGeometry
}
