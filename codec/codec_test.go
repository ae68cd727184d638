package codec_test

import (
	"context"
	"testing"
	"time"

	attrspec "github.com/attrspec/attrspec"
	"github.com/attrspec/attrspec/codec"
	"github.com/google/uuid"
	geom "github.com/twpayne/go-geom"
)

func TestTimeRFC3339(t *testing.T) {
	ctx := context.Background()
	c := codec.TimeRFC3339()

	got, err := c.Decode(ctx, "2024-06-15T10:30:00+02:00")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := time.Date(2024, 6, 15, 8, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	// Encoding normalizes to UTC.
	s, err := c.Encode(ctx, got)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if s != "2024-06-15T08:30:00Z" {
		t.Fatalf("unexpected encoding %q", s)
	}

	// Fractional seconds survive a round trip.
	frac, err := c.Decode(ctx, "2024-06-15T08:30:00.25Z")
	if err != nil {
		t.Fatalf("decode fractional: %v", err)
	}
	if s, _ := c.Encode(ctx, frac); s != "2024-06-15T08:30:00.25Z" {
		t.Fatalf("fractional round trip drifted: %q", s)
	}

	_, err = c.Decode(ctx, "15 June 2024")
	fs, ok := attrspec.AsFailures(err)
	if !ok || len(fs) != 1 || fs[0].Code != attrspec.CodeInvalidFormat {
		t.Fatalf("expected invalid_format failures, got %v", err)
	}
}

func TestDateOnly(t *testing.T) {
	ctx := context.Background()
	c := codec.DateOnly()

	got, err := c.Decode(ctx, "2024-06-15")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.Equal(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date %v", got)
	}
	if s, _ := c.Encode(ctx, got); s != "2024-06-15" {
		t.Fatalf("unexpected encoding %q", s)
	}

	// Timestamps decode by truncation.
	got, err = c.Decode(ctx, "2024-06-15T23:59:00Z")
	if err != nil {
		t.Fatalf("decode timestamp: %v", err)
	}
	if got.Hour() != 0 || got.Day() != 15 {
		t.Fatalf("truncation lost: %v", got)
	}
}

func TestClockTime(t *testing.T) {
	ctx := context.Background()
	c := codec.ClockTime()

	got, err := c.Decode(ctx, "09:15")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if s, _ := c.Encode(ctx, got); s != "09:15:00" {
		t.Fatalf("unexpected encoding %q", s)
	}
	if _, err := c.Decode(ctx, "9 o'clock"); err == nil {
		t.Fatalf("expected decode failure")
	}
}

func TestUUIDString(t *testing.T) {
	ctx := context.Background()
	c := codec.UUIDString()
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	got, err := c.Decode(ctx, id.String())
	if err != nil || got != id {
		t.Fatalf("decode: %v %v", got, err)
	}
	if s, _ := c.Encode(ctx, id); s != id.String() {
		t.Fatalf("unexpected encoding %q", s)
	}
	if _, err := c.Decode(ctx, "nope"); err == nil {
		t.Fatalf("expected decode failure")
	}
}

func TestGeometryWKT(t *testing.T) {
	ctx := context.Background()
	c := codec.GeometryWKT()

	g, err := c.Decode(ctx, "POINT (30 10)")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := g.(*geom.Point); !ok {
		t.Fatalf("expected point, got %T", g)
	}
	s, err := c.Encode(ctx, g)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	back, err := c.Decode(ctx, s)
	if err != nil {
		t.Fatalf("re-decode: %v", err)
	}
	if _, ok := back.(*geom.Point); !ok {
		t.Fatalf("round trip changed kind: %T", back)
	}

	if _, err := c.Decode(ctx, "POINT OF NO RETURN"); err == nil {
		t.Fatalf("expected decode failure")
	}
}
