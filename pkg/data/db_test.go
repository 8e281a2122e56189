package data

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(Place{Name: "kyiv", Lat: 50.5, Lng: 30.5})

	if err := m.Save(ctx, &Place{Name: "santa-cruz", Lat: 36.9741, Lng: -122.0308}); err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if err := m.Save(ctx, &Place{Name: "kyiv", Lat: 50.45, Lng: 30.52, Height: 179}); err != nil {
		t.Fatalf("unexpected: %v", err)
	}

	got, err := m.List(ctx)
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	want := []Place{
		{Name: "kyiv", Lat: 50.45, Lng: 30.52, Height: 179},
		{Name: "santa-cruz", Lat: 36.9741, Lng: -122.0308},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("places (-want,+got):\n%s", diff)
	}

	if _, err := m.Get(ctx, "atlantis"); !errors.Is(err, ErrNotFound) {
		t.Errorf("got err %v, want ErrNotFound", err)
	}
}
