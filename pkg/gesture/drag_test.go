package gesture

import (
	"errors"
	"testing"
	"time"
)

func TestDragElementsAndroid(t *testing.T) {
	m := &mockDriver{
		elementID: "elem-1",
		rect:      Rect{X: 100, Y: 200, Width: 200, Height: 100},
		density:   420,
	}

	g := NewDragAndDrop(m, PlatformAndroid)
	if err := g.Elements("id", "card", "id", "trash", 1.0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(m.mobileCalls) != 1 {
		t.Fatalf("expected 1 native call, got %d", len(m.mobileCalls))
	}
	call := m.mobileCalls[0]
	if call.command != "dragGesture" {
		t.Errorf("command = %q", call.command)
	}
	// Both lookups resolve to the same scripted rect.
	if call.args["startX"] != 200 || call.args["startY"] != 250 {
		t.Errorf("start = (%v,%v), want (200,250)", call.args["startX"], call.args["startY"])
	}
	if call.args["endX"] != 200 || call.args["endY"] != 250 {
		t.Errorf("end = (%v,%v)", call.args["endX"], call.args["endY"])
	}
	if call.args["speed"] != float64(2500*420) {
		t.Errorf("speed = %v, want %v", call.args["speed"], float64(2500*420))
	}
}

func TestDragElementsAndroidSpeedMultiplier(t *testing.T) {
	m := &mockDriver{
		elementID: "elem-1",
		rect:      Rect{X: 0, Y: 0, Width: 10, Height: 10},
		density:   160,
	}

	g := NewDragAndDrop(m, PlatformAndroid)
	if err := g.Elements("id", "a", "id", "b", 0.5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := m.mobileCalls[0].args["speed"]; got != float64(2500*160)*0.5 {
		t.Errorf("speed = %v, want %v", got, float64(2500*160)*0.5)
	}
}

func TestDragElementsIOS(t *testing.T) {
	m := &mockDriver{
		elementID: "elem-1",
		rect:      Rect{X: 100, Y: 200, Width: 200, Height: 100},
	}

	g := NewDragAndDrop(m, PlatformIOS)
	if err := g.Elements("id", "card", "id", "trash", 1.0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	call := m.mobileCalls[0]
	if call.command != "dragFromToWithVelocity" {
		t.Errorf("command = %q", call.command)
	}
	if call.args["pressDuration"] != 0.5 || call.args["holdDuration"] != 0.1 {
		t.Errorf("durations = %v, %v", call.args["pressDuration"], call.args["holdDuration"])
	}
	if call.args["velocity"] != 400.0 {
		t.Errorf("velocity = %v, want 400", call.args["velocity"])
	}
	// iOS takes coordinates directly, no density scaling.
	if m.densityCalls != 0 {
		t.Errorf("density queried on iOS")
	}
}

func TestDragElementsDensityUnavailable(t *testing.T) {
	m := &mockDriver{
		elementID: "elem-1",
		rect:      Rect{X: 0, Y: 0, Width: 10, Height: 10},
	}

	g := NewDragAndDrop(m, PlatformAndroid)
	err := g.Elements("id", "a", "id", "b", 1.0)
	if err == nil {
		t.Fatal("expected error")
	}
	var gerr *GestureError
	if !errors.As(err, &gerr) || gerr.Category != ErrCategoryTransport {
		t.Errorf("err = %v, want transport category", err)
	}
	if len(m.mobileCalls) != 0 {
		t.Errorf("native gesture attempted without density")
	}
}

func TestDragPointer(t *testing.T) {
	m := &mockDriver{
		elementID: "elem-1",
		rect:      Rect{X: 100, Y: 200, Width: 200, Height: 100},
	}

	g := NewDragAndDrop(m, PlatformAndroid)
	if err := g.Pointer("id", "card", "id", "trash", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(m.mobileCalls) != 0 {
		t.Errorf("pointer drag used a native gesture")
	}
	if len(m.sequences) != 1 {
		t.Fatalf("expected 1 sequence, got %d", len(m.sequences))
	}
	seq := m.sequences[0]
	if len(seq) != 6 {
		t.Fatalf("sequence length = %d, want 6", len(seq))
	}
	if seq[2].Duration != time.Second {
		t.Errorf("default hold = %v, want 1s", seq[2].Duration)
	}
}

func TestDragSourceNotFound(t *testing.T) {
	m := &mockDriver{failFinds: 100}

	g := NewDragAndDrop(m, PlatformAndroid)
	if err := g.Elements("id", "missing", "id", "trash", 1.0); err == nil {
		t.Fatal("expected error")
	}
	if len(m.mobileCalls) != 0 || len(m.sequences) != 0 {
		t.Errorf("gesture attempted after failed lookup")
	}
}
