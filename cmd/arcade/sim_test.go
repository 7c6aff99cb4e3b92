package main

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/quadbreak/internal/core"
	"github.com/vovakirdan/quadbreak/internal/games/breakout"
)

func TestFrameFileRoundTrip(t *testing.T) {
	sim := breakout.NewSimulation(7)
	sim.SetPaddleDirection(core.V2(1, 0))
	for range 600 {
		sim.Step()
	}
	frame := sim.Frame()

	path := filepath.Join(t.TempDir(), "frame.msgpack")
	n, err := writeFrame(path, frame)
	if err != nil {
		t.Fatalf("writeFrame() failed: %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() != int64(n) {
		t.Fatalf("frame file missing or wrong size: %v", err)
	}

	loaded, err := readFrame(path)
	if err != nil {
		t.Fatalf("readFrame() failed: %v", err)
	}
	if !reflect.DeepEqual(loaded, frame) {
		t.Error("loaded frame differs from the written one")
	}

	var written, read bytes.Buffer
	describeFrame(&written, frame)
	describeFrame(&read, loaded)
	if written.String() != read.String() {
		t.Errorf("descriptions differ:\n%s\nvs\n%s", written.String(), read.String())
	}
	if !strings.Contains(read.String(), "ticks:            600") {
		t.Errorf("description missing tick count:\n%s", read.String())
	}
}

func TestReadFrameErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := readFrame(filepath.Join(dir, "missing")); err == nil {
		t.Error("expected error for a missing file")
	}

	bad := filepath.Join(dir, "bad")
	if err := os.WriteFile(bad, []byte{0xc1}, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := readFrame(bad); err == nil {
		t.Error("expected error for invalid data")
	}
}

func TestSteering(t *testing.T) {
	tests := []struct {
		name string
		tick int
		want core.Vec2
	}{
		{"none", 0, core.V2(0, 0)},
		{"left", 10, core.V2(-1, 0)},
		{"right", 10, core.V2(1, 0)},
		{"sweep", 0, core.V2(1, 0)},
		{"sweep", breakout.TicksPerSecond, core.V2(-1, 0)},
		{"sweep", 2 * breakout.TicksPerSecond, core.V2(1, 0)},
	}

	for _, tt := range tests {
		steer, err := steering(tt.name)
		if err != nil {
			t.Fatalf("steering(%q) failed: %v", tt.name, err)
		}
		if got := steer(tt.tick); got != tt.want {
			t.Errorf("steering(%q)(%d) = %+v, want %+v", tt.name, tt.tick, got, tt.want)
		}
	}

	if _, err := steering("zigzag"); err == nil {
		t.Error("expected error for unknown steering")
	}
}
