package gapgo

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseReadings(t *testing.T) {
	input := "Sensor at x=2, y=18: closest beacon is at x=-2, y=15\r\n" +
		"\n" +
		"  Sensor at x=9, y=16: closest beacon is at x=10, y=16\n"
	got, err := ParseReadings(input)
	if err != nil {
		t.Fatal(err)
	}
	want := []Reading{
		{Vec2{2, 18}, Vec2{-2, 15}},
		{Vec2{9, 16}, Vec2{10, 16}},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d readings, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("reading %d = %v, want %v", i, got[i], want[i])
		}
	}
	if r := got[0].Radius(); r != 7 {
		t.Errorf("Radius() = %d, want 7", r)
	}
	sensors := SensorsFromReadings(got)
	if sensors[1] != (Sensor{Vec2{9, 16}, 1}) {
		t.Errorf("sensor 1 = %v", sensors[1])
	}
}

func TestParseReadingsErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
		want  error
	}{
		{"garbage", "hello", 1, errMalformedReading},
		{"second line", "Sensor at x=1, y=1: closest beacon is at x=2, y=1\nSensor at x=1, y=1", 2, errMalformedReading},
		{"trailing text", "Sensor at x=1, y=1: closest beacon is at x=2, y=1 extra", 1, errMalformedReading},
		{"not a number", "Sensor at x=a, y=1: closest beacon is at x=2, y=1", 1, errMalformedReading},
		{"overflow", "Sensor at x=99999999999, y=1: closest beacon is at x=2, y=1", 1, errMalformedReading},
		{"too far", "Sensor at x=300000000, y=1: closest beacon is at x=2, y=1", 1, ErrCoordinateRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseReadings(tt.input)
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error = %v, want *ParseError", err)
			}
			if pe.Line != tt.line {
				t.Errorf("line = %d, want %d", pe.Line, tt.line)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestReadingStringRoundTrip(t *testing.T) {
	r := Reading{Vec2{-3, 7}, Vec2{12, -40}}
	got, err := ParseReadings(r.String())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != r {
		t.Errorf("ParseReadings(%q) = %v", r.String(), got)
	}
}

func TestReadingsFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	f, err := FixtureByName("example")
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(f.Input), 0o644); err != nil {
		t.Fatal(err)
	}
	readings, err := ReadingsFromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(readings) != 14 {
		t.Errorf("got %d readings, want 14", len(readings))
	}

	if _, err := ReadingsFromFile(filepath.Join(dir, "missing.txt")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: error = %v", err)
	}
}
