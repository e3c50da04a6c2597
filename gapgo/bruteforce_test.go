package gapgo

import (
	"context"
	"errors"
	"testing"
)

func TestBruteForceRefusesLargeSquare(t *testing.T) {
	if testing.Short() {
		t.Skip("scans the default iteration cap")
	}
	f, err := FixtureByName("large")
	if err != nil {
		t.Fatal(err)
	}
	_, err = New(BruteForce, Options{}).Solve(context.Background(), f.Sensors(), f.Dimension)
	if !errors.Is(err, ErrIterationLimit) {
		t.Errorf("error = %v, want ErrIterationLimit", err)
	}
}

func TestBruteForceRowMajor(t *testing.T) {
	// (2, 0) and (0, 1) are both open; row 0 comes first.
	var sensors []Sensor
	for y := int32(0); y <= 2; y++ {
		for x := int32(0); x <= 2; x++ {
			if (x == 2 && y == 0) || (x == 0 && y == 1) {
				continue
			}
			sensors = append(sensors, Sensor{Vec2{x, y}, 0})
		}
	}
	got, err := New(BruteForce, Options{}).Solve(context.Background(), sensors, 2)
	if err != nil {
		t.Fatal(err)
	}
	if want := (Vec2{2, 0}); got.Point != want {
		t.Errorf("point = %v, want %v", got.Point, want)
	}
}
