package gapgo

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

const readingFormat = "Sensor at x=%d, y=%d: closest beacon is at x=%d, y=%d"

var errMalformedReading = errors.New("malformed sensor reading")

// Reading is one input line: a sensor and the beacon closest to it.
type Reading struct {
	Sensor Vec2
	Beacon Vec2
}

func (r Reading) String() string {
	return fmt.Sprintf(readingFormat, r.Sensor.X, r.Sensor.Y, r.Beacon.X, r.Beacon.Y)
}

// Radius is the sensor's reach; no beacon is closer than the reported one.
func (r Reading) Radius() int32 {
	return r.Sensor.ManhattanDistance(r.Beacon)
}

func (r Reading) AsSensor() Sensor {
	return Sensor{r.Sensor, r.Radius()}
}

// ParseReadings reads one reading per line. Blank lines are skipped.
func ParseReadings(input string) ([]Reading, error) {
	var out []Reading
	for i, txt := range strings.Split(input, "\n") {
		txt = strings.Trim(txt, " \t\r\n")
		if len(txt) == 0 {
			continue
		}
		var r Reading
		var rest string
		n, err := fmt.Sscanf(txt+" .", readingFormat+" %s", &r.Sensor.X, &r.Sensor.Y, &r.Beacon.X, &r.Beacon.Y, &rest)
		if err != nil || n != 5 || rest != "." {
			return nil, &ParseError{Line: i + 1, Text: txt, Err: errMalformedReading}
		}
		if outOfRange(r.Sensor.X) || outOfRange(r.Sensor.Y) || outOfRange(r.Beacon.X) || outOfRange(r.Beacon.Y) {
			return nil, &ParseError{Line: i + 1, Text: txt, Err: ErrCoordinateRange}
		}
		out = append(out, r)
	}
	return out, nil
}

func ReadingsFromFile(path string) ([]Reading, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	readings, err := ParseReadings(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return readings, nil
}

func SensorsFromReadings(readings []Reading) []Sensor {
	out := make([]Sensor, len(readings))
	for i, r := range readings {
		out[i] = r.AsSensor()
	}
	return out
}
