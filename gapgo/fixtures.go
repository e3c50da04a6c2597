package gapgo

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var fixtureData []byte

// Fixture is a puzzle input with a known answer.
type Fixture struct {
	Name      string `yaml:"name"`
	Dimension int32  `yaml:"dimension"`
	Expected  Vec2   `yaml:"expected"`
	Input     string `yaml:"input"`
	// Row and Excluded are the part one question and answer, when known.
	Row      *int32 `yaml:"row,omitempty"`
	Excluded int64  `yaml:"excluded,omitempty"`
	// Slow fixtures take seconds for the scanning strategies.
	Slow bool `yaml:"slow,omitempty"`

	Readings []Reading `yaml:"-"`
}

func (f Fixture) Sensors() []Sensor {
	return SensorsFromReadings(f.Readings)
}

// Rotated turns the whole fixture 90 degrees clockwise about the centre of
// its square. The part one row does not survive a rotation and is dropped.
func (f Fixture) Rotated() Fixture {
	out := f
	out.Name = f.Name + "/rot"
	out.Expected = f.Expected.Rotate(f.Dimension)
	out.Row = nil
	out.Excluded = 0
	out.Readings = make([]Reading, len(f.Readings))
	var sb strings.Builder
	for i, r := range f.Readings {
		out.Readings[i] = Reading{r.Sensor.Rotate(f.Dimension), r.Beacon.Rotate(f.Dimension)}
		sb.WriteString(out.Readings[i].String())
		sb.WriteByte('\n')
	}
	out.Input = sb.String()
	return out
}

// LoadFixtures decodes the built-in fixtures and parses their inputs.
func LoadFixtures() ([]Fixture, error) {
	var fixtures []Fixture
	if err := yaml.Unmarshal(fixtureData, &fixtures); err != nil {
		return nil, fmt.Errorf("decoding fixtures: %w", err)
	}
	for i := range fixtures {
		readings, err := ParseReadings(fixtures[i].Input)
		if err != nil {
			return nil, fmt.Errorf("fixture %s: %w", fixtures[i].Name, err)
		}
		fixtures[i].Readings = readings
	}
	return fixtures, nil
}

func FixtureByName(name string) (Fixture, error) {
	fixtures, err := LoadFixtures()
	if err != nil {
		return Fixture{}, err
	}
	names := make([]string, 0, len(fixtures))
	for _, f := range fixtures {
		if f.Name == name {
			return f, nil
		}
		names = append(names, f.Name)
	}
	return Fixture{}, fmt.Errorf("unknown fixture %q (have %s)", name, strings.Join(names, ", "))
}
