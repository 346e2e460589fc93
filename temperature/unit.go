package temperature

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/erraggy/convkit/convkiterrors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Unit is a temperature scale.
type Unit int

const (
	// Celsius is the Celsius scale.
	Celsius Unit = iota + 1
	// Fahrenheit is the Fahrenheit scale.
	Fahrenheit
	// Kelvin is the Kelvin scale.
	Kelvin
)

// Units returns every supported unit.
func Units() []Unit {
	return []Unit{Celsius, Fahrenheit, Kelvin}
}

// String returns the lowercase unit name.
func (u Unit) String() string {
	switch u {
	case Celsius:
		return "celsius"
	case Fahrenheit:
		return "fahrenheit"
	case Kelvin:
		return "kelvin"
	default:
		return "unknown"
	}
}

// Symbol returns the conventional unit symbol.
func (u Unit) Symbol() string {
	switch u {
	case Celsius:
		return "°C"
	case Fahrenheit:
		return "°F"
	case Kelvin:
		return "K"
	default:
		return "?"
	}
}

// DisplayName returns the unit name title-cased for display, e.g. "Celsius".
func (u Unit) DisplayName() string {
	// Use golang.org/x/text/cases for proper title casing (strings.Title is deprecated)
	return cases.Title(language.English).String(u.String())
}

// Valid reports whether u is one of the supported units.
func (u Unit) Valid() bool {
	return u == Celsius || u == Fahrenheit || u == Kelvin
}

// ParseUnit parses a unit name or symbol, ignoring case and surrounding
// whitespace. Accepted forms include "c", "celsius", "°C", "f", "°F", "k"
// and "kelvin".
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c", "celsius", "°c", "℃":
		return Celsius, nil
	case "f", "fahrenheit", "°f", "℉":
		return Fahrenheit, nil
	case "k", "kelvin", "°k":
		return Kelvin, nil
	default:
		return 0, &convkiterrors.ConfigError{
			Option:  "unit",
			Value:   s,
			Message: "unknown temperature unit (valid units: celsius, fahrenheit, kelvin)",
		}
	}
}

// Convert converts v from one unit to another. Converting to the same unit
// returns v unchanged. Only unknown units produce an error; physically
// impossible temperatures are converted like any other value.
func Convert(v float64, from, to Unit) (float64, error) {
	if !from.Valid() {
		return 0, invalidUnit("from", from)
	}
	if !to.Valid() {
		return 0, invalidUnit("to", to)
	}

	switch {
	case from == to:
		return v, nil
	case from == Celsius && to == Fahrenheit:
		return CelsiusToFahrenheit(v), nil
	case from == Fahrenheit && to == Celsius:
		return FahrenheitToCelsius(v), nil
	case from == Celsius && to == Kelvin:
		return CelsiusToKelvin(v), nil
	case from == Kelvin && to == Celsius:
		return KelvinToCelsius(v), nil
	case from == Fahrenheit && to == Kelvin:
		return FahrenheitToKelvin(v), nil
	default: // Kelvin to Fahrenheit
		return KelvinToFahrenheit(v), nil
	}
}

func invalidUnit(option string, u Unit) error {
	return &convkiterrors.ConfigError{
		Option:  option,
		Value:   int(u),
		Message: "unknown temperature unit",
	}
}

// Temperature is a value tagged with its unit.
type Temperature struct {
	Value float64
	Unit  Unit
}

// To returns t expressed in unit u.
func (t Temperature) To(u Unit) (Temperature, error) {
	v, err := Convert(t.Value, t.Unit, u)
	if err != nil {
		return Temperature{}, fmt.Errorf("temperature: %w", err)
	}
	return Temperature{Value: v, Unit: u}, nil
}

// String formats t with its unit symbol, e.g. "21.5 °C".
func (t Temperature) String() string {
	return strconv.FormatFloat(t.Value, 'f', -1, 64) + " " + t.Unit.Symbol()
}
