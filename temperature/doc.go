// Package temperature converts between the Celsius, Fahrenheit and Kelvin scales.
//
// The six pairwise formulas are plain float64 arithmetic with no rounding:
//
//	temperature.CelsiusToFahrenheit(100) // 212
//	temperature.FahrenheitToCelsius(-40) // -40
//	temperature.CelsiusToKelvin(0)       // 273.15
//
// Conversions involving both Fahrenheit and Kelvin go through Celsius.
// Values below absolute zero are not rejected.
//
// When the unit is only known at run time, use [ParseUnit] and [Convert],
// or the [Temperature] value type:
//
//	t := temperature.Temperature{Value: 25, Unit: temperature.Celsius}
//	f, _ := t.To(temperature.Fahrenheit)
//	fmt.Println(f) // 77 °F
package temperature
