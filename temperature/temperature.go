package temperature

// KelvinOffset is the difference between the Kelvin and Celsius scales.
const KelvinOffset = 273.15

// CelsiusToFahrenheit converts degrees Celsius to degrees Fahrenheit.
func CelsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

// FahrenheitToCelsius converts degrees Fahrenheit to degrees Celsius.
func FahrenheitToCelsius(f float64) float64 {
	return (f - 32) * 5 / 9
}

// CelsiusToKelvin converts degrees Celsius to kelvin.
func CelsiusToKelvin(c float64) float64 {
	return c + KelvinOffset
}

// KelvinToCelsius converts kelvin to degrees Celsius.
func KelvinToCelsius(k float64) float64 {
	return k - KelvinOffset
}

// FahrenheitToKelvin converts degrees Fahrenheit to kelvin by way of Celsius.
func FahrenheitToKelvin(f float64) float64 {
	return CelsiusToKelvin(FahrenheitToCelsius(f))
}

// KelvinToFahrenheit converts kelvin to degrees Fahrenheit by way of Celsius.
func KelvinToFahrenheit(k float64) float64 {
	return CelsiusToFahrenheit(KelvinToCelsius(k))
}
