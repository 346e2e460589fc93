// Package convkit is a small collection of pure conversion utilities.
//
// # Overview
//
// The library consists of three independent packages:
//
//   - casing: convert snake_case, kebab-case or space separated text to camelCase
//   - roman: parse and format Roman numerals
//   - temperature: convert between Celsius, Fahrenheit and Kelvin
//
// Errors from all packages are structured types in convkiterrors and work
// with errors.Is and errors.As.
//
// # Installation
//
//	go get github.com/erraggy/convkit
//
// # Quick Start
//
// Convert text to camelCase:
//
//	import "github.com/erraggy/convkit/casing"
//
//	casing.ToCamelCase("hello_world") // "helloWorld"
//
// Parse a Roman numeral:
//
//	import "github.com/erraggy/convkit/roman"
//
//	n, err := roman.Parse("MCMXCIV")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(n) // 1994
//
// Convert a temperature:
//
//	import "github.com/erraggy/convkit/temperature"
//
//	temperature.FahrenheitToKelvin(32) // 273.15
//
// # Concurrency
//
// Every function is stateless and free of side effects, so all of them can
// be called concurrently without coordination.
//
// # Command Line and MCP
//
// The convkit command (cmd/convkit) wraps the packages for shell use and can
// also serve them as MCP tools over stdio with "convkit mcp".
package convkit
