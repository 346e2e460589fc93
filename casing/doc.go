// Package casing converts delimiter-separated text between naming conventions.
//
// The primary entry point is [ToCamelCase], which turns snake_case,
// kebab-case or space separated text into camelCase:
//
//	casing.ToCamelCase("hello_world")           // "helloWorld"
//	casing.ToCamelCase("this-is-a-test")        // "thisIsATest"
//	casing.ToCamelCase("  multiple   spaces  ") // "multipleSpaces"
//
// Word delimiters are underscore, hyphen and any Unicode whitespace (see
// [IsDelimiter]). A run of delimiters is a single word boundary, and
// leading or trailing delimiters produce nothing. Characters inside a word
// keep their case, so "alreadyCamelCase" is returned unchanged.
//
// [ToPascalCase], [ToSnakeCase] and [ToKebabCase] cover the neighbouring
// conventions, and [Convert] selects one by [Style].
//
// All functions are total: they accept any string and never fail. They hold
// no state and are safe for concurrent use.
package casing
