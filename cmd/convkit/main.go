package main

import (
	"fmt"
	"os"

	"github.com/erraggy/convkit"
	"github.com/erraggy/convkit/cmd/convkit/commands"
)

// commandNames lists every dispatchable command for typo suggestions.
var commandNames = []string{"case", "camel", "roman", "temp", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("convkit v%s\n", convkit.Version())
		fmt.Println(convkit.BuildInfo())
		return
	case "help", "-h", "--help":
		printUsage()
		return
	case "case", "camel":
		err = commands.HandleCase(command, args)
	case "roman":
		err = commands.HandleRoman(args)
	case "temp":
		err = commands.HandleTemp(args)
	case "mcp":
		err = commands.HandleMCP(args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean: %s?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// suggestCommand returns the closest known command within an edit distance
// of 2, or "" when nothing is close enough.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, name := range commandNames {
		if d := levenshtein(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	fmt.Printf(`convkit - small text and number conversions

Usage:
  convkit <command> [flags] [args]

Commands:
  case      Convert text to camelCase (or --style pascal, snake, kebab)
  camel     Alias for case
  roman     Evaluate Roman numerals, or format integers with --encode
  temp      Convert temperatures between Celsius, Fahrenheit and Kelvin
  mcp       Serve the conversions as MCP tools over stdio
  version   Show version information
  help      Show this help message

Every conversion command reads '-' as one input per line from stdin and
supports --format text|json|yaml and --quiet.

Examples:
  convkit case hello_world background-color
  convkit roman MCMXCIV
  convkit roman --encode 2024
  convkit temp --from f --to c 98.6

Run 'convkit <command> --help' for more information on a command.
`)
}
