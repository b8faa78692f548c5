package main

import (
	"fmt"
	"os"

	"rdl/compiler-go/pkg/fixture"
)

const toolVersion = "rdlexpr 0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 1
	}
	switch args[0] {
	case "--help", "-h":
		printUsage()
		return 0
	case "--version", "-V", "version":
		fmt.Fprintln(os.Stdout, toolVersion)
		return 0
	}

	exit := 0
	for _, path := range args {
		suite, err := fixture.Load(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			exit = 1
			continue
		}
		failures := fixture.Run(suite)
		for _, failure := range failures {
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", suite.Name, failure)
		}
		if len(failures) > 0 {
			exit = 1
			continue
		}
		fmt.Fprintf(os.Stdout, "ok   %s (%d cases)\n", suite.Name, len(suite.Cases))
	}
	return exit
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: rdlexpr <suite.yaml> [...]

Evaluates every constant-expression case in the given fixture suites and
reports mismatches against the expected types, widths, and values.

Options:
  -h, --help     show this help
  -V, --version  print the tool version`)
}
