// Package main provides the zumpy command line tool.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
)

const version = "v0.1.0"

func main() {
	log.SetFlags(0)
	log.SetPrefix("zumpy: ")

	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// command is one subcommand; it parses its own flags from args.
type command struct {
	name    string
	summary string
	run     func(args []string, out io.Writer) error
}

var commands = []command{
	{"version", "Show version", runVersion},
	{"demo", "Fill a 3x3x3 int32 array with 10 and read one element", runDemo},
	{"show", "Print arrays from a YAML file with their sums", runShow},
	{"slice", "Select positions per axis (-axes \"2,0;1\")", runSlice},
	{"filter", "Keep rows matching a comparison (-op gt -value 20 -mode any)", runFilter},
	{"random", "Write a random array as a YAML document", runRandom},
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		usage(out)
		return nil
	}
	for _, c := range commands {
		if c.name == args[0] {
			return c.run(args[1:], out)
		}
	}
	usage(out)
	return fmt.Errorf("unknown command %q", args[0])
}

func usage(out io.Writer) {
	fmt.Fprintf(out, "zumpy %s - dense N-dimensional arrays\n\n", version)
	fmt.Fprintln(out, "Commands:")
	for _, c := range commands {
		fmt.Fprintf(out, "  %-9s %s\n", c.name, c.summary)
	}
}

func runVersion(_ []string, out io.Writer) error {
	fmt.Fprintf(out, "zumpy %s\n", version)
	return nil
}
