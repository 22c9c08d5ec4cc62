// A small CLI tool to randomize the letter case of text, using a buffer of
// random bits to draw one boolean per character.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/jessevdk/go-flags"

	"github.com/feliixx/randcase/casegen"
)

const version = "0.1.0"

func main() {
	var options casegen.Options
	p := flags.NewParser(&options, flags.Default&^flags.HelpFlag)
	p.Usage = "[OPTIONS] [text...]"
	args, err := p.Parse()
	if err != nil {
		color.Red("invalid flags, try randcase --help for more informations: %v", err)
		os.Exit(1)
	}
	if options.Help {
		fmt.Fprintf(os.Stdout, "randcase version %s\n\n", version)
		p.WriteHelp(os.Stdout)
		os.Exit(0)
	}
	if options.Version {
		fmt.Fprintf(os.Stdout, "randcase version %s\n", version)
		os.Exit(0)
	}
	err = casegen.Generate(&options, args, os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}
}
