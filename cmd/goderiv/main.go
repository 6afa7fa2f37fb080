// Command goderiv matches a text against a regular expression by computing
// Brzozowski derivatives, printing true or false.
//
// Exit status: 0 on success (with --quiet: 0 match, 1 no match), 2 on a
// malformed pattern.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/goderiv/goderiv"
)

var cli struct {
	Pattern string           `arg:"" help:"Pattern: | alternation, * + ? repetition, ( ) grouping, backslash escape."`
	Text    string           `arg:"" help:"Text the whole pattern is matched against."`
	Quiet   bool             `short:"q" help:"Print nothing; report the result through the exit status."`
	Version kong.VersionFlag `short:"V" help:"Print version and exit."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("goderiv"),
		kong.Description("Match a text against a regular expression using Brzozowski derivatives."),
		kong.Vars{"version": goderiv.Version()},
	)

	matched, err := goderiv.Match(cli.Pattern, cli.Text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "goderiv: %v\n", err)
		os.Exit(2)
	}
	if !cli.Quiet {
		fmt.Println(matched)
	}
	if cli.Quiet && !matched {
		os.Exit(1)
	}
}
