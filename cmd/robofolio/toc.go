package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/net/html"

	"github.com/robofolio/robofolio"
)

func init() {
	flagSet := flag.NewFlagSet("toc", flag.ContinueOnError)
	var (
		selector = flagSet.String("selector", robofolio.DefaultTOCSelector, "`class` of the elements containing the headings to list")
	)

	handler := func(args []string) error {
		if len(args) == 0 {
			return &usageError{errors.New("no HTML file given")}
		}
		for _, path := range args {
			data, err := ioutil.ReadFile(path)
			if err != nil {
				return err
			}
			if len(args) > 1 {
				fmt.Printf("%s:\n", path)
			}
			if err := printTOC(os.Stdout, data, *selector); err != nil {
				return errors.WithMessage(err, path)
			}
		}
		return nil
	}

	// Register the command.
	commands = append(commands, &command{
		FlagSet:          flagSet,
		ShortDescription: "print the table of contents of HTML pages",
		LongDescription:  "The toc subcommand prints, as a Markdown list, the h2 and h3 headings of each HTML page that are inside an element with the selector class. Headings without an id are listed with the id the site server would give them.",
		handler:          handler,
	})
}

func printTOC(w io.Writer, data []byte, selector string) error {
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return err
	}
	for _, e := range robofolio.TableOfContents(doc, selector) {
		indent := ""
		if e.Nested {
			indent = "  "
		}
		fmt.Fprintf(w, "%s- [%s](#%s)\n", indent, e.Text, e.ID)
	}
	return nil
}
