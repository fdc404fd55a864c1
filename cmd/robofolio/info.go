package main

import (
	"flag"
	"fmt"

	"gopkg.in/yaml.v2"
)

func init() {
	flagSet := flag.NewFlagSet("info", flag.ContinueOnError)

	handler := func(args []string) error {
		_, conf, err := siteFromFlags()
		if err != nil {
			return err
		}

		confYAML, err := yaml.Marshal(conf)
		if err != nil {
			return err
		}
		fmt.Print(string(confYAML))
		return nil
	}

	commands = append(commands, &command{
		FlagSet:          flagSet,
		ShortDescription: "print robofolio configuration",
		LongDescription:  "The info subcommand prints the effective configuration of the site.",
		handler:          handler,
	})
}
