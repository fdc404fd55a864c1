package main

import (
	"context"
	"flag"
	"fmt"
	"regexp"
	"sort"
)

func init() {
	flagSet := flag.NewFlagSet("check", flag.ContinueOnError)
	var (
		skipURLs = flagSet.String("skip-urls", "", "regexp `pattern` for URLs to skip in broken link check (overrides check.ignoreURLPattern)")
	)

	handler := func(args []string) error {
		site, _, err := siteFromFlags()
		if err != nil {
			return err
		}
		if *skipURLs != "" {
			site.CheckIgnoreURLPattern, err = regexp.Compile(*skipURLs)
			if err != nil {
				return &usageError{err}
			}
		}

		problems, err := site.Check(context.Background())
		if err != nil {
			return err
		}
		if len(problems) > 0 {
			sort.Strings(problems)
			for _, problem := range problems {
				fmt.Println(problem)
			}
			return fmt.Errorf("%d problems found", len(problems))
		}
		return nil
	}

	// Register the command.
	commands = append(commands, &command{
		FlagSet:          flagSet,
		ShortDescription: "check the site and its search index for problems",
		LongDescription:  "The check subcommand checks the search index for incomplete entries and entries whose URL is not served, and checks all HTML pages for broken links and images.",
		handler:          handler,
	})
}
