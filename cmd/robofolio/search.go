package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/robofolio/robofolio/internal/search"
	"github.com/robofolio/robofolio/internal/search/index"
	"github.com/robofolio/robofolio/internal/search/query"
)

func init() {
	flagSet := flag.NewFlagSet("search", flag.ContinueOnError)
	var (
		jsonOutput = flagSet.Bool("json", false, "print matching index entries as JSON")
		indexURL   = flagSet.String("index", "", "`URL` of the search index to use instead of the configured site's")
	)

	handler := func(args []string) error {
		queryStr := strings.Join(args, " ")
		if queryStr == "" {
			return &usageError{errors.New("no query given")}
		}

		ctx := context.Background()
		load, _, err := indexSource(*indexURL)
		if err != nil {
			return err
		}
		idx, err := load(ctx)
		if err != nil {
			return err
		}
		results := idx.Search(query.Parse(queryStr))
		if len(results) == 0 {
			return &exitCodeError{error: errors.New("no results found"), exitCode: 1}
		}

		if *jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(results)
		}
		printResults(os.Stdout, search.NewPanel(results, queryStr))
		return nil
	}

	// Register the command.
	commands = append(commands, &command{
		FlagSet:          flagSet,
		ShortDescription: "search posts and projects",
		LongDescription:  "The search subcommand prints the index entries matching every term of the query (at most " + fmt.Sprint(index.MaxResults) + ", in index order). It exits with status 1 if nothing matches.",
		handler:          handler,
	})
}

func printResults(w io.Writer, panel search.Panel) {
	for _, item := range panel.Items {
		fmt.Fprintf(w, "%s [%s]: %s\n", item.Href, item.Type, item.Title.Plain())
		fmt.Fprintf(w, "\t%s\n", item.Excerpt.Plain())
	}
}

// indexSource returns how to load the search index: from indexURL if set, else from the
// configured site's indexURL, else from the configured site's file system. The configuration
// is returned when there is one; with indexURL set it is optional.
func indexSource(indexURL string) (search.LoadFunc, *siteConfig, error) {
	fetch := func(url string) search.LoadFunc {
		return func(ctx context.Context) (*index.Index, error) {
			return index.Fetch(ctx, nil, url)
		}
	}
	if indexURL != "" {
		conf, _ := configFromFlags() // only used for settings such as the debounce delay
		return fetch(indexURL), conf, nil
	}

	site, conf, err := siteFromFlags()
	if err != nil {
		return nil, nil, err
	}
	if conf.IndexURL != "" {
		return fetch(conf.IndexURL), conf, nil
	}
	return site.LoadIndex, conf, nil
}
