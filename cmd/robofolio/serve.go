package main

import (
	"flag"
	"log"
	"net"
	"net/http"
)

func init() {
	flagSet := flag.NewFlagSet("serve", flag.ContinueOnError)
	var (
		httpAddr = flagSet.String("http", ":5080", "HTTP listen address")
	)

	handler := func(args []string) error {
		host, port, err := net.SplitHostPort(*httpAddr)
		if err != nil {
			return &usageError{err}
		}
		if host == "" {
			host = "0.0.0.0"
		}

		site, _, err := siteFromFlags()
		if err != nil {
			return err
		}
		log.Printf("# Site is available at http://%s:%s%s", host, port, basePath(site))
		return http.ListenAndServe(*httpAddr, site.Handler())
	}

	// Register the command.
	commands = append(commands, &command{
		FlagSet:          flagSet,
		ShortDescription: "start a web server to serve the site",
		LongDescription:  "The serve subcommand starts a web server to serve the site over HTTP, including the search index, server-rendered search results at /search?q=, and tables of contents for pages with a #toc element.",
		handler:          handler,
	})
}
