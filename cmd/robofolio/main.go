package main

import (
	"flag"
	"log"
	"os"
	"text/template"
)

var usage = template.Must(template.New("").Parse(`robofolio serves and searches a robotics team portfolio site built as static HTML pages with a search.json index.

Usage:

  robofolio [options] command [command options]

The options are:

{{call .FlagUsage }}
The commands are:
{{range .Commands}}
  {{printf "%- 15s" .NameAndAliases}} {{.ShortDescription}}
{{- end}}

Use "robofolio [command] -h" for more information about a command.

`))

var (
	configPath = flag.String("config", "robofolio.yml", "search `paths` for robofolio.yml config file (colon-separated)")
)

// commands contains all registered subcommands.
var commands commander

func main() {
	log.SetFlags(0)
	log.SetPrefix("")
	os.Exit(commands.run(flag.CommandLine, "robofolio", usage, os.Args[1:]))
}
