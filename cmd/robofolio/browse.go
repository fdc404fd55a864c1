package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/url"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/robofolio/robofolio/internal/tui"
)

func init() {
	flagSet := flag.NewFlagSet("browse", flag.ContinueOnError)
	var (
		indexURL    = flagSet.String("index", "", "`URL` of the search index (defaults to the configured site's)")
		openBrowser = flagSet.Bool("open", false, "open the picked result in the web browser")
		logPath     = flagSet.String("log", "robofolio.log", "`file` to write log messages to while searching")
	)

	handler := func(args []string) error {
		load, conf, err := indexSource(*indexURL)
		if err != nil {
			return err
		}
		var opt tui.Options
		base := *indexURL
		if conf != nil {
			opt.Delay = conf.Debounce
			if base == "" {
				base = conf.IndexURL
			}
		}

		// The search screen owns the terminal, so log to a file.
		logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			log.Printf("Could not open log file: %v", err)
		} else {
			defer logFile.Close()
			log.SetOutput(logFile)
			defer log.SetOutput(os.Stderr)
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		href, err := tui.Run(ctx, load, opt)
		if err != nil {
			return err
		}
		if href == "" {
			return nil
		}

		target := resultURL(href, base)
		fmt.Println(target)
		if *openBrowser {
			if !target.IsAbs() {
				return fmt.Errorf("cannot open %s in a browser without the site URL (use -index)", target)
			}
			return startBrowser(target.String())
		}
		return nil
	}

	// Register the command.
	commands = append(commands, &command{
		FlagSet:          flagSet,
		ShortDescription: "search the site interactively in the terminal",
		LongDescription:  "The browse subcommand shows a search box in the terminal. Results update as you type; use the arrow keys to select a result and enter to pick it. The URL of the picked result is printed (and opened, with -open).",
		handler:          handler,
	})
}

// resultURL resolves a result's href against the URL the search index was fetched from.
func resultURL(href, indexURL string) *url.URL {
	ref, err := url.Parse(href)
	if err != nil {
		return &url.URL{Path: href}
	}
	if indexURL == "" {
		return ref
	}
	base, err := url.Parse(indexURL)
	if err != nil {
		return ref
	}
	return base.ResolveReference(ref)
}

func startBrowser(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	return cmd.Start()
}
