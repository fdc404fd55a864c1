package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"text/template"
)

// command is a subcommand handler and its flag set.
type command struct {
	// FlagSet is the flag set for the command.
	FlagSet *flag.FlagSet

	// ShortDescription is the short description for the command shown in the top-level help
	// message.
	ShortDescription string

	// LongDescription is the long description for the command shown in the command's help message.
	LongDescription string

	// aliases for the command.
	aliases []string

	// handler is the function that is invoked to handle this command.
	handler func(args []string) error
}

func (c *command) NameAndAliases() string {
	v := make([]string, 1+len(c.aliases))
	v[0] = c.FlagSet.Name()
	copy(v[1:], c.aliases)
	return strings.Join(v, ",")
}

// matches tells if the given name matches this command or one of its aliases.
func (c *command) matches(name string) bool {
	if name == c.FlagSet.Name() {
		return true
	}
	for _, alias := range c.aliases {
		if name == alias {
			return true
		}
	}
	return false
}

// usage prints the command's help message.
func (c *command) usage(cmdName string) {
	out := c.FlagSet.Output()
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %s [options] %s", cmdName, c.FlagSet.Name())
	if hasFlags(c.FlagSet) {
		fmt.Fprint(out, " [command options]")
	}
	fmt.Fprintln(out)
	if c.LongDescription != "" {
		fmt.Fprintln(out)
		fmt.Fprintln(out, c.LongDescription)
		fmt.Fprintln(out)
	}
	if hasFlags(c.FlagSet) {
		fmt.Fprintln(out, "The command options are:")
		fmt.Fprintln(out)
		c.FlagSet.PrintDefaults()
	}
}

// commander represents a top-level command with subcommands.
type commander []*command

// run runs the command and returns the process exit code.
func (c commander) run(flagSet *flag.FlagSet, cmdName string, usage *template.Template, args []string) int {
	// Parse flags.
	flagSet.Usage = func() {
		data := struct {
			FlagUsage func() string
			Commands  []*command
		}{
			FlagUsage: func() string { flagSet.PrintDefaults(); return "" },
			Commands:  c,
		}
		if err := usage.Execute(flagSet.Output(), data); err != nil {
			log.Fatal(err)
		}
	}
	if !flagSet.Parsed() {
		if err := flagSet.Parse(args); err == flag.ErrHelp {
			return 0
		} else if err != nil {
			return 2
		}
	}

	// Print usage if the command is "help".
	if flagSet.Arg(0) == "help" || flagSet.NArg() == 0 {
		flagSet.Usage()
		return 0
	}

	// Configure default usage funcs for commands.
	for _, cmd := range c {
		cmd.FlagSet.Usage = func() { cmd.usage(cmdName) }
	}

	// Find the subcommand to execute.
	name := flagSet.Arg(0)
	for _, cmd := range c {
		if !cmd.matches(name) {
			continue
		}

		// Parse subcommand flags.
		args := flagSet.Args()[1:]
		if err := cmd.FlagSet.Parse(args); err == flag.ErrHelp {
			return 0
		} else if err != nil {
			return 2
		}

		// Execute the subcommand.
		if err := cmd.handler(cmd.FlagSet.Args()); err != nil {
			if _, ok := err.(*usageError); ok {
				log.Println(err)
				cmd.FlagSet.Usage()
				return 2
			}
			if e, ok := err.(*exitCodeError); ok {
				if e.error != nil {
					log.Println(e.error)
				}
				return e.exitCode
			}
			log.Println(err)
			return 1
		}
		return 0
	}
	log.Printf("%s: unknown subcommand %q", cmdName, name)
	log.Printf("Run '%s help' for usage.", cmdName)
	return 2
}

func hasFlags(flagSet *flag.FlagSet) bool {
	var ok bool
	flagSet.VisitAll(func(*flag.Flag) { ok = true })
	return ok
}

// usageError is an error type that subcommands can return in order to signal
// that a usage error has occurred.
type usageError struct {
	error
}

// exitCodeError is an error type that subcommands can return in order to
// specify the exact exit code.
type exitCodeError struct {
	error
	exitCode int
}
