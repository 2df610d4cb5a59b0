package cmd

import (
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
)

// hoistFlags moves flags written after the positional count in front of it,
// so "changelog 5 --format text" parses like "changelog --format text 5".
// Arguments after "--" and numeric tokens such as "-3" stay positional.
// An invocation whose first positional names a subcommand is left untouched
// unless the subcommand name comes first.
func hoistFlags(app *cli.App, args []string) []string {
	if len(args) < 2 {
		return args
	}

	head, rest, flags := args[:1], args[1:], app.Flags
	if sub := app.Command(rest[0]); sub != nil {
		head, rest, flags = args[:2], args[2:], sub.Flags
	}

	takesValue := make(map[string]bool)
	for _, f := range flags {
		_, isBool := f.(*cli.BoolFlag)
		for _, name := range f.Names() {
			takesValue[name] = !isBool
		}
	}

	var moved, positional []string
	for i := 0; i < len(rest); i++ {
		arg := rest[i]
		if arg == "--" {
			positional = append(positional, rest[i+1:]...)
			break
		}
		if !isFlagToken(arg) {
			if len(positional) == 0 && len(head) == 1 && app.Command(arg) != nil {
				return args
			}
			positional = append(positional, arg)
			continue
		}

		moved = append(moved, arg)
		name := strings.TrimLeft(arg, "-")
		if strings.Contains(name, "=") {
			continue
		}
		if takesValue[name] && i+1 < len(rest) {
			i++
			moved = append(moved, rest[i])
		}
	}

	out := make([]string, 0, len(args)+1)
	out = append(out, head...)
	out = append(out, moved...)
	if len(positional) > 0 {
		out = append(out, "--")
		out = append(out, positional...)
	}
	return out
}

func isFlagToken(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	_, err := strconv.Atoi(arg)
	return err != nil
}
