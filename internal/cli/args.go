package cli

import (
	"strings"

	"github.com/spf13/pflag"
)

// splitArgs separates the root command's arguments into those pflag knows
// how to parse and the names of unknown dash options. An unknown option
// never takes a value, so a bare word after it stays positional.
func splitArgs(fs *pflag.FlagSet, args []string) (known, unknown []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--" {
			return append(known, args[i:]...), unknown
		}
		if len(arg) < 2 || arg[0] != '-' {
			known = append(known, arg)
			continue
		}

		flag, inline := lookupArg(fs, arg)
		if flag == nil {
			unknown = append(unknown, optionName(arg))
			continue
		}

		known = append(known, arg)
		if !inline && flag.NoOptDefVal == "" && i+1 < len(args) {
			i++
			known = append(known, args[i])
		}
	}
	return known, unknown
}

// lookupArg resolves arg to a defined flag. inline reports whether the value
// is already part of arg ("--plan=x", "-px"). Shorthand groups like "-yv"
// resolve to their last flag when every letter is defined.
func lookupArg(fs *pflag.FlagSet, arg string) (flag *pflag.Flag, inline bool) {
	if strings.HasPrefix(arg, "--") {
		name, _, hasValue := strings.Cut(arg[2:], "=")
		if name == "" {
			return nil, false
		}
		return fs.Lookup(name), hasValue
	}

	letters := arg[1:]
	for i := 0; i < len(letters); i++ {
		f := fs.ShorthandLookup(letters[i : i+1])
		if f == nil {
			return nil, false
		}
		if f.NoOptDefVal == "" {
			// A value-taking shorthand swallows the rest of the group.
			return f, i+1 < len(letters)
		}
		flag = f
	}
	return flag, false
}

// optionName strips the dashes and any "=value" from an option.
func optionName(arg string) string {
	name, _, _ := strings.Cut(strings.TrimLeft(arg, "-"), "=")
	return name
}
