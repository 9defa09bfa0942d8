package prog

import (
	"flag"
	"strings"
)

// FlagSet wraps a flag.FlagSet. Flags used by more than one subprogram are
// registered lazily through its methods, so that a Composite only defines
// them once.
type FlagSet struct {
	*flag.FlagSet
	env  Env
	json *bool
	yaml *bool
	db   *string

	positional []func(string) bool
}

// Positional registers a predicate for arguments that must be taken as the
// first positional argument even though they start with "-", like the range
// text "-2:". Such an argument ends flag parsing, as "--" would.
func (fs *FlagSet) Positional(f func(string) bool) {
	fs.positional = append(fs.positional, f)
}

func (fs *FlagSet) isPositional(arg string) bool {
	for _, f := range fs.positional {
		if f(arg) {
			return true
		}
	}
	return false
}

// markPositional returns args with "--" inserted before the first argument
// accepted by a Positional predicate. Values of flags that take one are never
// considered, so "-len -1" keeps -1 as the value of -len.
func (fs *FlagSet) markPositional(args []string) []string {
	if len(fs.positional) == 0 {
		return args
	}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" || arg == "-" || !strings.HasPrefix(arg, "-") {
			// Flag parsing stops here anyway.
			return args
		}
		if fs.isPositional(arg) {
			marked := make([]string, 0, len(args)+1)
			marked = append(marked, args[:i]...)
			marked = append(marked, "--")
			return append(marked, args[i:]...)
		}
		name := strings.TrimLeft(arg, "-")
		if strings.Contains(name, "=") {
			continue
		}
		if f := fs.Lookup(name); f != nil && !isBoolFlag(f) {
			// Skip the value.
			i++
		}
	}
	return args
}

func isBoolFlag(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

// JSON returns a pointer to the value of the -json flag.
func (fs *FlagSet) JSON() *bool {
	if fs.json == nil {
		var json bool
		fs.BoolVar(&json, "json", false, "show output in JSON")
		fs.json = &json
	}
	return fs.json
}

// YAML returns a pointer to the value of the -yaml flag.
func (fs *FlagSet) YAML() *bool {
	if fs.yaml == nil {
		var yaml bool
		fs.BoolVar(&yaml, "yaml", false, "show output in YAML")
		fs.yaml = &yaml
	}
	return fs.yaml
}

// DB returns a pointer to the value of the -db flag, the path to the query
// history database. It defaults to $STRIDED_DB.
func (fs *FlagSet) DB() *string {
	if fs.db == nil {
		var db string
		fs.StringVar(&db, "db", fs.env.DB, "path to the query history database")
		fs.db = &db
	}
	return fs.db
}
