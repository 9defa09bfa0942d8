// Package rangetool implements the main subprogram of strided: resolving a
// range against a length, optionally in legacy mode or as the target of a
// strided assignment, and recording each query in a history database.
package rangetool

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"src.strided.sh/pkg/errutil"
	"src.strided.sh/pkg/logutil"
	"src.strided.sh/pkg/prog"
	"src.strided.sh/pkg/slice"
	"src.strided.sh/pkg/store"
	"src.strided.sh/pkg/sys"
	"src.strided.sh/pkg/vals"
)

var logger = logutil.GetLogger("[rangetool] ")

// Names of the -source flag values.
const (
	SourceRandom = "random"
	SourceSized  = "sized"
	SourceIter   = "iter"
)

// MaxAssignLength is the largest -len accepted with -assign.
const MaxAssignLength = 1 << 16

// Program is the main subprogram. It always runs.
type Program struct {
	length int
	legacy bool
	assign bool
	source string

	json *bool
	yaml *bool
	db   *string
}

// RegisterFlags registers the flags of the main subprogram.
func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	fs.IntVar(&p.length, "len", -1, "length of the sequence the range applies to")
	fs.BoolVar(&p.legacy, "legacy", false,
		"resolve with the non-clamping legacy rules; the step is ignored")
	fs.BoolVar(&p.assign, "assign", false,
		"assign the values after the range to a list of the given length")
	fs.StringVar(&p.source, "source", SourceRandom,
		"how the assigned values are exposed: random, sized or iter")
	p.json = fs.JSON()
	p.yaml = fs.YAML()
	p.db = fs.DB()
	// Ranges like "-2:" are not flags.
	fs.Positional(IsRange)
}

// Run runs the main subprogram.
func (p *Program) Run(fds [3]*os.File, args []string) (err error) {
	if len(args) == 0 {
		return prog.BadUsage("missing range")
	}
	if p.length < 0 {
		return prog.BadUsage("-len must be given and non-negative")
	}
	if *p.json && *p.yaml {
		return prog.BadUsage("-json and -yaml cannot be used together")
	}
	values := args[1:]
	if !p.assign && len(values) > 0 {
		return prog.BadUsage("values are only allowed with -assign")
	}
	if p.assign && p.legacy {
		return prog.BadUsage("-assign cannot be used with -legacy")
	}
	if p.assign && p.length > MaxAssignLength {
		return prog.BadUsage(fmt.Sprintf("-len must be at most %d with -assign", MaxAssignLength))
	}

	s, err := ParseRange(args[0])
	if err != nil {
		return err
	}

	var rep *Report
	switch {
	case p.legacy:
		rep, err = resolveLegacy(s, p.length)
	case p.assign:
		rep, err = resolveAssign(s, p.length, p.source, values)
	default:
		rep, err = resolve(s, p.length)
	}
	if err != nil {
		return err
	}

	switch {
	case *p.json:
		err = rep.WriteJSON(fds[1])
	case *p.yaml:
		err = rep.WriteYAML(fds[1])
	default:
		mapWidth := 0
		if sys.IsATTY(fds[1].Fd()) {
			mapWidth = sys.Width(fds[1]) - len("map: ")
		}
		rep.WriteText(fds[1], mapWidth)
	}
	if err != nil {
		return err
	}

	if *p.db != "" {
		return record(*p.db, p.queryText(args))
	}
	return nil
}

// queryText reconstructs a command line equivalent to the current invocation.
func (p *Program) queryText(args []string) string {
	words := []string{"-len", strconv.Itoa(p.length)}
	if p.legacy {
		words = append(words, "-legacy")
	}
	if p.assign {
		words = append(words, "-assign", "-source", p.source)
	}
	words = append(words, args...)
	return strings.Join(words, " ")
}

func resolve(s slice.Slice, length int) (*Report, error) {
	r, err := s.Indices(length)
	if err != nil {
		return nil, err
	}
	return newReport(s, length, r), nil
}

func resolveLegacy(s slice.Slice, length int) (*Report, error) {
	start, stop, err := s.FixLegacy(func() (int, error) { return length, nil })
	if err != nil {
		return nil, err
	}
	cstart, cstop := slice.ClampLegacy(length, start, stop)
	count := cstop - cstart
	if count < 0 {
		count = 0
	}
	rep := newReport(s, length, slice.Range{Start: cstart, Stop: cstop, Step: 1, Count: count})
	rep.Legacy = true
	rep.Start, rep.Stop = start, stop
	return rep, nil
}

func resolveAssign(s slice.Slice, length int, source string, args []string) (*Report, error) {
	values := make([]any, len(args))
	for i, arg := range args {
		values[i] = ParseValue(arg)
	}
	src, err := makeSource(source, values)
	if err != nil {
		return nil, err
	}
	r, err := s.Indices(length)
	if err != nil {
		return nil, err
	}

	target := make([]any, length)
	for i := range target {
		target[i] = i
	}
	list := vals.MakeList(target...)
	err = s.Assign(length, func(i int, v any) error {
		list = list.Assoc(i, v)
		return nil
	}, src)
	if err != nil {
		return nil, err
	}

	rep := newReport(s, length, r)
	rep.Source = slice.Classify(src).String()
	rep.Result = list.Values()
	return rep, nil
}

func makeSource(name string, values []any) (any, error) {
	switch name {
	case SourceRandom:
		return vals.MakeList(values...), nil
	case SourceSized:
		return sizedValues(values), nil
	case SourceIter:
		return vals.IterFunc(func(yield func(any) bool) {
			for _, v := range values {
				if !yield(v) {
					return
				}
			}
		}), nil
	default:
		return nil, prog.BadUsage(fmt.Sprintf("unknown -source %q", name))
	}
}

// sizedValues has a length and can be iterated, but cannot be indexed.
type sizedValues []any

func (sv sizedValues) Len() int { return len(sv) }

func (sv sizedValues) Iterate(f func(any) bool) {
	for _, v := range sv {
		if !f(v) {
			return
		}
	}
}

func record(dbPath, text string) (err error) {
	st, err := store.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("cannot open history: %w", err)
	}
	defer func() { err = errutil.Multi(err, st.Close()) }()
	seq, err := st.AddQuery(text)
	if err != nil {
		return fmt.Errorf("cannot record query: %w", err)
	}
	logger.Printf("recorded query %d: %s", seq, text)
	return nil
}
