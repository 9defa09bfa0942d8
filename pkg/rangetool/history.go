package rangetool

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"src.strided.sh/pkg/errutil"
	"src.strided.sh/pkg/prog"
	"src.strided.sh/pkg/store"
)

// HistoryProgram lists the recorded queries when -history is given.
type HistoryProgram struct {
	history bool

	json *bool
	yaml *bool
	db   *string
}

// RegisterFlags registers -history and the shared output and database flags.
func (p *HistoryProgram) RegisterFlags(fs *prog.FlagSet) {
	fs.BoolVar(&p.history, "history", false, "list recorded queries and quit")
	p.json = fs.JSON()
	p.yaml = fs.YAML()
	p.db = fs.DB()
}

type historyEntry struct {
	Seq  int    `json:"seq" yaml:"seq"`
	Text string `json:"text" yaml:"text"`
}

// Run lists the recorded queries, or returns prog.ErrNotSuitable if -history
// is not given.
func (p *HistoryProgram) Run(fds [3]*os.File, args []string) (err error) {
	if !p.history {
		return prog.ErrNotSuitable
	}
	if len(args) > 0 {
		return prog.BadUsage("-history takes no arguments")
	}
	if *p.db == "" {
		return prog.BadUsage("-history requires -db or $STRIDED_DB")
	}

	st, err := store.NewStore(*p.db)
	if err != nil {
		return fmt.Errorf("cannot open history: %w", err)
	}
	defer func() { err = errutil.Multi(err, st.Close()) }()

	next, err := st.NextQuerySeq()
	if err != nil {
		return err
	}
	queries, err := st.Queries(0, next)
	if err != nil {
		return err
	}
	entries := make([]historyEntry, len(queries))
	for i, q := range queries {
		entries[i] = historyEntry{q.Seq, q.Text}
	}

	switch {
	case *p.json:
		return json.NewEncoder(fds[1]).Encode(entries)
	case *p.yaml:
		enc := yaml.NewEncoder(fds[1])
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()
	}
	for _, e := range entries {
		fmt.Fprintf(fds[1], "%4d  %s\n", e.Seq, e.Text)
	}
	return nil
}
