package rangetool

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
	"src.strided.sh/pkg/slice"
	"src.strided.sh/pkg/vals"
)

// MaxPositions is the maximum number of positions included in a Report.
const MaxPositions = 64

// Report is the result of resolving a range against a length.
type Report struct {
	Slice  string `json:"slice" yaml:"slice"`
	Length int    `json:"length" yaml:"length"`
	Legacy bool   `json:"legacy,omitempty" yaml:"legacy,omitempty"`

	Start int `json:"start" yaml:"start"`
	Stop  int `json:"stop" yaml:"stop"`
	Step  int `json:"step" yaml:"step"`
	Count int `json:"count" yaml:"count"`

	// Positions are the first MaxPositions positions the range visits.
	Positions []int `json:"positions" yaml:"positions,flow"`
	Truncated bool  `json:"truncated,omitempty" yaml:"truncated,omitempty"`

	Source string `json:"source,omitempty" yaml:"source,omitempty"`
	Result []any  `json:"result,omitempty" yaml:"result,omitempty,flow"`
}

func newReport(s slice.Slice, length int, r slice.Range) *Report {
	rep := &Report{
		Slice: s.Repr(), Length: length,
		Start: r.Start, Stop: r.Stop, Step: r.Step, Count: r.Count,
		Positions: []int{},
	}
	r.Each(func(i, pos int) bool {
		if i == MaxPositions {
			rep.Truncated = true
			return false
		}
		rep.Positions = append(rep.Positions, pos)
		return true
	})
	return rep
}

// WriteJSON writes the report as a single line of JSON.
func (rep *Report) WriteJSON(w io.Writer) error {
	return json.NewEncoder(w).Encode(rep)
}

// WriteYAML writes the report as a YAML document.
func (rep *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return err
	}
	return enc.Close()
}

// WriteText writes the report in a human-readable format. If mapWidth is
// positive and not smaller than the length, a line marking the visited
// positions is also written.
func (rep *Report) WriteText(w io.Writer, mapWidth int) {
	fmt.Fprintln(w, rep.Slice)
	fmt.Fprintln(w, "length:", rep.Length)
	if rep.Legacy {
		fmt.Fprintf(w, "legacy: start=%d stop=%d\n", rep.Start, rep.Stop)
	} else {
		fmt.Fprintf(w, "range: start=%d stop=%d step=%d count=%d\n",
			rep.Start, rep.Stop, rep.Step, rep.Count)
	}
	fmt.Fprintln(w, "positions:", formatPositions(rep.Positions, rep.Truncated))
	if mapWidth > 0 && rep.Length <= mapWidth && !rep.Truncated {
		fmt.Fprintln(w, "map:", positionMap(rep.Length, rep.Positions))
	}
	if rep.Source != "" {
		fmt.Fprintln(w, "source:", rep.Source)
		fmt.Fprintln(w, "result:", vals.MakeList(rep.Result...).Repr())
	}
}

func formatPositions(positions []int, truncated bool) string {
	if len(positions) == 0 {
		return "(none)"
	}
	var sb strings.Builder
	for i, pos := range positions {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, pos)
	}
	if truncated {
		sb.WriteString(" ...")
	}
	return sb.String()
}

// positionMap returns a string of the given length with 'x' at visited
// positions and '.' elsewhere.
func positionMap(length int, positions []int) string {
	b := []byte(strings.Repeat(".", length))
	for _, pos := range positions {
		b[pos] = 'x'
	}
	return string(b)
}
