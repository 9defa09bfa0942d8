// Package progtest provides a framework for testing subprograms.
//
// The entry point for the framework is the Test function, which accepts a
// *testing.T, a prog.Program implementation under test, and any number of test
// cases.
//
// Test cases are constructed using the That function, followed by method calls
// that add additional information to it.
//
// Example:
//
//	Test(t, someProgram,
//	    That("-len", "10", "::2").WritesStdoutContaining("count: 5"),
//	    That("-bad-flag").ExitsWith(2))
package progtest

import (
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"src.strided.sh/pkg/must"
	"src.strided.sh/pkg/prog"
)

// Case is a test case that can be used in Test.
type Case struct {
	args []string
	want result
}

type result struct {
	exitCode int
	stdout   output
	stderr   output
}

type output struct {
	content string
	partial bool
}

func (o output) String() string {
	if o.partial {
		return "text containing " + quote(o.content)
	}
	return quote(o.content)
}

// That returns a new Case with the specified CLI arguments. The first element
// of os.Args, the program name, is supplied automatically.
func That(args ...string) Case {
	return Case{args: append([]string{"strided"}, args...)}
}

// DoesNothing returns c itself. It is useful to mark tests that otherwise don't
// have any expectations, for example:
//
//	That("-len", "0", ":").DoesNothing()
func (c Case) DoesNothing() Case {
	return c
}

// ExitsWith returns an altered Case that requires the program to return with
// the given exit code.
func (c Case) ExitsWith(code int) Case {
	c.want.exitCode = code
	return c
}

// WritesStdout returns an altered Case that requires the program to write
// exactly the given text to stdout.
func (c Case) WritesStdout(s string) Case {
	c.want.stdout = output{s, false}
	return c
}

// WritesStdoutContaining returns an altered Case that requires the program to
// write output to stdout that contains the given text as a substring.
func (c Case) WritesStdoutContaining(s string) Case {
	c.want.stdout = output{s, true}
	return c
}

// WritesStderr returns an altered Case that requires the program to write
// exactly the given text to stderr.
func (c Case) WritesStderr(s string) Case {
	c.want.stderr = output{s, false}
	return c
}

// WritesStderrContaining returns an altered Case that requires the program to
// write output to stderr that contains the given text as a substring.
func (c Case) WritesStderrContaining(s string) Case {
	c.want.stderr = output{s, true}
	return c
}

// Test runs test cases against a given program.
func Test(t *testing.T, p prog.Program, cases ...Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args, " "), func(t *testing.T) {
			t.Helper()
			r := run(p, c.args)
			if r.exitCode != c.want.exitCode {
				t.Errorf("got exit code %v, want %v", r.exitCode, c.want.exitCode)
			}
			if !matchOutput(r.stdout.content, c.want.stdout) {
				t.Errorf("got stdout %q, want %s", r.stdout.content, c.want.stdout)
			}
			if !matchOutput(r.stderr.content, c.want.stderr) {
				t.Errorf("got stderr %q, want %s", r.stderr.content, c.want.stderr)
			}
		})
	}
}

// Run runs a Program with the given arguments. It returns the exit code and
// output of the program.
//
// It should only be used in tests that need more than what Test offers.
func Run(p prog.Program, args ...string) (exit int, stdout, stderr string) {
	r := run(p, append([]string{"strided"}, args...))
	return r.exitCode, r.stdout.content, r.stderr.content
}

func run(p prog.Program, args []string) result {
	// Stdin is always empty.
	r0, w0 := must.OK2(os.Pipe())
	must.OK(w0.Close())
	defer r0.Close()

	r1, w1 := must.OK2(os.Pipe())
	r2, w2 := must.OK2(os.Pipe())

	// The outputs are read concurrently so that a program writing more than
	// the pipe buffer doesn't block forever.
	var wg sync.WaitGroup
	var stdout, stderr string
	wg.Add(2)
	go func() {
		stdout = readAllAndClose(r1)
		wg.Done()
	}()
	go func() {
		stderr = readAllAndClose(r2)
		wg.Done()
	}()

	exitCode := prog.Run([3]*os.File{r0, w1, w2}, args, p)
	w1.Close()
	w2.Close()
	wg.Wait()

	return result{exitCode, output{stdout, false}, output{stderr, false}}
}

func readAllAndClose(r *os.File) string {
	defer r.Close()
	return string(must.OK1(io.ReadAll(r)))
}

func matchOutput(got string, want output) bool {
	if want.partial {
		return strings.Contains(got, want.content)
	}
	return got == want.content
}

func quote(s string) string {
	if len(s) > 80 {
		s = s[:80] + "..."
	}
	return "\"" + strings.ReplaceAll(s, "\n", "\\n") + "\""
}
