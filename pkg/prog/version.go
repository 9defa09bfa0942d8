package prog

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Version is the version of the tool. It is overridden at build time with
// -ldflags "-X src.strided.sh/pkg/prog.Version=...".
var Version = "0.1.0-dev"

// VersionProgram prints the version when -version is given.
type VersionProgram struct {
	version bool
	json    *bool
}

// RegisterFlags registers -version.
func (p *VersionProgram) RegisterFlags(fs *FlagSet) {
	fs.BoolVar(&p.version, "version", false, "show version and quit")
	p.json = fs.JSON()
}

// Run prints the version, or returns ErrNotSuitable if -version was not given.
func (p *VersionProgram) Run(fds [3]*os.File, _ []string) error {
	if !p.version {
		return ErrNotSuitable
	}
	if *p.json {
		return json.NewEncoder(fds[1]).Encode(struct {
			Version   string `json:"version"`
			GoVersion string `json:"goversion"`
		}{Version, runtime.Version()})
	}
	fmt.Fprintln(fds[1], "Version:", Version)
	fmt.Fprintln(fds[1], "Go version:", runtime.Version())
	return nil
}
