package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/danieljhkim/tidydate/internal/clock"
	"github.com/danieljhkim/tidydate/internal/engine"
	"github.com/danieljhkim/tidydate/internal/fsops"
	"github.com/danieljhkim/tidydate/internal/hash"
)

// colorReporter forwards engine progress to the colored printers.
type colorReporter struct{}

func (colorReporter) Infof(format string, args ...any)  { PrintDim(fmt.Sprintf(format, args...)) }
func (colorReporter) Warnf(format string, args ...any)  { PrintWarning(fmt.Sprintf(format, args...)) }
func (colorReporter) Errorf(format string, args ...any) { PrintError(fmt.Sprintf(format, args...)) }

// quietReporter drops progress lines but keeps warnings and errors on
// stderr, so --json output stays machine-parseable.
type quietReporter struct{}

func (quietReporter) Infof(format string, args ...any) {}
func (quietReporter) Warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
func (quietReporter) Errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// newEngine creates a new engine with real implementations of all dependencies.
func newEngine() *engine.Engine {
	fs := fsops.NewRealFS()
	hasher := hash.NewXXH3Hasher()
	clk := &clock.RealClock{}

	var report engine.Reporter = colorReporter{}
	if jsonOutput {
		report = quietReporter{}
	}

	return engine.New(fs, hasher, clk, promptYesNo, report)
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
