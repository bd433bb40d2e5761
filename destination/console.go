package destination

import (
	"fmt"
	"io"
	"os"

	"github.com/gaborage/go-beams/event"
	"github.com/gaborage/go-beams/level"
)

// Console writes rendered lines to a terminal or any io.Writer. Its
// formatter carries ANSI color codes for the C and c tokens; patterns
// without those tokens render uncolored.
type Console struct {
	*Core
	out io.Writer
}

// NewConsole returns a console destination writing to stdout.
func NewConsole() *Console {
	return NewConsoleWriter(os.Stdout)
}

// NewConsoleWriter returns a console destination writing to w.
func NewConsoleWriter(w io.Writer) *Console {
	d := &Console{Core: NewCore(), out: w}

	f := d.Formatter()
	f.Escape = "\033["
	f.Reset = "\033[0m"
	f.LevelColors[level.Verbose] = "37m"
	f.LevelColors[level.Debug] = "36m"
	f.LevelColors[level.Info] = "32m"
	f.LevelColors[level.Warning] = "33m"
	f.LevelColors[level.Error] = "31m"

	return d
}

// Log renders the event and writes it as one line.
func (d *Console) Log(e event.Event) {
	line, ok := d.Process(e)
	if !ok {
		return
	}

	d.writeMu.Lock()
	defer d.writeMu.Unlock()
	fmt.Fprintln(d.out, line)
}
