package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/bismuthsalamander/beacongap/gapgo"
	"golang.org/x/term"
)

// PrintUpdates draws a progress bar for every update until progress is
// closed. Each update overwrites the previous line.
func PrintUpdates(progress <-chan gapgo.ProgressUpdate, w io.Writer, wg *sync.WaitGroup) {
	defer wg.Done()
	if progress == nil {
		return
	}
	fmt.Fprintln(w, "Starting...")
	for {
		select {
		case update, ok := <-progress:
			if !ok {
				return
			}
			fmt.Fprint(w, "\033[1A\033[K")
			fmt.Fprintln(w, progressLine(update))
		default:
			time.Sleep(50 * time.Millisecond)
		}
	}
}

func progressLine(update gapgo.ProgressUpdate) string {
	var pct float64
	if update.Total > 0 {
		pct = float64(update.Scanned) / float64(update.Total)
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 1; i <= 20; i++ {
		if pct*20 >= float64(i) {
			sb.WriteByte('=')
		} else {
			sb.WriteByte('.')
		}
	}
	sb.WriteByte(']')
	if update.Total > 0 {
		fmt.Fprintf(&sb, " %d/%d", update.Scanned, update.Total)
	}
	fmt.Fprintf(&sb, " %s (%s)", update.Solver, update.CurrentAction)
	return sb.String()
}

// isTerminal reports whether the progress bar's cursor movement will render.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
