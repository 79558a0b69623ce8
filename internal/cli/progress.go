package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/datawhale/worksim/internal/cli/formatter"
	"github.com/datawhale/worksim/internal/generation"
)

const progressBarWidth = 24

// progressObserver draws one line per pipeline phase: the running line
// when a phase starts and a completed bar with counts when it finishes.
type progressObserver struct {
	out io.Writer
}

func newProgressObserver(out io.Writer) *progressObserver {
	return &progressObserver{out: out}
}

func (o *progressObserver) PhaseStarted(phase string, index, total int) {
	fmt.Fprintf(o.out, "%s %s\r",
		formatter.Dim(fmt.Sprintf("[%2d/%d]", index, total)),
		phase)
}

func (o *progressObserver) PhaseCompleted(event generation.PhaseEvent) {
	bar := formatter.Bar(float64(event.Index)/float64(event.Total), progressBarWidth)
	fmt.Fprintf(o.out, "%s %s %s %s\n",
		formatter.Dim(fmt.Sprintf("[%2d/%d]", event.Index, event.Total)),
		bar,
		formatter.Bold(event.Phase),
		formatter.Dim(fmt.Sprintf("%d rows in %s", event.Records, event.Elapsed.Round(time.Millisecond))),
	)
}
