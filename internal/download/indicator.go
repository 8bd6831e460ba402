package download

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"
)

// Indicator visualises the progress of one download.
type Indicator interface {
	Start(total, initial int)
	Update(value int)
	Stop()
}

// Logger receives the human-readable skip and success notifications.
type Logger interface {
	Info(msg interface{}, keyvals ...interface{})
}

type nopIndicator struct{}

func (nopIndicator) Start(int, int) {}
func (nopIndicator) Update(int)     {}
func (nopIndicator) Stop()          {}

type nopLogger struct{}

func (nopLogger) Info(interface{}, ...interface{}) {}

// Bar is a terminal progress bar rendering " [=====>   ] 42% [ETA]".
type Bar struct {
	w   io.Writer
	bar *progressbar.ProgressBar
}

// NewBar returns an Indicator drawing on w. It is meant to be passed to
// WithIndicator as a factory so every download gets its own bar.
func NewBar(w io.Writer) Indicator {
	return &Bar{w: w}
}

// Start draws an empty bar sized for total units at initial.
func (b *Bar) Start(total, initial int) {
	b.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(b.w),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerPadding: "░",
			BarStart:      " [",
			BarEnd:        "]",
		}),
	)
	_ = b.bar.Set(initial)
}

// Update moves the bar to value.
func (b *Bar) Update(value int) {
	if b.bar == nil {
		return
	}
	_ = b.bar.Set(value)
}

// Stop ends the bar line. Calling Stop on a bar that never started is a no-op.
func (b *Bar) Stop() {
	if b.bar == nil {
		return
	}
	b.bar = nil
	fmt.Fprintln(b.w)
}
