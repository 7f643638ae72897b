package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/lidocrawler/internal/crawler/models"
	"golang.org/x/term"
)

const defaultWidth = 80

// Seams for tests.
var (
	isTerminal = term.IsTerminal
	getSize    = term.GetSize
)

// termProgress renders crawl events as a single status line. On a terminal
// the line is rewritten in place; otherwise every event gets its own line and
// pause countdowns are reported once.
type termProgress struct {
	w       io.Writer
	tty     bool
	width   int
	dirty   bool
	pausing bool
}

func newTermProgress(w io.Writer) *termProgress {
	p := &termProgress{w: w, width: defaultWidth}
	if f, ok := w.(*os.File); ok && isTerminal(int(f.Fd())) {
		p.tty = true
		if cols, _, err := getSize(int(f.Fd())); err == nil && cols > 0 {
			p.width = cols - 1
		}
	}
	return p
}

func (p *termProgress) TargetsResolved(total int, countries []string) {
	filter := ""
	if len(countries) > 0 {
		filter = fmt.Sprintf(" for %v", countries)
	}
	fmt.Fprintf(p.w, "Found %d airports%s.\n", total, filter)
}

func (p *termProgress) AirportSkipped(index, total int, icao string) {
	if p.tty {
		p.status(index, total, "Skipping "+icao)
	}
}

func (p *termProgress) PauseTick(index, total int, remaining int) {
	if !p.tty && p.pausing {
		return
	}
	p.status(index, total, fmt.Sprintf("Disguise Pause: %d seconds remaining", remaining))
	p.pausing = true
}

func (p *termProgress) AirportStarted(index, total int, icao string) {
	p.status(index, total, "Collecting charts for "+icao)
}

func (p *termProgress) ChartDownloaded(index, total int, icao string, chart, charts int, rec models.ChartRecord) {
	p.status(index, total, fmt.Sprintf("Downloading chart %s (%d|%d) '%s %s'", icao, chart, charts, rec.ChartType, rec.ChartName))
}

func (p *termProgress) AirportPersisted(index, total int, icao string, res *models.PersistResult) {
	p.status(index, total, fmt.Sprintf("Saved %s (%d charts, %s)", icao, len(res.ChartIDs), formatBytes(res.Bytes)))
}

// Done ends an in-place status line.
func (p *termProgress) Done() {
	if p.tty && p.dirty {
		fmt.Fprintln(p.w)
		p.dirty = false
	}
}

func (p *termProgress) status(index, total int, text string) {
	p.pausing = false
	line := align(fmt.Sprintf("[%*d/%d] %s", len(fmt.Sprint(total)), index, total, text), p.width)
	if p.tty {
		fmt.Fprint(p.w, "\r"+line)
		p.dirty = true
		return
	}
	fmt.Fprintln(p.w, strings.TrimRight(line, " "))
}

// align pads or truncates text to exactly width runes.
func align(text string, width int) string {
	n := utf8.RuneCountInString(text)
	if n > width {
		return string([]rune(text)[:width])
	}
	return text + strings.Repeat(" ", width-n)
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
