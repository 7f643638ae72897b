package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/lidocrawler/internal/crawler/models"
)

const confirmPrompt = "Do you want to continue to download all charts for these? (y/[n]): "

// GetSimpleText prints prompt to w and reads a single line from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptConfirmer asks on the terminal before a crawl starts. Only "y" or
// "Y" confirm; anything else, including an empty answer, declines.
type promptConfirmer struct {
	reader *bufio.Reader
	w      io.Writer
}

func newPromptConfirmer(r io.Reader, w io.Writer) *promptConfirmer {
	return &promptConfirmer{reader: bufio.NewReader(r), w: w}
}

func (p *promptConfirmer) Confirm(ctx context.Context, targets *models.AirportSet, countries []string) (bool, error) {
	answer, err := GetSimpleText(p.reader, confirmPrompt, p.w)
	if err != nil {
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(p.w)
			return false, nil
		}
		return false, err
	}
	return answer == "y" || answer == "Y", nil
}
