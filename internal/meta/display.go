package meta

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
)

// maxDisplayWidth is the widest title or author string shown before truncation.
const maxDisplayWidth = 35

// UnknownAuthor is displayed when a track carries no artist tag.
const UnknownAuthor = "Unknown author"

// DisplayTitle truncates a title to 35 cells, marking the cut with an ellipsis.
// A string of exactly 35 cells is returned untouched.
func DisplayTitle(title string) string {
	if runewidth.StringWidth(title) <= maxDisplayWidth {
		return title
	}
	return runewidth.Truncate(title, maxDisplayWidth, "") + "..."
}

// DisplayAuthor turns a raw "/"-delimited artist tag into a display string.
// Multiple values are joined with ", ", the result is truncated like a title
// and an empty tag becomes UnknownAuthor.
func DisplayAuthor(author string) string {
	if author == "" {
		return UnknownAuthor
	}
	joined := strings.Join(strings.Split(author, "/"), ", ")
	return DisplayTitle(joined)
}

// Clock formats a playback position as minutes:seconds, seconds zero-padded.
func Clock(d time.Duration) string {
	total := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// DurationClock formats a total track length. The seconds figure is rounded
// up by one so a duration with a truncated fractional tail never displays
// shorter than the true length.
func DurationClock(d time.Duration) string {
	total := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", total/60, total%60+1)
}
