package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/browse/internal/application/port"
	"github.com/bnema/browse/internal/application/usecase"
	"github.com/bnema/browse/internal/domain/entity"
	"github.com/bnema/browse/internal/domain/session"
)

const maxListedTitles = 3

// SessionLine renders one session summary.
func (t *Theme) SessionLine(info entity.SessionInfo, now time.Time) string {
	var b strings.Builder
	b.WriteString(t.Highlight.Render(string(info.SessionID)))
	b.WriteString(" ")
	b.WriteString(t.BadgeMuted.Render(plural(info.TabCount, "tab")))
	b.WriteString(" ")
	b.WriteString(t.BadgeMuted.Render(plural(info.EntryCount, "entry")))
	b.WriteString(" ")
	b.WriteString(t.Subtle.Render(usecase.GetRelativeTime(info.SavedAt, now)))
	if !info.Readable {
		b.WriteString(" ")
		b.WriteString(t.WarningStyle.Render("unreadable"))
	}

	titles := info.Titles
	extra := 0
	if len(titles) > maxListedTitles {
		extra = len(titles) - maxListedTitles
		titles = titles[:maxListedTitles]
	}
	for _, title := range titles {
		b.WriteString("\n    ")
		b.WriteString(t.Subtle.Render(title))
	}
	if extra > 0 {
		b.WriteString("\n    ")
		b.WriteString(t.Subtle.Render(fmt.Sprintf("... and %d more", extra)))
	}
	return b.String()
}

// SessionDetail renders every tab of a window with its current entry marked.
func (t *Theme) SessionDetail(ws entity.WindowSession) string {
	var b strings.Builder
	for i, tab := range ws.Tabs {
		fmt.Fprintf(&b, "%s\n", t.Title.Render(fmt.Sprintf("Tab %d", i+1)))
		if tab.IsEmpty() {
			fmt.Fprintf(&b, "  %s\n", t.Subtle.Render("(empty)"))
			continue
		}
		for j, entry := range tab.Entries {
			marker := "  "
			line := entryLabel(entry)
			if j == tab.CurrentIndex {
				marker = t.Highlight.Render("> ")
				line = t.Highlight.Render(line)
			}
			fmt.Fprintf(&b, "  %s%s\n", marker, line)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// BackForward renders the back and forward menus of a tab.
func (t *Theme) BackForward(back, forward []session.MenuItem) string {
	var b strings.Builder
	b.WriteString(t.Title.Render("Back"))
	for _, item := range back {
		fmt.Fprintf(&b, "\n  %s", entryLabel(item.Entry))
	}
	b.WriteString("\n")
	b.WriteString(t.Title.Render("Forward"))
	for _, item := range forward {
		fmt.Fprintf(&b, "\n  %s", entryLabel(item.Entry))
	}
	return b.String()
}

// TabFallbacks renders one warning per tab, e.g. outcome "opened the home page".
func (t *Theme) TabFallbacks(fallbacks []usecase.TabFallback, outcome string) string {
	lines := make([]string, 0, len(fallbacks))
	for _, fb := range fallbacks {
		lines = append(lines, t.WarningStyle.Render(fmt.Sprintf("tab %d %s: %v", fb.Tab+1, outcome, fb.Err)))
	}
	return strings.Join(lines, "\n")
}

// PlaceLine renders one place.
func (t *Theme) PlaceLine(p *entity.Place) string {
	mark := "  "
	if p.Bookmarked {
		mark = t.Highlight.Render("* ")
	}
	line := mark + t.Title.Render(p.DisplayTitle())
	if p.Title != "" {
		line += " " + t.Subtle.Render(p.URL)
	}
	if p.VisitCount > 0 {
		line += " " + t.BadgeMuted.Render(plural(int(p.VisitCount), "visit"))
	}
	return line
}

// DownloadStatus renders a record's state as a badge.
func (t *Theme) DownloadStatus(rec entity.DownloadRecord) string {
	switch rec.Status {
	case entity.DownloadFinished:
		return t.Badge.Render("finished")
	case entity.DownloadError:
		return t.ErrorStyle.Render("error")
	case entity.DownloadCancelled:
		return t.WarningStyle.Render("cancelled")
	case entity.DownloadStarted:
		return t.BadgeMuted.Render(fmt.Sprintf("%d%%", rec.ProgressPercent))
	default:
		return t.BadgeMuted.Render(string(rec.Status))
	}
}

// JournalLine renders one journal object.
func (t *Theme) JournalLine(obj *entity.JournalObject) string {
	line := t.Title.Render(obj.Metadata[entity.MetaTitle])
	if mt := obj.Metadata[entity.MetaMimeType]; mt != "" {
		line += " " + t.BadgeMuted.Render(mt)
	}
	if size := obj.Metadata[entity.MetaSize]; size != "" {
		line += " " + t.Subtle.Render(size+" bytes")
	}
	if desc := obj.Metadata[entity.MetaDescription]; desc != "" {
		line += "\n    " + t.Subtle.Render(desc)
	}
	if obj.FilePath != "" {
		line += "\n    " + t.Subtle.Render(obj.FilePath)
	}
	return line
}

// Notice renders a user notice in a box.
func (t *Theme) Notice(n port.Notice) string {
	title := t.Title.Render(n.Title)
	switch n.Type {
	case port.NotificationError:
		title = t.ErrorStyle.Bold(true).Render(n.Title)
	case port.NotificationWarning:
		title = t.WarningStyle.Bold(true).Render(n.Title)
	case port.NotificationSuccess:
		title = t.SuccessStyle.Bold(true).Render(n.Title)
	}
	body := title
	if n.Message != "" {
		body += "\n" + n.Message
	}
	if len(n.Actions) > 0 {
		labels := make([]string, len(n.Actions))
		for i, a := range n.Actions {
			labels[i] = t.BadgeMuted.Render(a.Label)
		}
		body += "\n" + strings.Join(labels, " ")
	}
	return t.Box.Render(body)
}

func entryLabel(e entity.HistoryEntry) string {
	if e.Title == "" {
		return e.URL
	}
	return e.Title + " (" + e.URL + ")"
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	if strings.HasSuffix(word, "y") {
		return fmt.Sprintf("%d %sies", n, strings.TrimSuffix(word, "y"))
	}
	return fmt.Sprintf("%d %ss", n, word)
}
