package styles

import (
	"fmt"
	"strings"

	"github.com/colonyops/todoprog/internal/core/todo"
)

const (
	markDone    = "[x]"
	markPending = "[ ]"
)

// RenderTasks renders l as a titled checklist with a done/pending summary.
func RenderTasks(title string, l todo.List) string {
	var b strings.Builder

	b.WriteString(HeaderStyle.Render(title))
	b.WriteString("\n")

	if len(l.Items) == 0 {
		b.WriteString(MutedStyle.Render("  no tasks"))
		b.WriteString("\n")
		return b.String()
	}

	width := len(fmt.Sprint(l.LastID))
	for _, it := range l.Items {
		id := IDStyle.Render(fmt.Sprintf("%*d", width, it.ID))
		if it.Completed {
			fmt.Fprintf(&b, "  %s %s %s\n", id, markDone, DoneStyle.Render(it.Content))
		} else {
			fmt.Fprintf(&b, "  %s %s %s\n", id, markPending, PendingStyle.Render(it.Content))
		}
	}

	done, pending := l.Counts()
	b.WriteString(MutedStyle.Render(fmt.Sprintf("  %d done, %d pending", done, pending)))
	b.WriteString("\n")
	return b.String()
}
