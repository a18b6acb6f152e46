package tui

import (
	"strings"
	"time"

	"github.com/dockflow/lawyer-console/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: выход"))

	return b.String()
}

// senderLabel maps the wire sender value onto the label shown in the
// conversation. Unknown senders are displayed verbatim.
func senderLabel(sender string) string {
	switch sender {
	case models.SenderLawyer:
		return "Вы"
	case models.SenderVisitor:
		return "Клиент"
	case models.SenderAI:
		return "ИИ"
	default:
		return sender
	}
}

// formatMessageLine renders one conversation entry. Pending echoes have no
// server timestamp yet and are marked as in flight.
func formatMessageLine(m models.Message) string {
	label := senderLabel(m.Sender)

	if m.Pending() {
		return pendingStyle.Render(label + ": " + m.Text + "  (отправляется...)")
	}

	ts := formatTimestamp(m.CreatedAt)
	if ts != "" {
		return "[" + ts + "] " + label + ": " + m.Text
	}
	return label + ": " + m.Text
}

// formatTimestamp shortens the ISO-8601 server timestamp to HH:MM local time.
// A timestamp the server sent in an unexpected shape is shown as-is.
func formatTimestamp(createdAt string) string {
	if createdAt == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return createdAt
	}
	return t.Local().Format("15:04")
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}
