package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/dockflow/lawyer-console/models"
)

// chatsModel holds the conversation list exactly as the server returned it.
// The cursor never survives past the end of a shrunken list.
type chatsModel struct {
	chats   []models.Chat
	idx     int
	loading bool
	spinner spinner.Model
	lastErr error
}

func newChatsModel() chatsModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return chatsModel{spinner: s, loading: true}
}

func (m chatsModel) current() (models.Chat, bool) {
	if len(m.chats) == 0 || m.idx < 0 || m.idx >= len(m.chats) {
		return models.Chat{}, false
	}
	return m.chats[m.idx], true
}

func chatTitle(c models.Chat) string {
	if c.VisitorID != "" {
		return fmt.Sprintf("Чат #%d · посетитель %s", c.ID, fitText(c.VisitorID, 20))
	}
	return fmt.Sprintf("Чат #%d", c.ID)
}

func (m chatsModel) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" Загрузка...\n")
	} else if len(m.chats) == 0 {
		b.WriteString("Обращений пока нет\n")
	} else {
		for i, chat := range m.chats {
			line := chatTitle(chat)
			if ts := formatTimestamp(chat.CreatedAt); ts != "" {
				line += "  " + helpStyle.Render(ts)
			}
			if i == m.idx {
				b.WriteString(cursorStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
	}

	if m.lastErr != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + humanizeError(m.lastErr)))
		b.WriteString("\n")
	}

	return renderPage("DOCKFLOW │ ОБРАЩЕНИЯ", strings.TrimRight(b.String(), "\n"), "enter: открыть │ r: обновить │ l: выйти из аккаунта │ q: выход")
}
