package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/dockflow/lawyer-console/models"
)

// historyWindow limits how many conversation lines are rendered at once. The
// window always ends at the selection so fresh messages stay visible.
const historyWindow = 15

// chatModel is the open conversation: the composed message view (confirmed
// history plus pending echoes at the tail), a selection cursor for copying,
// and the compose input which keeps focus the whole time.
type chatModel struct {
	chat    models.Chat
	items   []models.Message
	idx     int
	input   textinput.Model
	loading bool
	sending bool
	status  string
	lastErr error
}

func newChatModel(chat models.Chat) chatModel {
	input := textinput.New()
	input.Placeholder = "сообщение"
	input.CharLimit = 4000
	input.Width = 50
	input.Focus()

	return chatModel{chat: chat, input: input, loading: true}
}

func (m chatModel) current() (models.Message, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Message{}, false
	}
	return m.items[m.idx], true
}

// setItems replaces the rendered view and pins the cursor to the newest
// message, matching the reading position a lawyer expects after a refresh.
func (m *chatModel) setItems(items []models.Message) {
	m.items = items
	m.idx = len(items) - 1
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m chatModel) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString("Загрузка...\n")
	} else if len(m.items) == 0 {
		b.WriteString("Сообщений пока нет\n")
	} else {
		start := 0
		if len(m.items) > historyWindow {
			start = m.idx - historyWindow + 1
			if start < 0 {
				start = 0
			}
			if start+historyWindow > len(m.items) {
				start = len(m.items) - historyWindow
			}
		}
		if start > 0 {
			b.WriteString(helpStyle.Render("  ···"))
			b.WriteString("\n")
		}
		for i := start; i < len(m.items) && i < start+historyWindow; i++ {
			line := formatMessageLine(m.items[i])
			if i == m.idx {
				b.WriteString(cursorStyle.Render("> "))
			} else {
				b.WriteString("  ")
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if m.sending {
		b.WriteString("Сообщение │ [")
		b.WriteString(m.input.View())
		b.WriteString("] ...\n")
	} else {
		b.WriteString("Сообщение │ [")
		b.WriteString(m.input.View())
		b.WriteString("]\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.lastErr != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + humanizeError(m.lastErr)))
		b.WriteString("\n")
	}

	return renderPage("DOCKFLOW │ "+strings.ToUpper(chatTitle(m.chat)), strings.TrimRight(b.String(), "\n"),
		"enter: отправить │ ↑/↓: по истории │ ctrl+y: копировать │ ctrl+r: обновить │ esc: назад")
}
