package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dockflow/lawyer-console/internal/service"
	"github.com/dockflow/lawyer-console/models"
)

type screen int

const (
	screenLogin screen = iota
	screenChats
	screenChat
)

type appMode int

const (
	modeLogin appMode = iota
	modeMain
)

// echoPeekMsg refreshes the conversation view from local state shortly after
// a send started, so the optimistic echo shows up before the server answers.
type echoPeekMsg struct {
	chatID int64
	items  []models.Message
}

type appModel struct {
	ctx           context.Context
	services      *service.ClientServices
	mode          appMode
	currentScreen screen

	login loginModel
	chats chatsModel
	chat  chatModel

	session models.Session

	// unauthorized is raised when the server rejects the stored token mid
	// session. The caller must clear the session and restart the login flow.
	unauthorized bool
	logout       bool
	err          error

	resultSession models.Session
}

func newLoginAppModel(ctx context.Context, services *service.ClientServices) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		mode:          modeLogin,
		currentScreen: screenLogin,
		login:         newLoginModel(),
		chats:         newChatsModel(),
	}
}

func newMainAppModel(ctx context.Context, services *service.ClientServices, session models.Session) appModel {
	m := newLoginAppModel(ctx, services)
	m.mode = modeMain
	m.session = session
	m.currentScreen = screenChats
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.mode == modeMain {
		return tea.Batch(m.chats.spinner.Tick, m.cmdLoadChats())
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginDoneMsg:
		m.login.submitting = false
		if msg.err != nil {
			m.login.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.resultSession = msg.session
		return m, tea.Quit

	case chatsLoadedMsg:
		m.chats.loading = false
		if msg.err != nil {
			if errors.Is(msg.err, service.ErrUnauthorized) {
				m.unauthorized = true
				return m, tea.Quit
			}
			m.chats.lastErr = msg.err
			return m, nil
		}
		m.chats.lastErr = nil
		m.chats.chats = msg.chats
		if m.chats.idx >= len(m.chats.chats) {
			m.chats.idx = len(m.chats.chats) - 1
		}
		if m.chats.idx < 0 {
			m.chats.idx = 0
		}
		return m, nil

	case messagesLoadedMsg:
		if m.currentScreen != screenChat || msg.chatID != m.chat.chat.ID {
			return m, nil
		}
		m.chat.loading = false
		if msg.err != nil {
			if errors.Is(msg.err, service.ErrUnauthorized) {
				m.unauthorized = true
				return m, tea.Quit
			}
			m.chat.lastErr = msg.err
			return m, nil
		}
		m.chat.lastErr = nil
		m.chat.setItems(msg.items)
		return m, nil

	case echoPeekMsg:
		if m.currentScreen == screenChat && m.chat.sending && msg.chatID == m.chat.chat.ID {
			m.chat.setItems(msg.items)
		}
		return m, nil

	case messageSentMsg:
		if m.currentScreen != screenChat || msg.chatID != m.chat.chat.ID {
			return m, nil
		}
		m.chat.sending = false
		m.chat.setItems(msg.items)
		if msg.err != nil {
			if errors.Is(msg.err, service.ErrUnauthorized) {
				m.unauthorized = true
				return m, tea.Quit
			}
			m.chat.lastErr = msg.err
			return m, nil
		}
		m.chat.lastErr = nil
		return m, nil

	case copiedMsg:
		m.chat.status = "Скопировано!"
		return m, cmdClearStatus()

	case copyFailedMsg:
		m.chat.lastErr = msg.err
		return m, nil

	case clearStatusMsg:
		m.chat.status = ""
		return m, nil

	case spinner.TickMsg:
		if m.currentScreen == screenChats && m.chats.loading {
			var cmd tea.Cmd
			m.chats.spinner, cmd = m.chats.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenLogin:
		return m.updateLogin(msg)
	case screenChats:
		return m.updateChats(msg)
	case screenChat:
		return m.updateChat(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenLogin:
		body = m.login.View()
	case screenChats:
		body = m.chats.View()
	case screenChat:
		body = m.chat.View()
	}
	return appStyle.Render(body)
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.hardKey):
			m.err = ErrUserQuit
			return m, tea.Quit
		case key.Matches(keyMsg, keys.tab):
			m.login = focusNextLogin(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login = focusPrevLogin(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}

			email := m.login.email()
			pass := m.login.password()
			if email == "" || pass == "" {
				m.login.errMsg = "Email и пароль обязательны"
				return m, nil
			}
			if !strings.Contains(email, "@") {
				m.login.errMsg = "Некорректный email"
				return m, nil
			}

			m.login.errMsg = ""
			m.login.submitting = true
			return m, m.cmdLogin(email, pass)
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateChats(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.chats.idx > 0 {
			m.chats.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.chats.idx < len(m.chats.chats)-1 {
			m.chats.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		chat, ok := m.chats.current()
		if !ok {
			return m, nil
		}
		m.chat = newChatModel(chat)
		m.currentScreen = screenChat
		return m, m.cmdLoadMessages(chat.ID)
	case key.Matches(keyMsg, keys.refresh):
		if m.chats.loading {
			return m, nil
		}
		m.chats.loading = true
		return m, tea.Batch(m.chats.spinner.Tick, m.cmdLoadChats())
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateChat(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.hardKey):
			m.err = ErrUserQuit
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenChats
			return m, nil
		case key.Matches(keyMsg, keys.arrowUp):
			if m.chat.idx > 0 {
				m.chat.idx--
			}
			return m, nil
		case key.Matches(keyMsg, keys.arrowDn):
			if m.chat.idx < len(m.chat.items)-1 {
				m.chat.idx++
			}
			return m, nil
		case key.Matches(keyMsg, keys.reload):
			if m.chat.loading {
				return m, nil
			}
			m.chat.loading = true
			return m, m.cmdLoadMessages(m.chat.chat.ID)
		case key.Matches(keyMsg, keys.copy):
			item, ok := m.chat.current()
			if !ok || item.Text == "" {
				return m, nil
			}
			return m, cmdCopyToClipboard(item.Text)
		case key.Matches(keyMsg, keys.enter):
			if m.chat.sending {
				return m, nil
			}

			text := strings.TrimSpace(m.chat.input.Value())
			if text == "" {
				m.chat.status = "Нельзя отправить пустое сообщение"
				return m, cmdClearStatus()
			}

			m.chat.status = ""
			m.chat.lastErr = nil
			m.chat.sending = true
			m.chat.input.Reset()
			return m, tea.Batch(m.cmdSend(m.chat.chat.ID, text), m.cmdPeekEcho(m.chat.chat.ID))
		}
	}

	var cmd tea.Cmd
	m.chat.input, cmd = m.chat.input.Update(msg)
	return m, cmd
}

func (m appModel) cmdLogin(email, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		session, err := auth.Login(ctx, email, password)
		return loginDoneMsg{session: session, err: err}
	}
}

func (m appModel) cmdLoadChats() tea.Cmd {
	ctx := m.ctx
	svc := m.services.ChatService
	return func() tea.Msg {
		chats, err := svc.ListChats(ctx)
		return chatsLoadedMsg{chats: chats, err: err}
	}
}

func (m appModel) cmdLoadMessages(chatID int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.MessageService
	return func() tea.Msg {
		items, err := svc.FetchMessages(ctx, chatID)
		return messagesLoadedMsg{chatID: chatID, items: items, err: err}
	}
}

func (m appModel) cmdSend(chatID int64, text string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.MessageService
	return func() tea.Msg {
		_, err := svc.SendMessage(ctx, chatID, text, models.SenderLawyer)
		return messageSentMsg{chatID: chatID, items: svc.Messages(chatID), err: err}
	}
}

// cmdPeekEcho re-reads local conversation state shortly after a send was
// dispatched. The echo is appended before the network round-trip, so this is
// enough to show it while the request is still in flight.
func (m appModel) cmdPeekEcho(chatID int64) tea.Cmd {
	svc := m.services.MessageService
	return tea.Tick(80*time.Millisecond, func(time.Time) tea.Msg {
		return echoPeekMsg{chatID: chatID, items: svc.Messages(chatID)}
	})
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func focusNextLogin(m loginModel) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevLogin(m loginModel) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
