package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

// loginModel holds the state of the credential form: an email input, a masked
// password input and the submission flag that debounces double enter.
type loginModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newLoginModel() loginModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 254
	emailInput.Width = 40
	emailInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return loginModel{inputs: []textinput.Model{emailInput, passwordInput}}
}

func (m loginModel) email() string {
	return strings.TrimSpace(m.inputs[0].Value())
}

func (m loginModel) password() string {
	return m.inputs[1].Value()
}

func (m loginModel) View() string {
	var b strings.Builder
	b.WriteString("Поле    │ Значение\n")
	b.WriteString("────────┼────────────────────────────────────────────\n")
	b.WriteString("Email   │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Пароль  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Войти...]\n")
	} else {
		b.WriteString("\n[Войти]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("DOCKFLOW │ ВХОД ДЛЯ СОТРУДНИКОВ", strings.TrimRight(b.String(), "\n"), "tab: след. поле │ enter: войти")
}
