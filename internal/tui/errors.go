package tui

import (
	"errors"
	"strings"

	"github.com/dockflow/lawyer-console/internal/service"
)

// humanizeError turns service errors into messages a lawyer at the console
// can act on. Transport-level connectivity failures collapse into a single
// "server unreachable" line instead of leaking dial diagnostics.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Неверный email или пароль"
	case errors.Is(err, service.ErrAccessDenied):
		return "Доступ разрешён только сотрудникам"
	case errors.Is(err, service.ErrUnauthorized):
		return "Сессия истекла, войдите заново"
	case errors.Is(err, service.ErrInvalidChat):
		return "Чат не найден"
	case errors.Is(err, service.ErrEmptyText):
		return "Нельзя отправить пустое сообщение"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Сервер недоступен"
	}

	return err.Error()
}
