package service

import (
	"errors"

	"github.com/dockflow/lawyer-console/internal/adapter"
)

// mapAdapterError translates transport errors of authenticated calls into the
// service taxonomy. A 401 means the token went stale; a 404 means the chat the
// caller named does not exist on the server. Everything else propagates as the
// transient request failure it is.
func mapAdapterError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, adapter.ErrUnauthorized):
		return ErrUnauthorized
	case errors.Is(err, adapter.ErrNotFound):
		return ErrInvalidChat
	default:
		return err
	}
}

// mapLoginError translates transport errors of the credential exchange. On
// login a 401 means wrong credentials rather than a stale token, and a 403
// means the server itself refused the account.
func mapLoginError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrBadRequest):
		return ErrInvalidCredentials
	case errors.Is(err, adapter.ErrForbidden):
		return ErrAccessDenied
	default:
		return err
	}
}
