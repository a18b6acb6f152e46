package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dockflow/lawyer-console/internal/adapter"
)

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "nil", in: nil, want: nil},
		{name: "unauthorized", in: fmt.Errorf("%w: token expired", adapter.ErrUnauthorized), want: ErrUnauthorized},
		{name: "not found", in: fmt.Errorf("%w: chat not found", adapter.ErrNotFound), want: ErrInvalidChat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mapAdapterError(tt.in))
		})
	}
}

func TestMapAdapterError_PassthroughUnknown(t *testing.T) {
	assert.Equal(t, assert.AnError, mapAdapterError(assert.AnError))
}

func TestMapLoginError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "unauthorized is wrong credentials", in: adapter.ErrUnauthorized, want: ErrInvalidCredentials},
		{name: "bad request is wrong credentials", in: adapter.ErrBadRequest, want: ErrInvalidCredentials},
		{name: "forbidden is access denied", in: adapter.ErrForbidden, want: ErrAccessDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapLoginError(tt.in), tt.want)
		})
	}
}
