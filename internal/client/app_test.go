package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/vitrine/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUI struct {
	err    error
	called bool
}

func (s *stubUI) Run(ctx context.Context) error {
	s.called = true
	return s.err
}

func TestNewApp_NilUI(t *testing.T) {
	app, err := NewApp(nil, logger.Nop())
	require.Error(t, err)
	assert.Nil(t, app)
}

func TestApp_Run(t *testing.T) {
	tests := []struct {
		name    string
		uiErr   error
		wantErr bool
	}{
		{name: "clean exit"},
		{name: "ui failure", uiErr: errors.New("terminal gone"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui := &stubUI{err: tt.uiErr}
			app, err := NewApp(ui, logger.Nop())
			require.NoError(t, err)

			err = app.Run(context.Background())
			assert.True(t, ui.called)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.uiErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
