//go:build unit

package settings_test

import (
	"strings"
	"testing"
	"time"

	"groomer-crm/internal/domain/appointment"
	"groomer-crm/internal/domain/settings"
	"groomer-crm/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2030, 3, 14, 12, 0, 0, 0, time.UTC)

func TestDefaults(t *testing.T) {
	ownerID := uuid.New()
	s := settings.Defaults(ownerID, now)

	assert.Equal(t, ownerID, s.OwnerID())
	assert.Equal(t, appointment.DefaultDurationMinutes, s.DefaultDuration().Minutes())
	assert.Empty(t, s.BusinessName())
	assert.Nil(t, s.BusinessEmail())
}

func TestNew(t *testing.T) {
	tests := []struct {
		name         string
		values       settings.Values
		wantDuration int
		errIs        error
	}{
		{
			name:         "全項目指定",
			values:       settings.Values{BusinessName: "Paws & Claws", BusinessEmail: "hi@paws.example", BusinessPhone: "555-0199", DefaultDurationMinutes: 90},
			wantDuration: 90,
		},
		{
			name:         "所要時間未指定は60分",
			values:       settings.Values{BusinessName: "Paws"},
			wantDuration: 60,
		},
		{
			name:   "所要時間が範囲外NG",
			values: settings.Values{DefaultDurationMinutes: 500},
			errIs:  appointment.ErrInvalidDuration,
		},
		{
			name:   "不正なメールNG",
			values: settings.Values{BusinessEmail: "not-an-email"},
			errIs:  user.ErrInvalidEmail,
		},
		{
			name:   "店名が長すぎNG",
			values: settings.Values{BusinessName: strings.Repeat("x", 101)},
			errIs:  settings.ErrBusinessNameTooLong,
		},
		{
			name:   "電話番号が長すぎNG",
			values: settings.Values{BusinessPhone: strings.Repeat("1", 31)},
			errIs:  settings.ErrBusinessPhoneTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := settings.New(uuid.New(), tt.values, now)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDuration, s.DefaultDuration().Minutes())
		})
	}
}
