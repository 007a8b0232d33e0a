package mailer

import (
	"net/mail"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRecipient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		to      any
		want    string
		wantErr bool
	}{
		{name: "string", to: "a@example.com", want: "a@example.com"},
		{name: "trimmed", to: "\ta@example.com\n", want: "a@example.com"},
		{name: "address", to: Address("a@example.com"), want: "a@example.com"},
		{name: "contact", to: Contact{Name: "A", Email: "a@example.com"}, want: "a@example.com"},
		{name: "mail address", to: mail.Address{Name: "A", Address: "a@example.com"}, want: "a@example.com"},
		{name: "nil mail address pointer", to: (*mail.Address)(nil), wantErr: true},
		{name: "nil", to: nil, wantErr: true},
		{name: "empty", to: "", wantErr: true},
		{name: "unsupported", to: []string{"a@example.com"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := normalizeRecipient(tt.to)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidRecipient)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContact_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Alice <alice@example.com>", Contact{Name: "Alice", Email: "alice@example.com"}.String())
	assert.Equal(t, "alice@example.com", Contact{Email: "alice@example.com"}.String())
}
