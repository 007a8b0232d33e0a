package mailer

// DefaultRedactionMarker replaces sensitive variable values in logs.
const DefaultRedactionMarker = "🙈"

// Config holds registry configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	RedactionMarker string `env:"EMAIL_REDACTION_MARKER" envDefault:"🙈"`
	Mock            bool   `env:"EMAIL_MOCK" envDefault:"false"`
}
