package smtp

import "time"

// Config holds SMTP provider configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Host               string        `env:"SMTP_HOST" envDefault:"localhost"`
	Username           string        `env:"SMTP_USERNAME"`
	Password           string        `env:"SMTP_PASSWORD"`
	From               string        `env:"SMTP_FROM"`
	TLSMode            string        `env:"SMTP_TLS_MODE" envDefault:"auto"`
	Port               int           `env:"SMTP_PORT" envDefault:"587"`
	Timeout            time.Duration `env:"SMTP_TIMEOUT" envDefault:"15s"`
	InsecureSkipVerify bool          `env:"SMTP_INSECURE_SKIP_VERIFY" envDefault:"false"`
}
