package mailer

import (
	"slices"
	"time"

	"github.com/go-viper/mapstructure/v2"
)

// SentEmail is an entry of the sent log, recorded for every mock-mode send.
// Variables hold the real values the template was rendered with, sensitive ones included.
type SentEmail struct {
	SentAt    time.Time
	Variables map[string]any
	Name      string
	To        string
	Subject   string
}

// Decode copies the entry's variables into out, a pointer to a struct or map.
// Struct fields match variable keys case-insensitively or by `mapstructure` tag.
func (e SentEmail) Decode(out any) error {
	return mapstructure.Decode(e.Variables, out)
}

// cloneSent returns a copy of entries that callers may mutate freely. Never returns nil.
func cloneSent(entries []SentEmail) []SentEmail {
	out := make([]SentEmail, len(entries))
	for i, e := range entries {
		out[i] = cloneEntry(e)
	}
	return out
}

func cloneEntry(e SentEmail) SentEmail {
	e.Variables = cloneVars(e.Variables)
	return e
}

func cloneVars(vars map[string]any) map[string]any {
	if vars == nil {
		return nil
	}
	out := make(map[string]any, len(vars))
	for k, v := range vars {
		out[k] = cloneValue(v)
	}
	return out
}

// cloneValue copies the generic containers a template receives (maps and slices
// of any, as decoded from JSON or YAML). Every other value is kept as is:
// opaque types may hold unexported state that a reflective copy would lose.
func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneVars(t)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = cloneValue(item)
		}
		return out
	case []string:
		return slices.Clone(t)
	default:
		return v
	}
}
