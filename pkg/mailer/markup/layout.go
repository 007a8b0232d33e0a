package markup

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// LayoutData is passed to a layout when wrapping a rendered body.
type LayoutData struct {
	Title     string
	Preheader string
	Body      templ.Component
}

// Layout wraps a rendered body into a full HTML email.
type Layout func(LayoutData) templ.Component

// DefaultLayout is a single-column, table-based layout with inline styles.
func DefaultLayout(data LayoutData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!doctype html><html><head><meta charset="utf-8">`+
			`<meta name="viewport" content="width=device-width, initial-scale=1"><title>`+
			templ.EscapeString(data.Title)+`</title></head>`+
			`<body style="margin:0;padding:0;background-color:#f4f4f5;">`); err != nil {
			return err
		}
		if data.Preheader != "" {
			if _, err := io.WriteString(w, `<div style="display:none;max-height:0;overflow:hidden;">`+
				templ.EscapeString(data.Preheader)+`</div>`); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `<table role="presentation" width="100%" cellpadding="0" cellspacing="0">`+
			`<tr><td align="center" style="padding:24px 12px;">`+
			`<table role="presentation" width="600" cellpadding="0" cellspacing="0" `+
			`style="max-width:600px;width:100%;background-color:#ffffff;border-radius:6px;">`+
			`<tr><td style="padding:32px;font-family:Helvetica,Arial,sans-serif;font-size:16px;line-height:1.5;color:#18181b;">`); err != nil {
			return err
		}
		if data.Body != nil {
			if err := data.Body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</td></tr></table></td></tr></table></body></html>`)
		return err
	})
}
