// Package mailer defines named emails and dispatches them through a pluggable provider.
//
// The package separates three concerns:
//
//   - Registry: process-wide factory holding the provider, logger, mock flag and sent log
//   - Definition: a named email with a subject, a template and preview variables
//   - Provider: interface that delivery backends implement (see the resend and smtp packages)
//
// # Usage
//
//	registry := mailer.New(resend.New(cfg.Resend), mailer.WithLogger(log))
//
//	type ResetVars map[string]any
//
//	passwordReset := mailer.MustDefine(registry, mailer.DefinitionConfig[ResetVars]{
//		Name:    "password-reset",
//		Subject: "Reset your password",
//		Template: func(v ResetVars) mailer.Content {
//			return mailer.Doc(markup.New("Reset your password",
//				markup.Paragraph(fmt.Sprintf("Hi %s,", v["name"])),
//				markup.Button("Reset password", fmt.Sprint(v["link"])),
//			))
//		},
//		PreviewVariables: ResetVars{"name": "Alice", "link": "https://example.com/reset/preview"},
//	})
//
//	res := passwordReset.Send(ctx, mailer.SendParams[ResetVars]{
//		To:        mailer.Contact{Name: "Alice", Email: "alice@example.com"},
//		Variables: ResetVars{"name": "Alice"},
//		Sensitive: ResetVars{"link": resetLink},
//	})
//	if !res.OK {
//		// already logged; res.Err has the cause
//	}
//
// # Templates
//
// A template returns either mailer.HTML, literal HTML passed through untouched,
// or mailer.Doc wrapping a *markup.Document, rendered by the registry's Renderer.
// Rendering failures surface from HTML and PreviewHTML as *TemplateRenderError.
//
// # Failure Containment
//
// Send never returns an error and never panics. Subject, recipient, rendering and
// provider failures are logged with tag=email and reported as Result{OK: false}.
//
// # Sensitive Variables
//
// SendParams.Sensitive is merged over SendParams.Variables for rendering, but each
// sensitive key is logged as the redaction marker unless the registry is in mock mode.
// A SubjectFunc only ever sees the loggable variables.
//
// # Mock Mode
//
// With WithMock(true) the provider is never called. Each send is appended to the
// registry's sent log, which tests inspect with SentEmails, LastSentEmail and
// ClearSentEmails, or per definition with Definition.SentEmails and
// Definition.LastSentEmail. Each registry owns its log, so tests stay isolated
// by creating their own registry.
package mailer
