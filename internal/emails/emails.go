// Package emails holds the application's email definitions.
package emails

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"html"

	"github.com/dmitrymomot/emailkit/pkg/mailer"
	"github.com/dmitrymomot/emailkit/pkg/mailer/markup"
	"github.com/dmitrymomot/emailkit/pkg/mailer/preview"
)

//go:embed footer.yaml
var footerYAML []byte

// Vars are the template variables shared by every definition in the catalog.
type Vars map[string]any

// Catalog groups the definitions bound to one registry.
type Catalog struct {
	Welcome        *mailer.Definition[Vars]
	PasswordReset  *mailer.Definition[Vars]
	AccountDeleted *mailer.Definition[Vars]
}

// New defines every email against r.
func New(r *mailer.Registry) (*Catalog, error) {
	footer, err := markup.ParseBlocks(footerYAML)
	if err != nil {
		return nil, fmt.Errorf("emails: footer: %w", err)
	}

	welcome, err := mailer.Define(r, mailer.DefinitionConfig[Vars]{
		Name: "welcome",
		SubjectFunc: func(v Vars) string {
			return fmt.Sprintf("Welcome aboard, %s!", str(v, "name", "there"))
		},
		Template: func(v Vars) mailer.Content {
			doc := markup.New("Welcome",
				markup.Heading(1, fmt.Sprintf("Hi %s,", str(v, "name", "there"))),
				markup.Paragraph("Thanks for signing up. Your account is ready."),
				markup.List(
					"Complete your profile",
					"Invite your team",
					"Explore the dashboard",
				),
				markup.Button("Get started", str(v, "dashboard_url", "")),
			).WithPreheader("Your account is ready")
			return mailer.Doc(doc.Append(footer...))
		},
		PreviewVariables: Vars{
			"name":          "Alice",
			"dashboard_url": "https://app.example.com/dashboard",
		},
	})
	if err != nil {
		return nil, err
	}

	reset, err := mailer.Define(r, mailer.DefinitionConfig[Vars]{
		Name:    "password-reset",
		Subject: "Reset your password",
		Template: func(v Vars) mailer.Content {
			doc := markup.New("Reset your password",
				markup.Paragraph(fmt.Sprintf("Hi %s,", str(v, "name", "there"))),
				markup.Paragraph("Someone asked to reset the password for your account. The link expires in 30 minutes."),
				markup.Button("Reset password", str(v, "reset_url", "")),
				markup.Paragraph("If you did not request this, you can ignore this email."),
			)
			return mailer.Doc(doc.Append(footer...))
		},
		PreviewVariables: Vars{
			"name":      "Alice",
			"reset_url": "https://app.example.com/reset/preview-token",
		},
	})
	if err != nil {
		return nil, err
	}

	deleted, err := mailer.Define(r, mailer.DefinitionConfig[Vars]{
		Name:    "account-deleted",
		Subject: "Your account has been deleted",
		Template: func(v Vars) mailer.Content {
			return mailer.HTML(fmt.Sprintf(
				"<p>Hi %s,</p><p>Your account and all associated data have been deleted.</p>",
				html.EscapeString(str(v, "name", "there")),
			))
		},
		PreviewVariables: Vars{"name": "Alice"},
	})
	if err != nil {
		return nil, err
	}

	return &Catalog{Welcome: welcome, PasswordReset: reset, AccountDeleted: deleted}, nil
}

// Previews lists the definitions for the preview router.
func (c *Catalog) Previews() []preview.Previewer {
	return []preview.Previewer{c.Welcome, c.PasswordReset, c.AccountDeleted}
}

// Check renders every preview and joins the failures.
// It fits health.CheckFunc so readiness fails when a template breaks.
func (c *Catalog) Check(ctx context.Context) error {
	var errs []error
	for _, p := range c.Previews() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := p.PreviewHTML(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func str(v Vars, key, fallback string) string {
	if s, ok := v[key].(string); ok && s != "" {
		return s
	}
	return fallback
}
