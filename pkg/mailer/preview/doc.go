// Package preview serves rendered email previews over HTTP for manual inspection.
//
//	r := chi.NewRouter()
//	err := preview.Mount(r, "/emails/{name}", []preview.Previewer{welcome, passwordReset},
//		preview.WithIndex(),
//	)
//
// GET /emails/welcome responds with the welcome definition's preview HTML,
// unknown names respond 404 with "Email not found". Mount returns ErrInvalidRoute
// when the pattern has no name parameter, so misconfiguration fails at startup.
package preview
