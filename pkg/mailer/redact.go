package mailer

import "maps"

// mergeVariables builds the render-time union. Sensitive keys win on collision.
func mergeVariables[V ~map[string]any](vars, sensitive V) V {
	union := make(V, len(vars)+len(sensitive))
	maps.Copy(union, vars)
	maps.Copy(union, sensitive)
	return union
}

// logView builds the variables written to logs. Outside mock mode every key
// that came from sensitive is replaced by marker, even when it shadows a loggable key.
func logView(vars, sensitive map[string]any, marker string, mock bool) map[string]any {
	view := make(map[string]any, len(vars)+len(sensitive))
	maps.Copy(view, vars)
	for k, v := range sensitive {
		if mock {
			view[k] = v
		} else {
			view[k] = marker
		}
	}
	return view
}
