package page

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Document wraps body in a minimal HTML document. Title and lang are escaped.
func Document(title, lang string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		head := `<!doctype html><html lang="` + templ.EscapeString(lang) + `"><head><meta charset="utf-8"><title>` +
			templ.EscapeString(title) + `</title></head><body>`
		if _, err := io.WriteString(w, head); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}
