package mailer

import (
	"bytes"
	"fmt"
	"text/template"
)

var welcomeText = template.Must(template.New("welcome_text").Parse(
	`Hi {{.Name}},

Welcome to GiveHub! Your account is ready.

Log in any time to track your points, discover organizations, and share
what you're working on.

The GiveHub team
`))

var welcomeHTML = template.Must(template.New("welcome_html").Parse(
	`<p>Hi {{.Name}},</p>
<p>Welcome to <strong>GiveHub</strong>! Your account is ready.</p>
<p>Log in any time to track your points, discover organizations, and share
what you're working on.</p>
<p>The GiveHub team</p>
`))

// Render returns subject, text, and html bodies for a named template.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	switch name {
	case "welcome":
		var tb, hb bytes.Buffer
		if err = welcomeText.Execute(&tb, data); err != nil {
			return "", "", "", err
		}
		if err = welcomeHTML.Execute(&hb, data); err != nil {
			return "", "", "", err
		}
		return "Welcome to GiveHub", tb.String(), hb.String(), nil
	default:
		return "", "", "", fmt.Errorf("unknown template %q", name)
	}
}
