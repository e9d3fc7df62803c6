package estclient

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

// loginFormFields are the inputs the portal's login form carries. login and
// password are placeholders that get overwritten with the real credentials
// before submission.
var loginFormFields = []string{"_token", "returnUrl", "login", "password"}

// extractLoginForm pulls the login-form field values out of the challenge
// page. Fields absent from the markup are left out of the result rather than
// failing the extraction; the portal does not require all of them to be
// echoed back.
func extractLoginForm(page []byte) (map[string]string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parsing login page: %w", err)
	}

	form := make(map[string]string, len(loginFormFields))
	for _, name := range loginFormFields {
		value, ok := doc.Find(fmt.Sprintf("input[name=%s]", name)).Attr("value")
		if !ok {
			continue
		}
		form[name] = value
	}
	return form, nil
}
