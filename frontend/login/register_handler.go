package login

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"orgconnect/infrastructure/seed"
	"orgconnect/infrastructure/session"
	"orgconnect/models"
)

// RegisteredRole is given to every self-registered user.
const RegisteredRole = "Team Member"

// RegisterInput is the raw registration form.
type RegisterInput struct {
	Name         string
	Email        string
	Password     string
	Organization string
}

// Missing lists the blank fields in form order.
func (in RegisterInput) Missing() []string {
	var missing []string
	if strings.TrimSpace(in.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(in.Email) == "" {
		missing = append(missing, "email")
	}
	if in.Password == "" {
		missing = append(missing, "password")
	}
	if strings.TrimSpace(in.Organization) == "" {
		missing = append(missing, "organization")
	}
	return missing
}

// MissingFieldsMessage is the registration error for the given fields.
func MissingFieldsMessage(missing []string) string {
	return "Please fill in all fields: " + strings.Join(missing, ", ")
}

// NewRegisteredUser builds the session user for a completed form. The
// user lives only in its session; no account row is written.
func NewRegisteredUser(in RegisterInput) models.User {
	orgName := ""
	for _, org := range seed.Organizations() {
		if org.ID == strings.TrimSpace(in.Organization) {
			orgName = org.Name
			break
		}
	}
	return models.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(in.Name),
		Email:        strings.TrimSpace(in.Email),
		Organization: orgName,
		Role:         RegisteredRole,
	}
}

// CreateRegistrationHandler signs in a mock-registered user.
func CreateRegistrationHandler(sessions *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, "/register?error="+url.QueryEscape("Invalid form data"), http.StatusSeeOther)
			return
		}
		in := RegisterInput{
			Name:         r.FormValue("name"),
			Email:        r.FormValue("email"),
			Password:     r.FormValue("password"),
			Organization: r.FormValue("organization"),
		}
		if missing := in.Missing(); len(missing) > 0 {
			back := url.Values{
				"error":        {MissingFieldsMessage(missing)},
				"name":         {in.Name},
				"email":        {in.Email},
				"organization": {in.Organization},
			}
			http.Redirect(w, r, "/register?"+back.Encode(), http.StatusSeeOther)
			return
		}

		if !startSession(w, r, sessions, NewRegisteredUser(in)) {
			return
		}
		http.Redirect(w, r, "/app/dashboard", http.StatusSeeOther)
	}
}
