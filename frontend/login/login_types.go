package login

import "orgconnect/models"

// ScreenData fills the signed-out forms.
type ScreenData struct {
	Error         string
	Name          string
	Email         string
	Organization  string
	Organizations []models.Organization
}
