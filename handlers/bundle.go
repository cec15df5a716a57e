// File: lojinha/handlers/bundle.go
package handlers

import "lojinha/utils"

// HandlerBundle groups all endpoint handlers plus the token cache the
// auth middleware validates against.
type HandlerBundle struct {
	Users        *UserHandler
	Products     *ProductHandler
	Favorites    *FavoriteHandler
	Uploads      *UploadHandler
	Appointments *AppointmentHandler

	TokenCache utils.TokenCache
}
