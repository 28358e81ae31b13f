package handlers

import (
	"net/http"

	"art-gallery/internal/middlewares"
)

// POSTLogoutHandler clears the session cookie. Logging out without a session
// is not an error.
func POSTLogoutHandler(ctx *middlewares.AppContext) {
	ctx.Cookies.Clear(ctx.Response)
	ctx.SetJSONStatus(http.StatusOK, "Logged out")
}
