// Package auth guards the admin API.
//
// The admin panel is opened with a shared numeric pin: the master override, the
// stored admin_pin setting, or the configured default while no pin was stored.
// A successful unlock issues an HS256 bearer token. Whether the admin routes
// require that token is a configuration switch; by default they do not.
//
// Example usage:
//
//	authService := auth.NewService(db, cfg.Admin)
//
//	token, err := authService.Unlock(ctx, pin)
//
//	admin := app.Group("/api", auth.RequireAdmin(authService, cfg.Admin.EnforceToken))
package auth
