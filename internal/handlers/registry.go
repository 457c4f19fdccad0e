package handlers

// AppHandlers bundles the handler set for route registration.
type AppHandlers struct {
	AuthHandler   *AuthHandler
	UserHandler   *UserHandler
	StoreHandler  *StoreHandler
	RatingHandler *RatingHandler
}
