package services

// ServiceContainer bundles the service set wired at startup so the handler
// layer takes one dependency.
type ServiceContainer struct {
	AuthService   AuthService
	UserService   UserService
	StoreService  StoreService
	RatingService RatingService
}
