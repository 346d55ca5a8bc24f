package handlers

// HandlerBundle aggregates the per-domain handlers so route
// registration takes a single argument.
type HandlerBundle struct {
	Auth         *AuthHandler
	Booking      *BookingHandler
	Notification *NotificationHandler
	Catalog      *CatalogHandler
	Onboarding   *OnboardingHandler
	Profile      *ProfileHandler
	Storage      *StorageHandler
}
