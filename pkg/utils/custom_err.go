package utils

import "errors"

var (
	// Auth
	ErrUnauthenticated    = errors.New("authentication required")
	ErrAdminOnly          = errors.New("admin role required")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Subscription validation
	ErrMissingRequiredFields = errors.New("all required fields must be filled in")
	ErrPhoneDigitsOnly       = errors.New("phone number must contain digits only")
	ErrUnknownMealPlan       = errors.New("meal plan is not valid")
	ErrUnknownMealType       = errors.New("one or more meal types are not valid")
	ErrUnknownDeliveryDay    = errors.New("one or more delivery days are not valid")
	ErrPriceMismatch         = errors.New("price calculation does not match, please try again")
	ErrInvalidPauseRange     = errors.New("pause dates are invalid")

	// Subscription lifecycle
	ErrSubscriptionNotFound  = errors.New("subscription not found or not yours")
	ErrSubscriptionCancelled = errors.New("subscription has been cancelled")
	ErrSubscriptionNotPaused = errors.New("subscription is not paused")
	ErrSubscriptionNotActive = errors.New("subscription is not active")

	// Testimonials
	ErrMissingProfileName = errors.New("your name was not found, please update your profile")
	ErrEmptyReviewMessage = errors.New("a review message is required")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")

	ErrDatabaseError = errors.New("database error")
)
