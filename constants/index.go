package constants

const (
	ROLE_ADMIN = "ADMIN"
	ROLE_OWNER = "OWNER"
)

const (
	CATEGORY_STANDARD = "standard"
	CATEGORY_LUXURY   = "luxury"
)

const (
	ERROR_INPUT                = "Invalid input data"
	ERROR_INTERNAL_ERROR       = "Internal server error"
	ERROR_CREATE               = "Create failed"
	ERROR_EDIT                 = "Update failed"
	ERROR_PARSE_DATA_TO_LOCALS = "Cannot read parsed input"
	DATA_INPUT_IS_NOT_NUMBER   = "Id param must be a number"

	NOT_ADMIN           = "Administrator role required"
	NOT_AUTHENTICATED   = "Authentication required"
	ACCOUNT_NOT_ACTIVE  = "Account is deactivated"
	INVALID_EMAIL       = "Email does not exist"
	INVALID_PASSWORD    = "Password does not match"
	EMAIL_TAKEN         = "Email is already registered"
	MISSING_LOGIN_INPUT = "Email and password are required"

	COTTAGE_NOT_FOUND = "Cottage not found"
	AMENITY_NOT_FOUND = "Amenity not found"
	BOOKING_NOT_FOUND = "Booking not found"

	COTTAGE_UNAVAILABLE = "The cottage is not available for the selected dates."
	COTTAGE_AVAILABLE   = "The cottage is available for the selected dates."
)
