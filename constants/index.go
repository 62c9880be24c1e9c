package constants

const (
	ROLE_ADMIN = "ADMIN"
	ROLE_CAFE  = "CAFE"
	ROLE_USER  = "USER"
)

const (
	ERROR_INTERNAL_ERROR     = "Internal server error"
	DATA_INPUT_IS_NOT_NUMBER = "Input must be a number"
	MISSING_LOGIN_INPUT      = "Missing login information"
	INVALID_MEMBER_ID        = "Member id does not exist"
	INVALID_PASSWORD         = "Password is incorrect"

	MEMBER_NOT_FOUND  = "Member not found"
	CAFE_NOT_FOUND    = "Cafe not found"
	MENU_NOT_FOUND    = "Menu not found"
	PAYMENT_NOT_FOUND = "Payment not found"

	INVALID_PAYMENT_STATUS    = "Invalid payment status"
	INVALID_STATUS_TRANSITION = "Payment status transition is not allowed"
	PAYMENT_ALREADY_CONFIRMED = "Payment is already confirmed"
)
