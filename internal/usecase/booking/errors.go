package booking

// Business error codes surfaced by the booking flow.
const (
	ErrCodeVacation = "shop_on_vacation"
)
