package domain

// Account is one registered user of the travel desk. Username is the
// identity and never changes after registration.
type Account struct {
	Username string   `json:"username"`
	Password string   `json:"-"`
	Booking  *Booking `json:"booking,omitempty"`
}

// HasBooking reports whether the account holds an active booking.
func (a *Account) HasBooking() bool {
	return a != nil && a.Booking != nil
}

// Clone returns a deep copy so repository internals never alias caller state.
func (a *Account) Clone() *Account {
	if a == nil {
		return nil
	}
	cp := *a
	if a.Booking != nil {
		b := *a.Booking
		cp.Booking = &b
	}
	return &cp
}

type CreateAccountInput struct {
	Username string
	Password string
}
