package domain

// Booking is the single active tour reservation an account may hold.
// A nil *Booking means the account has none.
type Booking struct {
	PackageCode int     `json:"package_code"`
	Destination string  `json:"destination"`
	UnitPrice   float64 `json:"unit_price"`
	Tickets     int     `json:"tickets"`
}

// Total is the full price of the reservation.
func (b *Booking) Total() float64 {
	return b.UnitPrice * float64(b.Tickets)
}

// BookingSummary is what the check-total operation reports back.
type BookingSummary struct {
	Destination string  `json:"destination"`
	Tickets     int     `json:"tickets"`
	Total       float64 `json:"total"`
}

// Refund describes a cancelled booking and the amount owed back.
type Refund struct {
	Destination string  `json:"destination"`
	Tickets     int     `json:"tickets"`
	Amount      float64 `json:"amount"`
}
