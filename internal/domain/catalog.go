package domain

// TourPackage is one entry of the fixed tour catalog. The catalog is static
// for the process lifetime; codes run 1 through 10.
type TourPackage struct {
	Code        int     `json:"code"`
	Destination string  `json:"destination"`
	UnitPrice   float64 `json:"unit_price"`
}

var catalog = []TourPackage{
	{Code: 1, Destination: "Paris, France", UnitPrice: 400000},
	{Code: 2, Destination: "Tokyo, Japan", UnitPrice: 600000},
	{Code: 3, Destination: "Bangkok, Thailand", UnitPrice: 250000},
	{Code: 4, Destination: "Abu Dhabi, UAE", UnitPrice: 380000},
	{Code: 5, Destination: "Miami, USA", UnitPrice: 120000},
	{Code: 6, Destination: "Rome, Italy", UnitPrice: 100000},
	{Code: 7, Destination: "Munich, Germany", UnitPrice: 300000},
	{Code: 8, Destination: "Madrid, Spain", UnitPrice: 320000},
	{Code: 9, Destination: "Istanbul, Turkey", UnitPrice: 450000},
	{Code: 10, Destination: "Gilgit, Pakistan", UnitPrice: 75000},
}

// Packages returns the full catalog in code order.
func Packages() []TourPackage {
	out := make([]TourPackage, len(catalog))
	copy(out, catalog)
	return out
}

// PackageByCode resolves a catalog entry, ErrInvalidPackageCode when the code
// is outside 1..10.
func PackageByCode(code int) (TourPackage, error) {
	if code < 1 || code > len(catalog) {
		return TourPackage{}, ErrInvalidPackageCode
	}
	return catalog[code-1], nil
}
