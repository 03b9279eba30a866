package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackages_FullCatalog(t *testing.T) {
	pkgs := Packages()

	require.Len(t, pkgs, 10)
	for i, p := range pkgs {
		assert.Equal(t, i+1, p.Code)
		assert.NotEmpty(t, p.Destination)
		assert.Greater(t, p.UnitPrice, 0.0)
	}
}

func TestPackageByCode_KnownEntries(t *testing.T) {
	paris, err := PackageByCode(1)
	require.NoError(t, err)
	assert.Equal(t, "Paris, France", paris.Destination)
	assert.Equal(t, 400000.0, paris.UnitPrice)

	gilgit, err := PackageByCode(10)
	require.NoError(t, err)
	assert.Equal(t, "Gilgit, Pakistan", gilgit.Destination)
	assert.Equal(t, 75000.0, gilgit.UnitPrice)
}

func TestPackageByCode_OutOfRange(t *testing.T) {
	for _, code := range []int{0, -1, 11, 100} {
		_, err := PackageByCode(code)
		assert.ErrorIs(t, err, ErrInvalidPackageCode)
	}
}

func TestBooking_Total(t *testing.T) {
	b := &Booking{PackageCode: 1, Destination: "Paris, France", UnitPrice: 400000, Tickets: 3}
	assert.Equal(t, 1200000.0, b.Total())
}

func TestAccount_Clone_IsDeep(t *testing.T) {
	a := &Account{
		Username: "alice",
		Password: "p1",
		Booking:  &Booking{PackageCode: 6, Destination: "Rome, Italy", UnitPrice: 100000, Tickets: 2},
	}

	cp := a.Clone()
	cp.Password = "changed"
	cp.Booking.Tickets = 99

	assert.Equal(t, "p1", a.Password)
	assert.Equal(t, 2, a.Booking.Tickets)
}
