// Package pricing computes booking totals. All amounts travel as decimal
// strings with two fraction digits, matching the wire format of flight base
// prices; parsing to float64 happens only inside this package.
package pricing

import (
	"fmt"
	"math"
	"strconv"

	"github.com/Domenick1991/skybooking/internal/domain"
)

// Fixed business constants. The row-17 boundary and the fee amounts are not
// configurable.
const (
	TaxesAndFees    = 45.0
	premiumSeatFee  = 45.0
	standardSeatFee = 25.0
	premiumRowMax   = 17
)

// FlightPrice is the flight's base price scaled by the cabin class
// multiplier.
func FlightPrice(basePrice string, class domain.CabinClass) (float64, error) {
	base, err := strconv.ParseFloat(basePrice, 64)
	if err != nil {
		return 0, fmt.Errorf("parse base price %q: %w", basePrice, err)
	}
	return base * class.Multiplier(), nil
}

// SeatPrice derives the seat fee from the leading row number of a seat like
// "12A". Rows up to 17 are premium seats. An empty or rowless seat number
// costs nothing.
func SeatPrice(seatNumber string) float64 {
	row := 0
	for _, r := range seatNumber {
		if r < '0' || r > '9' {
			break
		}
		row = row*10 + int(r-'0')
	}
	if row == 0 {
		return 0
	}
	if row <= premiumRowMax {
		return premiumSeatFee
	}
	return standardSeatFee
}

// Total sums fare, seat fee and taxes and formats the result with two
// fraction digits. Pure computation, deterministic given its inputs.
func Total(flight *domain.Flight, seatNumber string, class domain.CabinClass) (string, error) {
	fare, err := FlightPrice(flight.BasePrice, class)
	if err != nil {
		return "", err
	}
	return FormatAmount(fare + SeatPrice(seatNumber) + TaxesAndFees), nil
}

// FormatAmount rounds to two decimal places and renders "320.00" style.
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(math.Round(amount*100)/100, 'f', 2, 64)
}
