package calc

// Input domains enforced when a value is derived by back-calculation.
// Direct human entry is clamped by the surrounding UI, not here.
const (
	MinConversionRatePercent = 0.1
	MaxConversionRatePercent = 10
	MinAvgPrice              = 10
	MaxAvgPrice              = 10000
	MinCommissionRatePercent = 5
	MaxCommissionRatePercent = 50
)

// ResolveBookings maps an edited bookings aggregate back onto the conversion
// rate. Returns false when visits is zero: the edit cannot propagate.
func ResolveBookings(newBookings, visits float64) (float64, bool) {
	if visits <= 0 {
		return 0, false
	}
	return clamp(newBookings/visits*100, MinConversionRatePercent, MaxConversionRatePercent), true
}

// ResolveRevenue maps an edited revenue aggregate back onto the average
// price. Returns false when there are no bookings.
func ResolveRevenue(newRevenue, bookings float64) (float64, bool) {
	if bookings <= 0 {
		return 0, false
	}
	return clamp(newRevenue/bookings, MinAvgPrice, MaxAvgPrice), true
}

// ResolveCommissionLoss maps an edited commission-loss aggregate back onto
// the commission rate. Returns false when no revenue flows through OTAs.
func ResolveCommissionLoss(newLoss, bookings, otaPercentage, avgPrice float64) (float64, bool) {
	otaRevenue := bookings * otaPercentage / 100 * avgPrice
	if otaRevenue <= 0 {
		return 0, false
	}
	return clamp(newLoss/otaRevenue*100, MinCommissionRatePercent, MaxCommissionRatePercent), true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
