package calc

import "roi-engine/internal/model"

// Compute derives the full result set from the current inputs. It is total
// and pure: the only branches are divide-by-zero guards, which produce the
// unbounded metric rather than an error.
func Compute(in model.ScenarioInputs) model.ScenarioResult {
	currentBookings := in.MonthlyVisits * in.ConversionRatePercent / 100
	currentRevenue := currentBookings * in.AvgPrice
	otaBookings := currentBookings * in.OTAPercentage / 100
	commissionLoss := otaBookings * in.AvgPrice * in.CommissionRatePercent / 100

	newRate := in.ConversionRatePercent * (1 + in.ConversionImprovementPercent/100)
	newBookings := in.MonthlyVisits * newRate / 100
	additionalBookings := newBookings - currentBookings
	additionalRevenue := additionalBookings * in.AvgPrice

	otaSavings := commissionLoss * in.DirectBookingIncreasePercent / 100
	monthlyBenefit := additionalRevenue + otaSavings
	annualBenefit := monthlyBenefit * 12

	investment := in.SetupFee
	if in.IncludeRetainer {
		investment += in.MonthlyRetainer * 12
	}

	roi := model.UnboundedMetric()
	if investment > 0 {
		roi = model.FiniteMetric(annualBenefit / investment * 100)
	}

	// Negative benefit never yields a negative payback, only the sentinel.
	payback := model.UnboundedMetric()
	if monthlyBenefit > 0 {
		payback = model.FiniteMetric(investment / monthlyBenefit)
	}

	return model.ScenarioResult{
		CurrentMonthlyBookings:    currentBookings,
		CurrentMonthlyRevenue:     currentRevenue,
		OTABookings:               otaBookings,
		MonthlyCommissionLoss:     commissionLoss,
		NewConversionRatePercent:  newRate,
		NewMonthlyBookings:        newBookings,
		AdditionalMonthlyBookings: additionalBookings,
		AdditionalMonthlyRevenue:  additionalRevenue,
		OTASavingsMonthly:         otaSavings,
		TotalMonthlyBenefit:       monthlyBenefit,
		TotalAnnualBenefit:        annualBenefit,
		Year1Investment:           investment,
		ROIPercentage:             roi,
		PaybackMonths:             payback,
		NetProfitYear1:            annualBenefit - investment,
	}
}
