package format

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"roi-engine/internal/model"
)

// InfiniteGlyph is what any unbounded metric renders as. The engine never
// emits host "Infinity"/"NaN" literals.
const InfiniteGlyph = "∞"

var printer = message.NewPrinter(language.English)

// Currency renders a whole-dollar amount with thousands separators,
// e.g. 19000 -> "$19,000".
func Currency(v float64) string {
	return printer.Sprintf("$%d", int64(math.Round(v)))
}

// Count renders a rounded quantity with thousands separators.
func Count(v float64) string {
	return printer.Sprintf("%d", int64(math.Round(v)))
}

// Percent renders a fixed-decimal percentage. Rate fields use one decimal,
// the aggregate ROI uses zero.
func Percent(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64) + "%"
}

// ROI renders the ROI metric with no decimal places, or the infinite glyph.
func ROI(m model.Metric) string {
	if m.Unbounded {
		return InfiniteGlyph
	}
	return Percent(m.Value, 0)
}

// Payback renders the payback metric in months with one decimal place, or
// the infinite glyph.
func Payback(m model.Metric) string {
	if m.Unbounded {
		return InfiniteGlyph
	}
	return strconv.FormatFloat(m.Value, 'f', 1, 64) + " months"
}

// Render produces the display view of a full result set.
func Render(res model.ScenarioResult) model.FormattedResult {
	return model.FormattedResult{
		CurrentMonthlyBookings:    Count(res.CurrentMonthlyBookings),
		CurrentMonthlyRevenue:     Currency(res.CurrentMonthlyRevenue),
		OTABookings:               Count(res.OTABookings),
		MonthlyCommissionLoss:     Currency(res.MonthlyCommissionLoss),
		NewConversionRatePercent:  Percent(res.NewConversionRatePercent, 1),
		NewMonthlyBookings:        Count(res.NewMonthlyBookings),
		AdditionalMonthlyBookings: Count(res.AdditionalMonthlyBookings),
		AdditionalMonthlyRevenue:  Currency(res.AdditionalMonthlyRevenue),
		OTASavingsMonthly:         Currency(res.OTASavingsMonthly),
		TotalMonthlyBenefit:       Currency(res.TotalMonthlyBenefit),
		TotalAnnualBenefit:        Currency(res.TotalAnnualBenefit),
		Year1Investment:           Currency(res.Year1Investment),
		ROIPercentage:             ROI(res.ROIPercentage),
		PaybackMonths:             Payback(res.PaybackMonths),
		NetProfitYear1:            Currency(res.NetProfitYear1),
	}
}
