package report

import (
	"fmt"
	"strings"

	"roi-engine/internal/format"
	"roi-engine/internal/model"
)

// Summary renders the plain-text value proposition for a scenario.
func Summary(in model.ScenarioInputs, res model.ScenarioResult) string {
	f := format.Render(res)

	name := in.CompanyName
	if name == "" {
		name = "Your Company"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "GAMIFICATION VALUE PROPOSAL: %s\n\n", name)

	fmt.Fprintf(&b, "CURRENT SITUATION\n")
	fmt.Fprintf(&b, "  Monthly website visitors:  %s\n", format.Count(in.MonthlyVisits))
	fmt.Fprintf(&b, "  Average tour price:        %s\n", format.Currency(in.AvgPrice))
	fmt.Fprintf(&b, "  Current monthly bookings:  %s\n", f.CurrentMonthlyBookings)
	fmt.Fprintf(&b, "  Current monthly revenue:   %s\n\n", f.CurrentMonthlyRevenue)

	fmt.Fprintf(&b, "OTA COMMISSION ANALYSIS\n")
	fmt.Fprintf(&b, "  Bookings through OTAs:     %s\n", f.OTABookings)
	fmt.Fprintf(&b, "  Monthly commission loss:   %s\n", f.MonthlyCommissionLoss)
	fmt.Fprintf(&b, "  Commission rate:           %s\n\n", format.Percent(in.CommissionRatePercent, 1))

	fmt.Fprintf(&b, "GAMIFICATION IMPACT\n")
	fmt.Fprintf(&b, "  Conversion improvement:    +%s\n", format.Percent(in.ConversionImprovementPercent, 1))
	fmt.Fprintf(&b, "  New conversion rate:       %s\n", f.NewConversionRatePercent)
	fmt.Fprintf(&b, "  Additional bookings:       +%s\n", f.AdditionalMonthlyBookings)
	fmt.Fprintf(&b, "  Additional revenue:        +%s\n", f.AdditionalMonthlyRevenue)
	fmt.Fprintf(&b, "  OTA savings:               +%s\n\n", f.OTASavingsMonthly)

	fmt.Fprintf(&b, "INVESTMENT\n")
	fmt.Fprintf(&b, "  One-time setup fee:        %s\n", format.Currency(in.SetupFee))
	fmt.Fprintf(&b, "  Monthly retainer:          %s\n", format.Currency(in.MonthlyRetainer))
	fmt.Fprintf(&b, "  Total year-1 investment:   %s\n\n", f.Year1Investment)

	fmt.Fprintf(&b, "ROI ANALYSIS\n")
	fmt.Fprintf(&b, "  Total monthly benefit:     %s\n", f.TotalMonthlyBenefit)
	fmt.Fprintf(&b, "  Total annual benefit:      %s\n", f.TotalAnnualBenefit)
	fmt.Fprintf(&b, "  Return on investment:      %s\n", f.ROIPercentage)
	fmt.Fprintf(&b, "  Payback period:            %s\n", f.PaybackMonths)
	fmt.Fprintf(&b, "  Net profit year 1:         %s\n", f.NetProfitYear1)

	verdict := "NO"
	if res.NetProfitYear1 > 0 {
		verdict = "YES"
	}
	fmt.Fprintf(&b, "  Profitable in year 1:      %s\n", verdict)

	return b.String()
}
