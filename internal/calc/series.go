package calc

import "roi-engine/internal/model"

// RevenueSeries returns the two-bar comparison: monthly revenue today vs
// monthly revenue with the projected benefit included.
func RevenueSeries(res model.ScenarioResult) []model.SeriesPoint {
	return []model.SeriesPoint{
		{Label: "Current", Value: res.CurrentMonthlyRevenue},
		{Label: "With Gamification", Value: res.CurrentMonthlyRevenue + res.TotalMonthlyBenefit},
	}
}

// PaybackSeries steps cumulative benefit from month 0 through 12 against the
// flat year-1 investment line. Thirteen points, always.
func PaybackSeries(res model.ScenarioResult) model.PaybackSeries {
	s := model.PaybackSeries{
		Months:            make([]int, 13),
		CumulativeBenefit: make([]float64, 13),
		InvestmentLine:    make([]float64, 13),
	}
	for i := 0; i <= 12; i++ {
		s.Months[i] = i
		s.CumulativeBenefit[i] = res.TotalMonthlyBenefit * float64(i)
		s.InvestmentLine[i] = res.Year1Investment
	}
	return s
}
