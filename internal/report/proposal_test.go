package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"roi-engine/internal/calc"
	"roi-engine/internal/model"
)

func TestSummaryHeadlineNumbers(t *testing.T) {
	in := model.DefaultInputs()
	in.CompanyName = "Alpine Tours"
	res := calc.Compute(in)

	s := Summary(in, res)

	assert.Contains(t, s, "Alpine Tours")
	assert.Contains(t, s, "$19,000")
	assert.Contains(t, s, "$17,100")
	assert.Contains(t, s, "571%")
	assert.Contains(t, s, "2.1 months")
	assert.Contains(t, s, "Profitable in year 1:      YES")
}

func TestSummaryDefaultsCompanyName(t *testing.T) {
	in := model.DefaultInputs()
	res := calc.Compute(in)

	assert.Contains(t, Summary(in, res), "Your Company")
}

func TestSummaryUnprofitableScenario(t *testing.T) {
	in := model.DefaultInputs()
	in.ConversionImprovementPercent = 0
	in.DirectBookingIncreasePercent = 0
	res := calc.Compute(in)

	s := Summary(in, res)
	assert.Contains(t, s, "Profitable in year 1:      NO")
	assert.Contains(t, s, "∞")
}
