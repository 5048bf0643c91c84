package edits

import (
	"encoding/json"
	"fmt"

	"roi-engine/internal/calc"
	"roi-engine/internal/model"
)

type inverseProps struct {
	Value json.RawMessage `json:"value"`
}

// SetBookingsHandler back-calculates the conversion rate from an edited
// bookings aggregate. When visits is zero the edit does not propagate.
type SetBookingsHandler struct{}

func (h *SetBookingsHandler) Validate(state *model.ScenarioInputs, edit *model.Edit) []model.CalculationMessage {
	if state.MonthlyVisits <= 0 {
		return []model.CalculationMessage{{
			Level:   model.LevelWarning,
			Code:    "NO_VISITS",
			Message: "Monthly visits is zero; edited bookings value does not propagate",
		}}
	}
	return nil
}

func (h *SetBookingsHandler) Apply(state *model.ScenarioInputs, edit *model.Edit) []model.CalculationMessage {
	var props inverseProps
	json.Unmarshal(edit.EditProperties, &props)
	value := parseNumber(props.Value)

	rate, ok := calc.ResolveBookings(value, state.MonthlyVisits)
	if !ok {
		return nil
	}

	var msgs []model.CalculationMessage
	if raw := value / state.MonthlyVisits * 100; raw != rate {
		msgs = append(msgs, clampedMsg(model.FieldConversionRatePercent, rate))
	}
	state.ConversionRatePercent = rate
	return msgs
}

// SetRevenueHandler back-calculates the average price from an edited
// revenue aggregate. When there are no bookings the edit does not propagate.
type SetRevenueHandler struct{}

func (h *SetRevenueHandler) Validate(state *model.ScenarioInputs, edit *model.Edit) []model.CalculationMessage {
	if calc.Compute(*state).CurrentMonthlyBookings <= 0 {
		return []model.CalculationMessage{{
			Level:   model.LevelWarning,
			Code:    "NO_BOOKINGS",
			Message: "Current bookings is zero; edited revenue value does not propagate",
		}}
	}
	return nil
}

func (h *SetRevenueHandler) Apply(state *model.ScenarioInputs, edit *model.Edit) []model.CalculationMessage {
	var props inverseProps
	json.Unmarshal(edit.EditProperties, &props)
	value := parseNumber(props.Value)

	bookings := calc.Compute(*state).CurrentMonthlyBookings
	price, ok := calc.ResolveRevenue(value, bookings)
	if !ok {
		return nil
	}

	var msgs []model.CalculationMessage
	if raw := value / bookings; raw != price {
		msgs = append(msgs, clampedMsg(model.FieldAvgPrice, price))
	}
	state.AvgPrice = price
	return msgs
}

// SetCommissionLossHandler back-calculates the commission rate from an
// edited commission-loss aggregate. When no revenue flows through OTAs the
// edit does not propagate.
type SetCommissionLossHandler struct{}

func (h *SetCommissionLossHandler) Validate(state *model.ScenarioInputs, edit *model.Edit) []model.CalculationMessage {
	bookings := calc.Compute(*state).CurrentMonthlyBookings
	if bookings*state.OTAPercentage/100*state.AvgPrice <= 0 {
		return []model.CalculationMessage{{
			Level:   model.LevelWarning,
			Code:    "NO_OTA_REVENUE",
			Message: "No revenue flows through OTAs; edited commission loss does not propagate",
		}}
	}
	return nil
}

func (h *SetCommissionLossHandler) Apply(state *model.ScenarioInputs, edit *model.Edit) []model.CalculationMessage {
	var props inverseProps
	json.Unmarshal(edit.EditProperties, &props)
	value := parseNumber(props.Value)

	bookings := calc.Compute(*state).CurrentMonthlyBookings
	rate, ok := calc.ResolveCommissionLoss(value, bookings, state.OTAPercentage, state.AvgPrice)
	if !ok {
		return nil
	}

	var msgs []model.CalculationMessage
	otaRevenue := bookings * state.OTAPercentage / 100 * state.AvgPrice
	if raw := value / otaRevenue * 100; raw != rate {
		msgs = append(msgs, clampedMsg(model.FieldCommissionRatePercent, rate))
	}
	state.CommissionRatePercent = rate
	return msgs
}

func clampedMsg(field string, v float64) model.CalculationMessage {
	return model.CalculationMessage{
		Level:   model.LevelWarning,
		Code:    "DERIVED_VALUE_CLAMPED",
		Message: fmt.Sprintf("Derived %s clamped to %g", field, v),
	}
}
