package edits

var registry = map[string]EditHandler{
	"set_input":                 &SetInputHandler{},
	"set_bookings":              &SetBookingsHandler{},
	"set_revenue":               &SetRevenueHandler{},
	"set_commission_loss":       &SetCommissionLossHandler{},
	"load_preset":               &LoadPresetHandler{},
	"apply_recommended_pricing": &ApplyPricingHandler{},
	"apply_ota_benchmark":       &ApplyOTABenchmarkHandler{},
}

func Get(name string) (EditHandler, bool) {
	h, ok := registry[name]
	return h, ok
}
