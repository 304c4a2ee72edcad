package rates

// Fallback returns the built-in approximate rate table for the currencies the
// application natively supports. It is used only when no fetch has ever
// succeeded, so that conversion degrades instead of failing outright.
//
// These are rounded mid-2025 figures, not market data. Do not read precision
// into them: a live snapshot and this table will disagree in both currency
// set and value.
func Fallback() Snapshot {
	return Snapshot{Rates: map[string]float64{
		"USD": 1,
		"EUR": 0.92,
		"GBP": 0.79,
		"JPY": 148.0,
		"PLN": 3.9,
		"RUB": 90.0,
		"UAH": 41.0,
		"KZT": 480.0,
		"TRY": 35.0,
	}}
}
