package domain

// ExchangeRateSet is the exchange-rate API's latest/historical/conversion
// envelope. For conversions the converted value is embedded in Rates under
// the target currency key.
type ExchangeRateSet struct {
	Amount float64            `json:"amount"`
	Base   string             `json:"base"`
	Date   string             `json:"date"`
	Rates  map[string]float64 `json:"rates"`
}

// ExchangeTimeSeries is the date-ranged rates envelope: date → rates table.
type ExchangeTimeSeries struct {
	Amount    float64                       `json:"amount"`
	Base      string                        `json:"base"`
	StartDate string                        `json:"start_date"`
	EndDate   string                        `json:"end_date"`
	Rates     map[string]map[string]float64 `json:"rates"`
}
