package domain

// DashboardSnapshot is the aggregator's result. Each field holds the value
// of one domain's summary call, or nil when that call failed. Fields are
// all-or-nothing: a populated field is always a complete record.
type DashboardSnapshot struct {
	Weather       *WeatherSample   `json:"weather"`
	Characters    *CharacterPage   `json:"characters"`
	Countries     []Country        `json:"countries"`
	Cryptos       []CryptoAsset    `json:"cryptos"`
	Pokemon       *PokemonList     `json:"pokemon"`
	ExchangeRates *ExchangeRateSet `json:"exchangeRates"`
	News          *NewsResponse    `json:"news"`
	Movies        *MovieResponse   `json:"movies"`
}
