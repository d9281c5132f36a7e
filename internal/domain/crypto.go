package domain

// CryptoAsset mirrors one market record from the market-data API.
type CryptoAsset struct {
	ID                       string     `json:"id"`
	Symbol                   string     `json:"symbol"`
	Name                     string     `json:"name"`
	Image                    string     `json:"image"`
	CurrentPrice             float64    `json:"current_price"`
	PriceChangePercentage24h float64    `json:"price_change_percentage_24h"`
	MarketCap                float64    `json:"market_cap"`
	TotalVolume              float64    `json:"total_volume"`
	Sparkline                *Sparkline `json:"sparkline_in_7d,omitempty"`
}

// Sparkline is the 7-day price series attached to a market record.
type Sparkline struct {
	Price []float64 `json:"price"`
}

// MarketChart is the price-history response: [timestamp, price] pairs.
type MarketChart struct {
	Prices [][2]float64 `json:"prices"`
}

// CoinRef is a search hit from the market-data API.
type CoinRef struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// CryptoSearchResult is the market-data search envelope.
type CryptoSearchResult struct {
	Coins []CoinRef `json:"coins"`
}
