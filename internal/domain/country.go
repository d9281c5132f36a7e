package domain

// Country mirrors one record from the country database API, limited to the
// fixed field projection the client always requests.
type Country struct {
	Name       CountryName         `json:"name"`
	Capital    []string            `json:"capital"`
	Region     string              `json:"region"`
	Subregion  string              `json:"subregion"`
	Population int64               `json:"population"`
	Flags      CountryFlags        `json:"flags"`
	Currencies map[string]Currency `json:"currencies"`
	Languages  map[string]string   `json:"languages"`
	Area       float64             `json:"area"`
	CCA3       string              `json:"cca3"`
}

type CountryName struct {
	Common   string `json:"common"`
	Official string `json:"official"`
}

type CountryFlags struct {
	SVG string `json:"svg"`
	PNG string `json:"png"`
}

type Currency struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}
