package domain

// Character mirrors one record from the character database API.
type Character struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Status   string   `json:"status"`
	Species  string   `json:"species"`
	Gender   string   `json:"gender"`
	Origin   NamedRef `json:"origin"`
	Location NamedRef `json:"location"`
	Image    string   `json:"image"`
	Episode  []string `json:"episode"`
}

// NamedRef is a nested reference carrying only a display name.
type NamedRef struct {
	Name string `json:"name"`
}

// PageInfo is the provider's pagination envelope.
type PageInfo struct {
	Count int `json:"count"`
	Pages int `json:"pages"`
}

// CharacterPage is one page of a character listing, in the provider's
// wire shape.
type CharacterPage struct {
	Info    PageInfo    `json:"info"`
	Results []Character `json:"results"`
}
