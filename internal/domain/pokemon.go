package domain

// PokemonRecord mirrors one record from the species database API.
type PokemonRecord struct {
	ID        int              `json:"id"`
	Name      string           `json:"name"`
	Height    int              `json:"height"`
	Weight    int              `json:"weight"`
	Sprites   PokemonSprites   `json:"sprites"`
	Types     []PokemonType    `json:"types"`
	Stats     []PokemonStat    `json:"stats"`
	Abilities []PokemonAbility `json:"abilities"`
}

type PokemonSprites struct {
	FrontDefault string `json:"front_default"`
	Other        struct {
		OfficialArtwork struct {
			FrontDefault string `json:"front_default"`
		} `json:"official-artwork"`
	} `json:"other"`
}

type PokemonType struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

type PokemonStat struct {
	BaseStat int `json:"base_stat"`
	Stat     struct {
		Name string `json:"name"`
	} `json:"stat"`
}

type PokemonAbility struct {
	Ability struct {
		Name string `json:"name"`
	} `json:"ability"`
	IsHidden bool `json:"is_hidden"`
}

// PokemonSpeciesRecord mirrors one species-level record, which carries the
// classification data the per-pokemon record lacks.
type PokemonSpeciesRecord struct {
	ID          int            `json:"id"`
	Name        string         `json:"name"`
	Color       NamedResource  `json:"color"`
	Habitat     *NamedResource `json:"habitat"`
	IsLegendary bool           `json:"is_legendary"`
	IsMythical  bool           `json:"is_mythical"`
	EvolvesFrom *NamedResource `json:"evolves_from_species"`
}

// NamedResource is the species database's {name, url} reference pair.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// PokemonList is one page of the paginated species listing.
type PokemonList struct {
	Count   int             `json:"count"`
	Results []NamedResource `json:"results"`
}

// PokemonTypeList is the listing of all species types.
type PokemonTypeList struct {
	Results []NamedResource `json:"results"`
}

// PokemonTypeMembers is the membership listing for a single type.
type PokemonTypeMembers struct {
	Pokemon []struct {
		Pokemon NamedResource `json:"pokemon"`
	} `json:"pokemon"`
}
