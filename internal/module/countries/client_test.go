package countries

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/omnidash/omnidash/internal/domain"
	"github.com/omnidash/omnidash/internal/fetch"
)

const countryBody = `[
	{
		"name": {"common": "Germany", "official": "Federal Republic of Germany"},
		"capital": ["Berlin"],
		"region": "Europe",
		"subregion": "Western Europe",
		"population": 83240525,
		"flags": {"svg": "https://flagcdn.com/de.svg", "png": "https://flagcdn.com/w320/de.png"},
		"currencies": {"EUR": {"name": "Euro", "symbol": "€"}},
		"languages": {"deu": "German"},
		"area": 357114,
		"cca3": "DEU"
	}
]`

func TestAllCountries_RequestsFieldProjection(t *testing.T) {
	var gotPath, gotFields string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotFields = r.URL.Query().Get("fields")
		w.Write([]byte(countryBody))
	}))
	defer srv.Close()

	client := NewClient(fetch.New(), srv.URL)
	list, err := client.AllCountries(context.Background())
	if err != nil {
		t.Fatalf("AllCountries: %v", err)
	}

	if gotPath != "/all" {
		t.Errorf("path = %q, want /all", gotPath)
	}
	if gotFields != fieldProjection {
		t.Errorf("fields = %q, want fixed projection", gotFields)
	}
	if len(list) != 1 || list[0].Name.Common != "Germany" || list[0].CCA3 != "DEU" {
		t.Errorf("list = %+v", list)
	}
	if list[0].Currencies["EUR"].Symbol != "€" {
		t.Errorf("currencies = %+v", list[0].Currencies)
	}
}

func TestCountryByCode(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(countryBody))
	}))
	defer srv.Close()

	client := NewClient(fetch.New(), srv.URL)
	if _, err := client.CountryByCode(context.Background(), "DEU"); err != nil {
		t.Fatalf("CountryByCode: %v", err)
	}
	if gotPath != "/alpha/DEU" {
		t.Errorf("path = %q, want /alpha/DEU", gotPath)
	}
}

func TestSearchCountries_EscapesPathSegment(t *testing.T) {
	var gotEscaped string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotEscaped = r.URL.EscapedPath()
		w.Write([]byte(countryBody))
	}))
	defer srv.Close()

	client := NewClient(fetch.New(), srv.URL)
	if _, err := client.SearchCountries(context.Background(), "Côte d'Ivoire"); err != nil {
		t.Fatalf("SearchCountries: %v", err)
	}
	want := "/name/" + url.PathEscape("Côte d'Ivoire")
	if gotEscaped != want {
		t.Errorf("escaped path = %q, want %q", gotEscaped, want)
	}
}

func TestCountriesByRegion(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(countryBody))
	}))
	defer srv.Close()

	client := NewClient(fetch.New(), srv.URL)
	if _, err := client.CountriesByRegion(context.Background(), "Europe"); err != nil {
		t.Fatalf("CountriesByRegion: %v", err)
	}
	if gotPath != "/region/Europe" {
		t.Errorf("path = %q, want /region/Europe", gotPath)
	}
}

func TestEmptyInputs_AreValidationErrors(t *testing.T) {
	client := NewClient(fetch.New(), "http://unused.invalid")

	calls := map[string]func() error{
		"code": func() error {
			_, err := client.CountryByCode(context.Background(), "  ")
			return err
		},
		"name": func() error {
			_, err := client.SearchCountries(context.Background(), "")
			return err
		},
		"region": func() error {
			_, err := client.CountriesByRegion(context.Background(), "")
			return err
		},
	}

	for name, call := range calls {
		if err := call(); !domain.IsValidation(err) {
			t.Errorf("%s: expected validation error, got %v", name, err)
		}
	}
}

func TestSearchCountries_NoMatch_MapsUpstream404(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"status": 404, "message": "Not Found"}`))
	}))
	defer srv.Close()

	client := NewClient(fetch.New(), srv.URL)
	_, err := client.SearchCountries(context.Background(), "Atlantis")
	if !domain.IsUpstream(err) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if got := domain.UpstreamStatus(err); got != http.StatusNotFound {
		t.Errorf("upstream status = %d, want 404", got)
	}
}
