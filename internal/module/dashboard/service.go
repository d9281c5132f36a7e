// Package dashboard aggregates one representative call per domain into a
// single snapshot.
package dashboard

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/omnidash/omnidash/internal/domain"
	"github.com/omnidash/omnidash/internal/module/characters"
	"github.com/omnidash/omnidash/internal/module/countries"
	"github.com/omnidash/omnidash/internal/module/crypto"
	"github.com/omnidash/omnidash/internal/module/exchange"
	"github.com/omnidash/omnidash/internal/module/movies"
	"github.com/omnidash/omnidash/internal/module/news"
	"github.com/omnidash/omnidash/internal/module/pokemon"
	"github.com/omnidash/omnidash/internal/module/weather"
)

const (
	snapshotCity     = "New York"
	snapshotListSize = 5
)

// Service fans the snapshot out across all domain clients.
type Service struct {
	weather    *weather.Client
	characters *characters.Client
	countries  *countries.Client
	crypto     *crypto.Client
	pokemon    *pokemon.Client
	exchange   *exchange.Client
	news       *news.Client
	movies     *movies.Client
	log        *slog.Logger
}

// Clients bundles the per-domain clients the snapshot draws from.
type Clients struct {
	Weather    *weather.Client
	Characters *characters.Client
	Countries  *countries.Client
	Crypto     *crypto.Client
	Pokemon    *pokemon.Client
	Exchange   *exchange.Client
	News       *news.Client
	Movies     *movies.Client
}

// NewService creates the aggregator. A nil logger falls back to
// slog.Default.
func NewService(clients Clients, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		weather:    clients.Weather,
		characters: clients.Characters,
		countries:  clients.Countries,
		crypto:     clients.Crypto,
		pokemon:    clients.Pokemon,
		exchange:   clients.Exchange,
		news:       clients.News,
		movies:     clients.Movies,
		log:        log,
	}
}

// Snapshot issues all eight domain calls concurrently and returns whatever
// succeeded. Each field is set iff its call succeeded; failures are logged
// and leave the field nil. It never returns an error.
func (s *Service) Snapshot(ctx context.Context) *domain.DashboardSnapshot {
	snap := &domain.DashboardSnapshot{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sample, err := s.weather.SearchByCity(gctx, snapshotCity)
		if err != nil {
			s.logFailure("weather", err)
			return nil
		}
		snap.Weather = sample
		return nil
	})
	g.Go(func() error {
		page, err := s.characters.Characters(gctx, 1)
		if err != nil {
			s.logFailure("characters", err)
			return nil
		}
		snap.Characters = page
		return nil
	})
	g.Go(func() error {
		list, err := s.countries.AllCountries(gctx)
		if err != nil {
			s.logFailure("countries", err)
			return nil
		}
		snap.Countries = list
		return nil
	})
	g.Go(func() error {
		assets, err := s.crypto.TopCryptos(gctx, "usd", snapshotListSize)
		if err != nil {
			s.logFailure("cryptos", err)
			return nil
		}
		snap.Cryptos = assets
		return nil
	})
	g.Go(func() error {
		list, err := s.pokemon.PokemonList(gctx, snapshotListSize, 0)
		if err != nil {
			s.logFailure("pokemon", err)
			return nil
		}
		snap.Pokemon = list
		return nil
	})
	g.Go(func() error {
		rates, err := s.exchange.LatestRates(gctx, "USD")
		if err != nil {
			s.logFailure("exchange", err)
			return nil
		}
		snap.ExchangeRates = rates
		return nil
	})
	g.Go(func() error {
		snap.News = s.news.TopHeadlines(gctx, "", "")
		return nil
	})
	g.Go(func() error {
		snap.Movies = s.movies.PopularMovies(gctx, 1)
		return nil
	})

	_ = g.Wait() // branches never return errors
	return snap
}

func (s *Service) logFailure(field string, err error) {
	s.log.Warn("dashboard call failed, leaving field empty",
		slog.String("field", field), slog.Any("error", err))
}
