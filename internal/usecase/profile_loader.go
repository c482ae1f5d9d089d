package usecase

import (
	"context"
	"fmt"

	"bsm-service/internal/domain/repository"
	"bsm-service/internal/infrastructure/config"
	"bsm-service/pkg/bsm"
	"bsm-service/pkg/logger"
)

// GeneratorSettings is what the message generator is seeded with
type GeneratorSettings struct {
	Profiles     []bsm.AirlineProfile
	Destinations []string
	Airport      string
	Source       string
}

// Options converts the settings into generator options
func (s GeneratorSettings) Options() []bsm.Option {
	return []bsm.Option{
		bsm.WithProfiles(s.Profiles),
		bsm.WithDestinations(s.Destinations),
		bsm.WithAirport(s.Airport),
	}
}

// ProfileLoader resolves generator settings from the database, then the profiles file, then the built-in defaults
type ProfileLoader struct {
	airlineRepo  repository.AirlineRepository
	airportRepo  repository.AirportRepository
	profilesFile string
	airport      string
	logger       logger.Logger
}

// NewProfileLoader creates a new profile loader. Either repository may be nil.
func NewProfileLoader(
	airlineRepo repository.AirlineRepository,
	airportRepo repository.AirportRepository,
	profilesFile string,
	airport string,
	logger logger.Logger,
) *ProfileLoader {
	return &ProfileLoader{
		airlineRepo:  airlineRepo,
		airportRepo:  airportRepo,
		profilesFile: profilesFile,
		airport:      airport,
		logger:       logger,
	}
}

// Load returns the generator settings. A configured profiles file that cannot be read is an error;
// an empty or failing database falls through to the next source. The airport from the file
// overrides the configured one.
func (l *ProfileLoader) Load(ctx context.Context) (GeneratorSettings, error) {
	settings := GeneratorSettings{
		Profiles:     bsm.DefaultProfiles,
		Destinations: bsm.DefaultDestinations,
		Airport:      l.airport,
		Source:       "defaults",
	}

	if l.profilesFile != "" {
		file, err := config.LoadGeneratorProfiles(l.profilesFile)
		if err != nil {
			return settings, err
		}
		if len(file.Airlines) > 0 {
			settings.Profiles = make([]bsm.AirlineProfile, 0, len(file.Airlines))
			for _, a := range file.Airlines {
				settings.Profiles = append(settings.Profiles, bsm.AirlineProfile{Code: a.Code, NumericCode: a.NumericCode})
			}
			settings.Source = "file"
		}
		if len(file.Destinations) > 0 {
			settings.Destinations = file.Destinations
			settings.Source = "file"
		}
		if file.Airport != "" {
			settings.Airport = file.Airport
		}
	}

	if profiles, err := l.loadAirlines(ctx); err != nil {
		l.logger.Warn("Failed to load airlines from database", "error", err)
	} else if len(profiles) > 0 {
		settings.Profiles = profiles
		settings.Source = "database"
	}

	if destinations, err := l.loadDestinations(ctx); err != nil {
		l.logger.Warn("Failed to load destinations from database", "error", err)
	} else if len(destinations) > 0 {
		settings.Destinations = destinations
		settings.Source = "database"
	}

	if settings.Airport == "" {
		settings.Airport = bsm.DefaultAirport
	}

	l.logger.Info("Generator settings loaded",
		"source", settings.Source,
		"airlines", len(settings.Profiles),
		"destinations", len(settings.Destinations),
		"airport", settings.Airport)
	return settings, nil
}

func (l *ProfileLoader) loadAirlines(ctx context.Context) ([]bsm.AirlineProfile, error) {
	if l.airlineRepo == nil {
		return nil, nil
	}

	airlines, err := l.airlineRepo.ListWithNumericCode(ctx)
	if err != nil {
		return nil, fmt.Errorf("list airlines: %w", err)
	}

	profiles := make([]bsm.AirlineProfile, 0, len(airlines))
	for _, a := range airlines {
		profiles = append(profiles, bsm.AirlineProfile{Code: a.Code, NumericCode: a.NumericCode})
	}
	return profiles, nil
}

func (l *ProfileLoader) loadDestinations(ctx context.Context) ([]string, error) {
	if l.airportRepo == nil {
		return nil, nil
	}

	airports, err := l.airportRepo.ListDestinations(ctx)
	if err != nil {
		return nil, fmt.Errorf("list destinations: %w", err)
	}

	destinations := make([]string, 0, len(airports))
	for _, a := range airports {
		destinations = append(destinations, a.Code)
	}
	return destinations, nil
}
