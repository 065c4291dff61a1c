package seed

import (
	"github.com/rs/zerolog"

	appModels "github.com/campushub/portal/internal/app/models"
	appRepos "github.com/campushub/portal/internal/app/repositories"
	"github.com/campushub/portal/internal/config"
)

// CreateDefaultData appends a default warden account when the users table is
// empty, so a fresh deployment has a staff login before anyone registers.
func CreateDefaultData(cfg *config.Config, userRepo *appRepos.UserRepository, lgr zerolog.Logger) error {
	if !cfg.Seed.CreateDefaultWarden {
		return nil
	}

	count, err := userRepo.Count()
	if err != nil {
		lgr.Error().Err(err).Msg("Error counting user accounts during seed")
		return err
	}
	if count > 0 {
		lgr.Debug().Int("accounts", count).Msg("User table not empty, skipping default warden")
		return nil
	}

	lgr.Info().Str("institution", cfg.Seed.Institution).Str("username", cfg.Seed.Username).Msg("Creating default warden account...")
	warden := appModels.User{
		Institution: cfg.Seed.Institution,
		Username:    cfg.Seed.Username,
		Password:    cfg.Seed.Password,
		Role:        appModels.RoleWarden,
	}
	if err := userRepo.Create(warden); err != nil {
		lgr.Error().Err(err).Msg("Error creating default warden account")
		return err
	}

	lgr.Info().Msg("Default warden account created successfully")
	return nil
}
