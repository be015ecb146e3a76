package seed

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/mertcan/eduportal/internal/app/models"
	appRepos "github.com/mertcan/eduportal/internal/app/repositories"
	"github.com/mertcan/eduportal/internal/pkg/apperrors"
	"github.com/mertcan/eduportal/internal/pkg/auth"
)

const (
	defaultFacultyEmail    = "dean@eduportal.app"
	defaultFacultyName     = "Portal Administrator"
	defaultFacultyPassword = "ChangeMe123!"
)

// CreateDefaultData seeds a default faculty account so a fresh install
// has at least one principal able to publish content.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	profileRepo := appRepos.NewProfileRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default faculty account...")

	_, err := profileRepo.GetProfileByEmail(ctx, defaultFacultyEmail)
	if err == nil {
		lgr.Debug().Str("email", defaultFacultyEmail).Msg("Default faculty account already exists")
		return nil
	}
	if !errors.Is(err, apperrors.ErrProfileNotFound) {
		lgr.Error().Err(err).Msg("Error checking for default faculty account")
		return err
	}

	hashed, err := auth.HashPassword(defaultFacultyPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing default faculty password")
		return err
	}

	profile := &appModels.Profile{
		ID:       uuid.New(),
		Email:    defaultFacultyEmail,
		FullName: defaultFacultyName,
		Password: hashed,
		Role:     appModels.RoleFaculty,
	}

	if err := profileRepo.CreateProfile(ctx, profile); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating default faculty account")
		return err
	}

	lgr.Info().Str("email", defaultFacultyEmail).Msg("Default faculty account created")
	return nil
}
