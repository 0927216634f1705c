package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/enrolldesk/enrolldesk/internal/app/models"
	appRepos "github.com/enrolldesk/enrolldesk/internal/app/repositories"
	"github.com/enrolldesk/enrolldesk/internal/pkg/apperrors"
)

// defaultColleges is the starter reference list; operators extend it from
// the college management screen.
var defaultColleges = []appModels.College{
	{Name: "Government Arts College", Courses: []string{"BA", "BSc", "BCom"}},
	{Name: "City Engineering College", Courses: []string{"BE", "BTech", "MTech"}},
	{Name: "National Science College", Courses: []string{"BSc", "MSc", "BCA", "MCA"}},
	{Name: "Sunrise Business School", Courses: []string{"BBA", "MBA", "BCom"}},
}

// CreateDefaultData seeds the college reference list if the entries don't
// already exist.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	collegeRepo := appRepos.NewCollegeRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default college list...")
	var finalErr error

	for i := range defaultColleges {
		college := defaultColleges[i]
		err := collegeRepo.Create(ctx, &college)
		if err != nil && !errors.Is(err, apperrors.ErrCollegeAlreadyExists) {
			lgr.Error().Err(err).Str("college", college.Name).Msg("Error creating default college")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Int("count", len(defaultColleges)).Msg("Default college list is in place")
	}

	return finalErr
}
