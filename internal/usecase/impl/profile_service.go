// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"fintwin/config"
	"fintwin/internal/domain/entity"
	domainerrors "fintwin/internal/domain/errors"
	"fintwin/internal/domain/repository"
	"fintwin/internal/domain/service"
	logs "fintwin/internal/infra/log"
	"fintwin/internal/infra/metrics"
	"fintwin/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Classification outcomes recorded per save.
const (
	classificationLabelled        = "labelled"
	classificationUpstreamFailed  = "upstream_failed"
	classificationWriteBackFailed = "writeback_failed"
)

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	Classifier  service.Classifier
	Config      *config.Config
	Metrics     *metrics.Metrics `optional:"true"`
	Logger      *slog.Logger
}

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo      repository.ProfileRepository
	classifier       service.Classifier
	operationTimeout time.Duration
	metrics          *metrics.Metrics
	logger           *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		profileRepo:      params.ProfileRepo,
		classifier:       params.Classifier,
		operationTimeout: params.Config.Storage.OperationTimeout,
		metrics:          params.Metrics,
		logger:           params.Logger,
	}
}

// SaveProfile persists the payload and then classifies the stored profile.
// The classifier is advisory: its failure, or a failed label write-back, leaves the
// stored userClass as it was and the save still succeeds. The write-back touches only
// the label, so a concurrent save of the same email is never reverted.
func (srv *profileService) SaveProfile(ctx context.Context, input *usecase.SaveProfileInput) (*entity.Profile, error) {
	logger := logs.FromContext(ctx, srv.logger).With(slog.String("email", input.Email))
	logger.Info("Saving user profile")

	profile, err := srv.upsert(ctx, input)
	if err != nil {
		logger.Error("Failed to save user profile", slog.Any("error", err))

		return nil, err
	}

	outcome := srv.classifier.Classify(ctx, service.SummaryOf(profile))
	if !outcome.OK() {
		srv.recordClassification(classificationUpstreamFailed)
		logger.Warn("Classification failed, keeping stored user class",
			slog.String("user_class", profile.UserClass.String()),
			slog.String("reason", string(outcome.Failure().Reason)),
		)

		return profile, nil
	}

	labelled := *profile
	labelled.UserClass = outcome.Value()
	if err := srv.saveUserClass(ctx, profile.Email, labelled.UserClass); err != nil {
		srv.recordClassification(classificationWriteBackFailed)
		logger.Warn("Failed to store user class, keeping previous value",
			slog.String("user_class", profile.UserClass.String()),
			slog.String("label", labelled.UserClass.String()),
			slog.Any("error", err),
		)

		return profile, nil
	}

	srv.recordClassification(classificationLabelled)
	logger.Info("User profile classified", slog.String("user_class", labelled.UserClass.String()))

	return &labelled, nil
}

// GetProfile retrieves a stored profile by email.
func (srv *profileService) GetProfile(ctx context.Context, email string) (*entity.Profile, error) {
	ctx, cancel := srv.withTimeout(ctx)
	defer cancel()

	profile, err := srv.profileRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProfileNotFound, "profile not found")
		}

		return nil, errors.Wrap(err, "failed to get profile")
	}

	return profile, nil
}

func (srv *profileService) upsert(ctx context.Context, input *usecase.SaveProfileInput) (*entity.Profile, error) {
	ctx, cancel := srv.withTimeout(ctx)
	defer cancel()

	profile, err := srv.profileRepo.Upsert(ctx, input.Email, input.Patch)
	if err != nil {
		return nil, asPersistenceError(err, "failed to upsert profile")
	}

	return profile, nil
}

func (srv *profileService) saveUserClass(ctx context.Context, email string, class entity.UserClass) error {
	ctx, cancel := srv.withTimeout(ctx)
	defer cancel()

	return srv.profileRepo.SaveUserClass(ctx, email, class)
}

func (srv *profileService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if srv.operationTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, srv.operationTimeout)
}

func (srv *profileService) recordClassification(outcome string) {
	if srv.metrics != nil {
		srv.metrics.Classifications.WithLabelValues(outcome).Inc()
	}
}

// asPersistenceError keeps app errors as they are and wraps anything else.
func asPersistenceError(err error, details string) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return domainerrors.NewPersistenceError(err, details)
}
