package services

import (
	"github.com/SscSPs/counterparty_portal/internal/core/lifecycle"
	portsrepo "github.com/SscSPs/counterparty_portal/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/counterparty_portal/internal/core/ports/services"
	"github.com/SscSPs/counterparty_portal/internal/core/ports/storage"
	"github.com/SscSPs/counterparty_portal/internal/platform/config"
	"github.com/SscSPs/counterparty_portal/internal/platform/metrics"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// m may be nil, which disables instrumentation.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, blobs storage.BlobStore, m *metrics.Metrics, clock lifecycle.Clock) *portssvc.ServiceContainer {
	if clock == nil {
		clock = lifecycle.SystemClock{}
	}
	opts := []Option{WithClock(clock), WithMetrics(m)}

	container := &portssvc.ServiceContainer{}

	container.Currency = NewCurrencyService(repos.CurrencyRepo, opts...)
	container.ExchangeRate = NewExchangeRateService(repos.ExchangeRateRepo, repos.CurrencyRepo, opts...)
	container.BalanceSheet = NewBalanceSheetService(repos.BalanceSheetRepo, repos.ExchangeRateRepo, repos.CurrencyRepo, repos.CounterpartyRepo, opts...)

	container.Counterparty = NewCounterpartyService(repos.CounterpartyRepo, repos.ReferenceDataRepo, StatusCodes{
		Default:  cfg.DefaultStatusCode,
		Inactive: cfg.InactiveStatusCode,
	}, opts...)
	container.Member = NewMemberService(repos.MemberRepo, repos.CounterpartyRepo, opts...)
	container.Document = NewDocumentService(repos.DocumentRepo, repos.CounterpartyRepo, repos.ReferenceDataRepo, blobs, cfg.S3PresignTTL, opts...)
	container.Comment = NewCommentService(repos.CommentRepo, repos.CounterpartyRepo, opts...)
	container.Rating = NewRatingService(repos.RatingRepo, repos.CounterpartyRepo, repos.ReferenceDataRepo, blobs, opts...)
	container.ReferenceData = NewReferenceDataService(repos.ReferenceDataRepo, opts...)

	container.Notification = NewNotificationService(repos.NotificationRepo, opts...)
	container.Reminder = NewReminderService(repos.DocumentRepo, repos.CounterpartyRepo, repos.ReferenceDataRepo, container.Notification, cfg.InactiveStatusCode, opts...)
	container.DueDiligence = NewDueDiligenceService(repos.DueDiligenceRepo, repos.MemberRepo, container.Notification, opts...)

	container.User = NewUserService(repos.UserRepo, opts...)
	container.Health = NewHealthService(repos.HealthRepo)

	container.TokenService = NewTokenService(cfg, opts...)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	return container
}
