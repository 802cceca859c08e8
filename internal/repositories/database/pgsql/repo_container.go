package pgsql

import (
	portsrepo "github.com/SscSPs/counterparty_portal/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo:      newPgxCurrencyRepository(dbPool),
		ExchangeRateRepo:  newPgxExchangeRateRepository(dbPool),
		BalanceSheetRepo:  newPgxBalanceSheetRepository(dbPool),
		CounterpartyRepo:  newPgxCounterpartyRepository(dbPool),
		MemberRepo:        newPgxMemberRepository(dbPool),
		DocumentRepo:      newPgxDocumentRepository(dbPool),
		CommentRepo:       newPgxCommentRepository(dbPool),
		RatingRepo:        newPgxRatingRepository(dbPool),
		ReferenceDataRepo: newPgxReferenceDataRepository(dbPool),
		NotificationRepo:  newPgxNotificationRepository(dbPool),
		DueDiligenceRepo:  newPgxDueDiligenceRepository(dbPool),
		UserRepo:          newPgxUserRepository(dbPool),
		HealthRepo:        newPgxHealthRepository(dbPool),
	}
}
