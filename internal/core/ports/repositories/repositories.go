package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	CurrencyRepo      CurrencyRepositoryFacade
	ExchangeRateRepo  ExchangeRateRepositoryFacade
	BalanceSheetRepo  BalanceSheetRepositoryFacade
	CounterpartyRepo  CounterpartyRepositoryFacade
	MemberRepo        MemberRepositoryFacade
	DocumentRepo      DocumentRepositoryFacade
	CommentRepo       CommentRepositoryFacade
	RatingRepo        RatingRepositoryFacade
	ReferenceDataRepo ReferenceDataRepositoryFacade
	NotificationRepo  NotificationRepositoryFacade
	DueDiligenceRepo  DueDiligenceRepositoryFacade
	UserRepo          UserRepositoryFacade
	HealthRepo        HealthRepository
}
