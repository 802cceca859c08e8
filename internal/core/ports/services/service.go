package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Currency      CurrencySvcFacade
	ExchangeRate  ExchangeRateSvcFacade
	BalanceSheet  BalanceSheetSvcFacade
	Counterparty  CounterpartySvcFacade
	Member        MemberSvcFacade
	Document      DocumentSvcFacade
	Comment       CommentSvcFacade
	Rating        RatingSvcFacade
	ReferenceData ReferenceDataSvcFacade
	Notification  NotificationSvcFacade
	Reminder      ReminderSvc
	DueDiligence  DueDiligenceSvcFacade
	User          UserSvcFacade
	Health        HealthSvc

	TokenService       TokenSvcFacade
	GoogleOAuthHandler GoogleOAuthHandlerSvcFacade
}
