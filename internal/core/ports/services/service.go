package services

// ServiceContainer bundles every service facade the handlers consume.
// Constructed once at startup and passed down explicitly.
type ServiceContainer struct {
	Inventory   InventorySvcFacade
	Image       ImageSvcFacade
	Transaction TransactionSvcFacade
	Reporting   ReportingSvcFacade
	Auth        AuthSvcFacade
}
