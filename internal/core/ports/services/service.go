package services

// ServiceContainer bundles the service facades handed to the handlers.
type ServiceContainer struct {
	Account   AccountSvcFacade
	Record    RecordSvcFacade
	Reporting ReportingSvcFacade
}
