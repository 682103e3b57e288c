package services

import (
	portsrepo "github.com/SscSPs/currency_exchanger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_exchanger/internal/core/ports/services"
)

// NewServiceContainer wires the rate snapshot and the conversion engine over the given repositories.
func NewServiceContainer(repos portsrepo.RepositoryProvider, opts ...ExchangeServiceOption) *portssvc.ServiceContainer {
	rates := NewRateService(repos.RateSource)
	return &portssvc.ServiceContainer{
		ExchangeRate: rates,
		Exchange:     NewExchangeService(repos.Ledger, rates, opts...),
	}
}
