package adsetting

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

import (
	"context"

	"github.com/vfg2006/adset-control-api/internal/domain"
)

// AdSetIntegrator é a integração com a plataforma de anúncios.
// Os métodos Fetch* retornam nil em qualquer falha.
type AdSetIntegrator interface {
	FetchAdSets(ctx context.Context) []domain.AdSet
	FetchAccountInfo(ctx context.Context) *domain.AccountInfo
	UpdateAdSetStatus(ctx context.Context, adSetID string, status domain.AdSetStatus) error
}

// AdSetter é o conjunto de comandos expostos ao operador
type AdSetter interface {
	Hello() *domain.HelloResponse
	Resolve(ctx context.Context) domain.AdSetSource
	Search(ctx context.Context, query string, limit int) (*domain.AdSetSearchResponse, error)
	List(ctx context.Context, limit int) *domain.AdSetListResponse
	Status(ctx context.Context) *domain.AdSetStatusResponse
	Toggle(ctx context.Context, rawIDs string, action string) (*domain.ToggleResult, error)
	APITest(ctx context.Context) *domain.APITestReport
}
