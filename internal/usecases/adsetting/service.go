package adsetting

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adset-control-api/infrastructure/repository"
	"github.com/vfg2006/adset-control-api/internal/config"
	"github.com/vfg2006/adset-control-api/internal/domain"
	"github.com/vfg2006/adset-control-api/pkg/apiErrors"
	"github.com/vfg2006/adset-control-api/pkg/metrics"
	"github.com/vfg2006/adset-control-api/pkg/utils"
)

const helloMessage = "🤖 Olá! Eu sou o robô de gerenciamento de anúncios!"

type Service struct {
	integrator AdSetIntegrator
	auditRepo  repository.ToggleAuditRepository
	cfg        *config.Config
	generateID func() (string, error)
}

// NewService cria o serviço; auditRepo pode ser nil quando a auditoria está desabilitada
func NewService(
	integrator AdSetIntegrator,
	auditRepo repository.ToggleAuditRepository,
	cfg *config.Config,
) *Service {
	return &Service{
		integrator: integrator,
		auditRepo:  auditRepo,
		cfg:        cfg,
		generateID: utils.GenerateID,
	}
}

func (s *Service) Hello() *domain.HelloResponse {
	return &domain.HelloResponse{Message: helloMessage}
}

// Resolve decide entre dados ao vivo e os conjuntos de demonstração. Nunca falha.
func (s *Service) Resolve(ctx context.Context) domain.AdSetSource {
	var source domain.AdSetSource

	switch {
	case !s.cfg.Meta.HasCredentials():
		logrus.WithField("missing", s.cfg.Meta.MissingKeys()).Info("adsets: credentials not configured, using demo data")
		source = domain.FallbackSource(domain.DemoAdSets())
	default:
		records := s.integrator.FetchAdSets(ctx)
		if records == nil {
			logrus.Warn("adsets: live fetch failed, using demo data")
			source = domain.FallbackSource(domain.DemoAdSets())
		} else {
			logrus.WithField("total", len(records)).Info("adsets: using live data")
			source = domain.LiveSource(records)
		}
	}

	metrics.RecordResolution(string(source.Provenance()))

	return source
}

// Search rejeita nomes vazios ou só com espaços; a consulta é usada como recebida
func (s *Service) Search(ctx context.Context, query string, limit int) (*domain.AdSetSearchResponse, error) {
	if strings.TrimSpace(query) == "" {
		return nil, NewAdSetError(ErrSearchQueryEmpty, apiErrors.ErrMissingRequiredData, "Informe o nome a ser buscado")
	}

	source := s.Resolve(ctx)
	result := domain.FilterByName(source.Records(), query)

	return &domain.AdSetSearchResponse{
		Live:   source.IsLive(),
		Source: source.Provenance(),
		Query:  query,
		Total:  result.Total,
		AdSets: result.Head(limit),
	}, nil
}

func (s *Service) List(ctx context.Context, limit int) *domain.AdSetListResponse {
	source := s.Resolve(ctx)
	all := domain.SearchResult{Total: source.Len(), Matches: source.Records()}

	return &domain.AdSetListResponse{
		Live:   source.IsLive(),
		Source: source.Provenance(),
		Total:  all.Total,
		AdSets: all.Head(limit),
	}
}

// Status agrega os conjuntos e lista os que passaram do limite padrão de 80%.
// Os dados da conta só são buscados quando a fonte é ao vivo.
func (s *Service) Status(ctx context.Context) *domain.AdSetStatusResponse {
	source := s.Resolve(ctx)
	warnings := domain.BudgetWarnings(source.Records(), domain.DefaultWarningThreshold)

	response := &domain.AdSetStatusResponse{
		Live:         source.IsLive(),
		Source:       source.Provenance(),
		Stats:        domain.Aggregate(source.Records()),
		Threshold:    domain.DefaultWarningThreshold,
		WarningCount: len(warnings),
		Warnings:     warnings,
	}

	if source.IsLive() {
		response.Account = s.integrator.FetchAccountInfo(ctx)
	}

	return response
}

// Toggle aplica o status a cada id, um de cada vez e na ordem recebida. Falhas de um
// item não interrompem os demais.
func (s *Service) Toggle(ctx context.Context, rawIDs string, action string) (*domain.ToggleResult, error) {
	ids := domain.ParseAdSetIDs(rawIDs)
	if len(ids) == 0 {
		return nil, NewAdSetError(ErrNoAdSetIDs, apiErrors.ErrMissingRequiredData, "Informe ao menos um ID de conjunto")
	}

	status, err := domain.ParseAdSetStatus(action)
	if err != nil {
		return nil, NewAdSetError(ErrInvalidStatus, apiErrors.ErrInvalidRequest, err.Error())
	}

	if strings.TrimSpace(s.cfg.Meta.AccessToken) == "" {
		return nil, NewAdSetError(ErrConfigurationIncomplete, apiErrors.ErrConfigurationIncomplete, "META_ACCESS_TOKEN não configurado")
	}

	batchID, err := s.generateID()
	if err != nil {
		logrus.WithError(err).Warn("adsets: failed to generate toggle batch id")
	}

	outcomes := make([]domain.ToggleOutcome, 0, len(ids))
	for _, id := range ids {
		outcomes = append(outcomes, s.toggleOne(ctx, id, status))
	}

	successes, failures := domain.PartitionOutcomes(outcomes)

	logrus.WithFields(logrus.Fields{
		"batch_id":  batchID,
		"status":    status,
		"successes": len(successes),
		"failures":  len(failures),
	}).Info("adsets: toggle finished")

	s.audit(ctx, batchID, status, outcomes)

	return &domain.ToggleResult{
		BatchID:      batchID,
		TargetStatus: status,
		Successes:    successes,
		Failures:     failures,
	}, nil
}

func (s *Service) toggleOne(ctx context.Context, id string, status domain.AdSetStatus) domain.ToggleOutcome {
	outcome := domain.ToggleOutcome{
		ID:          id,
		ActionLabel: status.Label(),
	}

	if err := s.integrator.UpdateAdSetStatus(ctx, id, status); err != nil {
		outcome.ErrorMessage = err.Error()
	} else {
		outcome.Success = true
	}

	metrics.RecordToggle(string(status), outcome.Success)

	return outcome
}

// audit grava o lote quando a auditoria está habilitada; falhas só geram log
func (s *Service) audit(ctx context.Context, batchID string, status domain.AdSetStatus, outcomes []domain.ToggleOutcome) {
	if s.auditRepo == nil || !s.cfg.Audit.Enabled {
		return
	}

	entries := make([]domain.ToggleAuditEntry, 0, len(outcomes))
	for _, o := range outcomes {
		id, err := s.generateID()
		if err != nil {
			logrus.WithError(err).Error("adsets: failed to generate audit entry id")
			return
		}

		entries = append(entries, domain.ToggleAuditEntry{
			ID:           id,
			BatchID:      batchID,
			AdSetID:      o.ID,
			TargetStatus: status,
			Success:      o.Success,
			ErrorMessage: o.ErrorMessage,
		})
	}

	start := time.Now()
	if err := s.auditRepo.SaveBatch(ctx, entries); err != nil {
		logrus.WithFields(logrus.Fields{
			"batch_id": batchID,
			"error":    err.Error(),
		}).Error("adsets: failed to save toggle audit")
		return
	}

	logrus.WithFields(logrus.Fields{
		"batch_id": batchID,
		"entries":  len(entries),
		"elapsed":  time.Since(start).String(),
	}).Debug("adsets: toggle audit saved")
}

// APITest reporta quais credenciais existem e, com token e conta, faz uma chamada de cada
func (s *Service) APITest(ctx context.Context) *domain.APITestReport {
	meta := s.cfg.Meta

	report := &domain.APITestReport{
		HasAppID:       strings.TrimSpace(meta.AppID) != "",
		HasAppSecret:   strings.TrimSpace(meta.AppSecret) != "",
		HasAccessToken: strings.TrimSpace(meta.AccessToken) != "",
		HasAdAccountID: strings.TrimSpace(meta.AdAccountID) != "",
		MissingKeys:    meta.MissingKeys(),
	}

	if !meta.HasCredentials() {
		return report
	}

	report.Attempted = true

	if adSets := s.integrator.FetchAdSets(ctx); adSets != nil {
		report.AdSetsOK = true
		report.AdSetCount = len(adSets)
	}

	if account := s.integrator.FetchAccountInfo(ctx); account != nil {
		report.AccountOK = true
		report.AccountName = account.Name
		report.AccountStatus = account.AccountStatus
	}

	return report
}
