package scheduler

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adset-control-api/internal/config"
	"github.com/vfg2006/adset-control-api/internal/domain"
	"github.com/vfg2006/adset-control-api/pkg/metrics"
	"github.com/vfg2006/adset-control-api/pkg/utils"
)

// AdSetResolver é a parte do serviço de conjuntos usada pela verificação de orçamento
type AdSetResolver interface {
	Resolve(ctx context.Context) domain.AdSetSource
}

// BudgetWatchConfig representa a configuração do agendador de verificação de orçamento
type BudgetWatchConfig struct {
	CronSchedule string
	Threshold    float64
	Enabled      bool
}

// BudgetWatchService verifica periodicamente quais conjuntos ativos passaram do limite de gasto
type BudgetWatchService struct {
	scheduler *gocron.Scheduler
	config    BudgetWatchConfig
	resolver  AdSetResolver

	mu              sync.Mutex
	running         bool
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastSource      domain.Provenance
	lastWarnedIDs   []string
}

func NewBudgetWatchService(resolver AdSetResolver, appConfig *config.Config) *BudgetWatchService {
	watchConfig := BudgetWatchConfig{
		CronSchedule: appConfig.BudgetWatch.CronSchedule,
		Threshold:    appConfig.BudgetWatch.Threshold,
		Enabled:      appConfig.BudgetWatch.Enabled,
	}

	if watchConfig.Threshold <= 0 {
		watchConfig.Threshold = domain.DefaultWarningThreshold
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": watchConfig.CronSchedule,
		"threshold":     watchConfig.Threshold,
		"enabled":       watchConfig.Enabled,
	}).Info("Configuração do agendador de verificação de orçamento carregada")

	return &BudgetWatchService{
		scheduler:     gocron.NewScheduler(time.Local),
		config:        watchConfig,
		resolver:      resolver,
		lastWarnedIDs: []string{},
	}
}

// Start agenda a verificação; o agendador para quando ctx é cancelado
func (s *BudgetWatchService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Verificação de orçamento desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de verificação de orçamento")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.run(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar verificação de orçamento: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de verificação de orçamento")
		s.scheduler.Stop()
	}()

	return nil
}

// run executa uma verificação; retorna false se outra já estiver em andamento
func (s *BudgetWatchService) run(ctx context.Context) bool {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		logrus.Info("Verificação de orçamento já em andamento, ignorando")
		return false
	}
	s.running = true
	s.lastStartedAt = time.Now()
	s.mu.Unlock()

	source := s.resolver.Resolve(ctx)
	warnings := domain.BudgetWarnings(source.Records(), s.config.Threshold)

	warnedIDs := make([]string, 0, len(warnings))
	for _, w := range warnings {
		warnedIDs = append(warnedIDs, w.ID)

		logrus.WithFields(logrus.Fields{
			"adset_id":    w.ID,
			"adset_name":  w.Name,
			"spend":       w.Spend(),
			"budget":      w.Budget(),
			"usage_ratio": utils.RoundWithTwoDecimalPlace(w.UsageRatio()),
			"source":      source.Provenance(),
		}).Warn("Conjunto ativo acima do limite de orçamento")
	}

	metrics.SetBudgetWarnings(len(warnings))

	logrus.WithFields(logrus.Fields{
		"source":    source.Provenance(),
		"total":     source.Len(),
		"warnings":  len(warnings),
		"threshold": s.config.Threshold,
	}).Info("Verificação de orçamento concluída")

	s.mu.Lock()
	s.running = false
	s.lastCompletedAt = time.Now()
	s.lastSource = source.Provenance()
	s.lastWarnedIDs = warnedIDs
	s.mu.Unlock()

	return true
}

// TriggerManualSync inicia uma verificação fora do agendamento
func (s *BudgetWatchService) TriggerManualSync() bool {
	s.mu.Lock()
	running := s.running
	s.mu.Unlock()

	if running {
		logrus.Info("Verificação de orçamento já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando verificação manual de orçamento")
	go s.run(context.Background())
	return true
}

// GetStatus retorna o status atual do agendador
func (s *BudgetWatchService) GetStatus() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return map[string]any{
		"enabled":               s.config.Enabled,
		"cron":                  s.config.CronSchedule,
		"threshold":             s.config.Threshold,
		"running":               s.running,
		"last_run_started_at":   s.lastStartedAt,
		"last_run_completed_at": s.lastCompletedAt,
		"last_source":           s.lastSource,
		"last_warned_adset_ids": slices.Clone(s.lastWarnedIDs),
	}
}
