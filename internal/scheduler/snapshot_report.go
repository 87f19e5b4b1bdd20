// Package scheduler contém o job agendado que registra snapshots do pipeline.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-pipeline-api/internal/config"
	"github.com/vfg2006/sales-pipeline-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-pipeline-api/pkg/utils"
)

// SnapshotStatus descreve o estado do job para a rota de status.
type SnapshotStatus struct {
	Enabled         bool       `json:"enabled"`
	CronSchedule    string     `json:"cronSchedule"`
	Running         bool       `json:"running"`
	LastStartedAt   *time.Time `json:"lastStartedAt,omitempty"`
	LastCompletedAt *time.Time `json:"lastCompletedAt,omitempty"`
}

// PipelineSnapshotService recalcula periodicamente o resumo e os fatores de
// risco e registra o resultado nos logs. É observabilidade pura: nada é
// persistido e nenhum dado novo entra no dataset.
type PipelineSnapshotService struct {
	scheduler          *gocron.Scheduler
	analyticsService   analyzing.Analyzer
	config             config.SnapshotReport
	runActive          bool
	runMutex           sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
}

func NewPipelineSnapshotService(
	analyticsService analyzing.Analyzer,
	cfg *config.Config,
) *PipelineSnapshotService {
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.SnapshotReport.CronSchedule,
		"enabled":       cfg.SnapshotReport.Enabled,
	}).Info("Configuração do agendador de snapshot do pipeline carregada")

	return &PipelineSnapshotService{
		scheduler:        scheduler,
		analyticsService: analyticsService,
		config:           cfg.SnapshotReport,
	}
}

func (s *PipelineSnapshotService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de snapshot do pipeline desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de snapshot do pipeline")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunSnapshot(); err != nil {
			logrus.WithError(err).Error("Erro na geração do snapshot do pipeline")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar snapshot do pipeline: %w", err)
	}

	s.scheduler.StartAsync()

	// Parar o cron quando o contexto da aplicação for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de snapshot do pipeline")
		s.scheduler.Stop()
	}()

	return nil
}

// RunSnapshot executa uma geração de snapshot. Execuções sobrepostas são
// descartadas em vez de enfileiradas.
func (s *PipelineSnapshotService) RunSnapshot() error {
	s.runMutex.Lock()
	if s.runActive {
		s.runMutex.Unlock()
		logrus.Warn("Geração de snapshot do pipeline já está em execução")
		return nil
	}
	s.runActive = true
	s.lastRunStartedAt = time.Now()
	s.runMutex.Unlock()

	defer func() {
		s.runMutex.Lock()
		s.runActive = false
		s.lastRunCompletedAt = time.Now()
		s.runMutex.Unlock()
	}()

	runID, err := utils.GenerateID()
	if err != nil {
		runID = "unknown"
	}

	logger := logrus.WithField("run_id", runID)
	logger.Info("Iniciando snapshot do pipeline")

	summary, err := s.analyticsService.Summary()
	if err != nil {
		return fmt.Errorf("erro ao calcular o resumo do pipeline: %w", err)
	}

	riskFactors, err := s.analyticsService.RiskFactors()
	if err != nil {
		return fmt.Errorf("erro ao calcular os fatores de risco: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"current_quarter_revenue": summary.CurrentQuarterRevenue,
		"target":                  summary.Target,
		"gap":                     summary.Gap,
		"gap_percentage":          summary.GapPercentage,
		"qoq_change":              summary.QoQChange,
		"stale_deals":             len(riskFactors.StaleDeals),
		"underperforming_reps":    len(riskFactors.UnderperformingReps),
		"low_activity_accounts":   len(riskFactors.LowActivityAccounts),
	}).Info("Snapshot do pipeline gerado")

	return nil
}

// TriggerManualSync dispara uma geração de snapshot fora do agendamento.
func (s *PipelineSnapshotService) TriggerManualSync() {
	go func() {
		if err := s.RunSnapshot(); err != nil {
			logrus.WithError(err).Error("Erro na geração manual do snapshot do pipeline")
		}
	}()
}

// Status devolve o estado atual do job.
func (s *PipelineSnapshotService) Status() SnapshotStatus {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	status := SnapshotStatus{
		Enabled:      s.config.Enabled,
		CronSchedule: s.config.CronSchedule,
		Running:      s.runActive,
	}
	if !s.lastRunStartedAt.IsZero() {
		startedAt := s.lastRunStartedAt
		status.LastStartedAt = &startedAt
	}
	if !s.lastRunCompletedAt.IsZero() {
		completedAt := s.lastRunCompletedAt
		status.LastCompletedAt = &completedAt
	}

	return status
}
