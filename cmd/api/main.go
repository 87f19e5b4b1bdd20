package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-pipeline-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-pipeline-api/infrastructure/dataset"
	"github.com/vfg2006/sales-pipeline-api/infrastructure/repository"
	"github.com/vfg2006/sales-pipeline-api/internal/api"
	"github.com/vfg2006/sales-pipeline-api/internal/config"
	"github.com/vfg2006/sales-pipeline-api/internal/domain"
	"github.com/vfg2006/sales-pipeline-api/internal/scheduler"
	"github.com/vfg2006/sales-pipeline-api/internal/usecases/analyzing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Carga única do dataset: depois disso as coleções são somente leitura
	// pelo resto da vida do processo.
	data, err := loadDataset(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o dataset")
	}

	analyticsService := analyzing.NewService(cfg, data)

	snapshotService := scheduler.NewPipelineSnapshotService(analyticsService, cfg)
	if err := snapshotService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshot do pipeline")
	} else {
		logrus.Info("Agendador de snapshot do pipeline iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		analyticsService,
		snapshotService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// loadDataset escolhe a origem da carga inicial: Postgres quando DATABASE_URL
// está configurada, arquivos JSON caso contrário.
func loadDataset(ctx context.Context, cfg *config.Config) (*domain.Dataset, error) {
	if cfg.Database.URL == "" {
		return dataset.NewLoader(cfg.Dataset).Load()
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")

	data, err := repository.NewDatasetRepository(conn).Load(ctx)
	if err != nil {
		return nil, err
	}

	dataset.LogSanity(data)

	return data, nil
}
