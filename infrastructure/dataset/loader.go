// Package dataset carrega as cinco coleções do dashboard a partir de
// arquivos JSON. A carga acontece uma única vez na inicialização; depois
// disso o Dataset é somente leitura.
package dataset

import (
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-pipeline-api/internal/config"
	"github.com/vfg2006/sales-pipeline-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Nomes dos arquivos esperados no diretório de dados.
const (
	dealsFile      = "deals.json"
	targetsFile    = "targets.json"
	repsFile       = "reps.json"
	activitiesFile = "activities.json"
	accountsFile   = "accounts.json"
)

type Loader struct {
	dir string
}

func NewLoader(cfg config.Dataset) *Loader {
	return &Loader{dir: cfg.Dir}
}

// Load lê e decodifica as cinco coleções. Qualquer arquivo ausente ou
// inválido aborta a inicialização: sem dataset completo não há o que servir.
func (l *Loader) Load() (*domain.Dataset, error) {
	ds := &domain.Dataset{}

	if err := l.readFile(dealsFile, &ds.Deals); err != nil {
		return nil, err
	}
	if err := l.readFile(targetsFile, &ds.Targets); err != nil {
		return nil, err
	}
	if err := l.readFile(repsFile, &ds.Reps); err != nil {
		return nil, err
	}
	if err := l.readFile(activitiesFile, &ds.Activities); err != nil {
		return nil, err
	}
	if err := l.readFile(accountsFile, &ds.Accounts); err != nil {
		return nil, err
	}

	LogSanity(ds)

	return ds, nil
}

func (l *Loader) readFile(name string, out any) error {
	path := filepath.Join(l.dir, name)

	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "erro ao ler %s", path)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrapf(err, "erro ao decodificar %s", path)
	}

	return nil
}

// LogSanity registra tamanhos e contagens de campos nulos das coleções, os
// mesmos diagnósticos que o dashboard imprimia na carga. Campos nulos não são
// erro: são excluídos das agregações que dependem deles.
func LogSanity(ds *domain.Dataset) {
	var nullAmount, wonNullClosedAt, wonNullAmount int
	for _, d := range ds.Deals {
		if d.Amount == nil {
			nullAmount++
		}
		if d.IsWon() && d.ClosedAt == nil {
			wonNullClosedAt++
		}
		if d.IsWon() && d.Amount == nil {
			wonNullAmount++
		}
	}

	logrus.WithFields(logrus.Fields{
		"deals":      len(ds.Deals),
		"targets":    len(ds.Targets),
		"reps":       len(ds.Reps),
		"activities": len(ds.Activities),
		"accounts":   len(ds.Accounts),
	}).Info("Dataset carregado")

	logrus.WithFields(logrus.Fields{
		"deals_null_amount":          nullAmount,
		"closed_won_null_closed_at":  wonNullClosedAt,
		"closed_won_null_amount":     wonNullAmount,
	}).Debug("Diagnóstico de campos nulos do dataset")
}
