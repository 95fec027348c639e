package service

import (
	"go.uber.org/zap"

	"gestion-notes/config"
	"gestion-notes/internal/repository"
)

// Service point d'entrée agrégé de tous les Service
type Service struct {
	Etudiant EtudiantService
	Note     NoteService
	Export   ExportService
}

// NewService crée l'agrégat Service
func NewService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) *Service {
	return &Service{
		Etudiant: NewEtudiantService(&cfg.Service, repo, logger),
		Note:     NewNoteService(repo, logger),
		Export:   NewExportService(repo, logger),
	}
}
