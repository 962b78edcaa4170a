package usecase

import (
	"github.com/brandops/allocation-api/internal/application/dto"
	"github.com/brandops/allocation-api/internal/domain"
	"github.com/brandops/allocation-api/internal/domain/entity"
	"github.com/brandops/allocation-api/internal/domain/projection"
	"github.com/brandops/allocation-api/internal/domain/repository"
)

// AuditUseCase consulta de la bitácora de auditoría (solo admin).
type AuditUseCase struct {
	repo repository.AuditRepository
}

// NewAuditUseCase construye el caso de uso.
func NewAuditUseCase(repo repository.AuditRepository) *AuditUseCase {
	return &AuditUseCase{repo: repo}
}

// List lista la bitácora paginada, más reciente primero.
func (uc *AuditUseCase) List(viewer projection.Viewer, page dto.PageRequest) (*dto.AuditListResponse, error) {
	if viewer.Role != projection.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	page.DefaultPage()
	entries, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toAuditList(entries, page), nil
}

// ListByRecord lista la bitácora de un registro concreto.
func (uc *AuditUseCase) ListByRecord(viewer projection.Viewer, recordID string, page dto.PageRequest) (*dto.AuditListResponse, error) {
	if viewer.Role != projection.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	page.DefaultPage()
	entries, err := uc.repo.ListByRecord(recordID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toAuditList(entries, page), nil
}

func toAuditList(entries []*entity.AuditEntry, page dto.PageRequest) *dto.AuditListResponse {
	items := make([]dto.AuditEntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.AuditEntryResponse{
			ID:        e.ID,
			RecordID:  e.RecordID,
			UserID:    e.UserID,
			Username:  e.Username,
			Action:    e.Action,
			Changes:   e.Changes,
			CreatedAt: e.CreatedAt,
		})
	}
	return &dto.AuditListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
}
