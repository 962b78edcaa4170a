package usecase

import (
	"context"
	"regexp"

	"github.com/brandops/allocation-api/internal/application/dto"
	"github.com/brandops/allocation-api/internal/domain"
	"github.com/brandops/allocation-api/internal/domain/entity"
	"github.com/brandops/allocation-api/internal/domain/projection"
	"github.com/brandops/allocation-api/internal/domain/repository"
	"github.com/brandops/allocation-api/internal/domain/schema"
)

// customKeyPattern claves de columnas personalizadas: snake_case simple.
var customKeyPattern = regexp.MustCompile(`^[a-z][a-z0-9_]{0,62}$`)

// ColumnUseCase configuración de columnas para el viewer: visibles, editables,
// grupos y alta de columnas personalizadas.
type ColumnUseCase struct {
	tx      TxRunner
	records repository.BrandRecordRepository
	engine  *projection.Engine
	groups  map[string]string
}

// NewColumnUseCase construye el caso de uso.
func NewColumnUseCase(tx TxRunner, records repository.BrandRecordRepository, engine *projection.Engine, groups map[string]string) *ColumnUseCase {
	return &ColumnUseCase{tx: tx, records: records, engine: engine, groups: groups}
}

// inferCustom descubre las columnas personalizadas desde los datos actuales.
func (uc *ColumnUseCase) inferCustom() ([]schema.Column, error) {
	all, err := uc.records.List()
	if err != nil {
		return nil, err
	}
	sets := make([]map[string]any, 0, len(all))
	for _, r := range all {
		sets = append(sets, r.CustomFields)
	}
	return schema.InferCustomColumns(sets), nil
}

// Columns calcula la configuración de columnas del viewer: lista visible
// ordenada con editabilidad por columna, resumen de grupos y el permiso de
// creación de columnas personalizadas.
func (uc *ColumnUseCase) Columns(viewer projection.Viewer) (*dto.ColumnsResponse, error) {
	custom, err := uc.inferCustom()
	if err != nil {
		return nil, err
	}
	visible := uc.engine.VisibleColumns(viewer, custom)
	editable := uc.engine.EditableKeys(viewer, custom)
	summaries := uc.engine.GroupSummaries(viewer, custom)

	cols := make([]dto.ColumnResponse, 0, len(visible))
	for _, c := range visible {
		cols = append(cols, dto.ColumnResponse{
			Key:      c.Key,
			Label:    c.Label,
			Type:     string(c.Type),
			Options:  c.Options,
			Width:    c.Width,
			Custom:   c.Custom,
			Required: c.Required,
			Group:    uc.groups[c.Key],
			Editable: editable[c.Key],
		})
	}

	groups := make([]dto.GroupSummaryResponse, 0, len(summaries))
	for _, g := range summaries {
		groups = append(groups, dto.GroupSummaryResponse{
			Name:    g.Name,
			Columns: g.Columns,
			Visible: g.Visible,
			Total:   g.Total,
		})
	}

	return &dto.ColumnsResponse{
		Columns:         cols,
		Groups:          groups,
		CanCreateCustom: uc.engine.CanCreateCustomColumn(viewer),
	}, nil
}

// AddCustomColumn crea una columna personalizada sembrando la clave vacía en
// todos los registros. Solo admin o company con cuenta admin.
func (uc *ColumnUseCase) AddCustomColumn(ctx context.Context, actor Actor, in dto.CreateCustomColumnRequest) error {
	if !uc.engine.CanCreateCustomColumn(actor.Viewer) {
		return domain.ErrForbidden
	}
	if !customKeyPattern.MatchString(in.Key) {
		return domain.ErrInvalidInput
	}
	// Colisión con el catálogo declarado o con una custom existente.
	for _, c := range uc.engine.VisibleColumns(projection.Viewer{Role: projection.RoleAdmin}, nil) {
		if c.Key == in.Key {
			return domain.ErrColumnExists
		}
	}
	custom, err := uc.inferCustom()
	if err != nil {
		return err
	}
	for _, c := range custom {
		if c.Key == in.Key {
			return domain.ErrColumnExists
		}
	}
	return uc.tx.Run(ctx, func(records repository.BrandRecordRepository, audit repository.AuditRepository) error {
		if err := records.AddCustomKey(in.Key); err != nil {
			return err
		}
		return audit.Create(auditEntry(actor, "", entity.AuditActionAddColumn,
			[]entity.FieldChange{{Key: in.Key, From: "", To: ""}}))
	})
}
