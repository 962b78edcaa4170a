package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/brandops/allocation-api/internal/application/dto"
	"github.com/brandops/allocation-api/internal/domain"
	"github.com/brandops/allocation-api/internal/domain/allocation"
	"github.com/brandops/allocation-api/internal/domain/entity"
	"github.com/brandops/allocation-api/internal/domain/projection"
	"github.com/brandops/allocation-api/internal/domain/repository"
	"github.com/brandops/allocation-api/internal/domain/schema"
	"github.com/brandops/allocation-api/pkg/textutil"
)

// BrandRecordUseCase casos de uso CRUD sobre registros de marca. Toda escritura
// pasa por el ciclo normalizar banderas → derivar FA → persistir (derive-then-submit
// atómico); toda lectura pasa por el motor de proyección del viewer.
type BrandRecordUseCase struct {
	tx      TxRunner
	records repository.BrandRecordRepository
	engine  *projection.Engine
}

// NewBrandRecordUseCase construye el caso de uso.
func NewBrandRecordUseCase(tx TxRunner, records repository.BrandRecordRepository, engine *projection.Engine) *BrandRecordUseCase {
	return &BrandRecordUseCase{tx: tx, records: records, engine: engine}
}

// List lista los registros proyectados para el viewer. Orden de evaluación:
// proyección (filtro de asignación de fábrica + inactivos) → búsqueda → orden.
// El filtro de asignación SIEMPRE precede a cualquier predicado del usuario.
func (uc *BrandRecordUseCase) List(viewer projection.Viewer, q dto.ListRecordsQuery) (*dto.RecordListResponse, error) {
	viewer.ShowInactive = q.ShowInactive
	all, err := uc.records.List()
	if err != nil {
		return nil, err
	}
	projected := uc.engine.ProjectRecords(all, viewer)

	if q.Search != "" {
		filtered := projected[:0:0]
		for _, r := range projected {
			if recordMatches(r, q.Search) {
				filtered = append(filtered, r)
			}
		}
		projected = filtered
	}

	if q.SortBy != "" {
		projected = uc.engine.SortRecords(projected, q.SortBy, q.Order != "desc")
	}

	items := make([]dto.RecordResponse, 0, len(projected))
	for _, r := range projected {
		items = append(items, *toRecordResponse(r))
	}
	return &dto.RecordListResponse{Items: items, Total: len(items)}, nil
}

// GetByID obtiene un registro proyectado para el viewer. Para factory, un
// registro no asignado es indistinguible de uno inexistente (nil).
func (uc *BrandRecordUseCase) GetByID(viewer projection.Viewer, id string) (*dto.RecordResponse, error) {
	r, err := uc.records.GetByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, nil
	}
	viewer.ShowInactive = true // un GET directo no oculta inactivos
	projected := uc.engine.ProjectRecords([]*entity.BrandRecord{r}, viewer)
	if len(projected) == 0 {
		return nil, nil
	}
	return toRecordResponse(projected[0]), nil
}

// Create crea un registro: valida editabilidad de cada clave enviada, normaliza
// banderas, deriva FA y persiste junto con la entrada de auditoría.
func (uc *BrandRecordUseCase) Create(ctx context.Context, actor Actor, in dto.CreateRecordRequest) (*dto.RecordResponse, error) {
	if actor.Viewer.Role == projection.RoleFactory {
		return nil, domain.ErrForbidden // los registros los da de alta company/admin
	}
	brand, _ := in.Fields[schema.KeyAllBrand].(string)
	if brand == "" {
		return nil, domain.ErrInvalidInput
	}

	custom := customColumnsFromKeys(nil, in.CustomFields)
	editable := uc.engine.EditableKeys(actor.Viewer, custom)
	table := uc.engine.Table()

	fields := make(map[string]any, len(in.Fields))
	for k, v := range in.Fields {
		if !editable[k] {
			return nil, fmt.Errorf("%w: %s", domain.ErrFieldNotEditable, k)
		}
		if table.IsFlagColumn(k) {
			v = allocation.NormalizeFlagValue(v)
		}
		fields[k] = v
	}
	if _, ok := fields[schema.KeyStatus]; !ok {
		fields[schema.KeyStatus] = "active"
	}

	now := time.Now()
	record := &entity.BrandRecord{
		ID:           uuid.New().String(),
		Fields:       table.Derive(fields),
		CustomFields: copyMap(in.CustomFields),
		CreatedAt:    now,
		UpdatedAt:    now,
		UpdatedBy:    actor.Username,
	}

	err := uc.tx.Run(ctx, func(records repository.BrandRecordRepository, audit repository.AuditRepository) error {
		if err := records.Create(record); err != nil {
			return err
		}
		return audit.Create(auditEntry(actor, record.ID, entity.AuditActionCreate, diffRecords(nil, record)))
	})
	if err != nil {
		return nil, err
	}
	return toRecordResponse(record), nil
}

// Update aplica una edición parcial: toda clave enviada debe estar en el
// conjunto editable del viewer (una clave bloqueada rechaza la edición completa
// con ErrFieldNotEditable). Las banderas se normalizan y los FA se re-derivan.
// Se trabaja sobre una copia: un fallo de escritura no muta nada.
func (uc *BrandRecordUseCase) Update(ctx context.Context, actor Actor, id string, in dto.UpdateRecordRequest) (*dto.RecordResponse, error) {
	existing, err := uc.records.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	if actor.Viewer.Role == projection.RoleFactory {
		// Un factory solo puede tocar registros asignados a su identidad.
		if len(uc.engine.ProjectRecords([]*entity.BrandRecord{existing}, withInactive(actor.Viewer))) == 0 {
			return nil, domain.ErrForbidden
		}
	}

	custom := customColumnsFromKeys(existing.CustomFields, in.CustomFields)
	editable := uc.engine.EditableKeys(actor.Viewer, custom)
	table := uc.engine.Table()

	updated := existing.Clone()
	for k, v := range in.Fields {
		if !editable[k] {
			return nil, fmt.Errorf("%w: %s", domain.ErrFieldNotEditable, k)
		}
		if table.IsFlagColumn(k) {
			v = allocation.NormalizeFlagValue(v)
		}
		updated.Fields[k] = v
	}
	for k, v := range in.CustomFields {
		if !editable[k] {
			return nil, fmt.Errorf("%w: %s", domain.ErrFieldNotEditable, k)
		}
		updated.CustomFields[k] = v
	}
	updated.Fields = table.Derive(updated.Fields)
	updated.UpdatedAt = time.Now()
	updated.UpdatedBy = actor.Username

	changes := diffRecords(existing, updated)
	if len(changes) == 0 {
		return uc.projectOne(existing, actor.Viewer), nil
	}

	err = uc.tx.Run(ctx, func(records repository.BrandRecordRepository, audit repository.AuditRepository) error {
		if err := records.Update(updated); err != nil {
			return err
		}
		return audit.Create(auditEntry(actor, updated.ID, entity.AuditActionUpdate, changes))
	})
	if err != nil {
		return nil, err
	}
	return uc.projectOne(updated, actor.Viewer), nil
}

// projectOne proyecta un registro para el viewer antes de devolverlo en una
// respuesta de escritura (un factory nunca ve all_brand ni contactos ajenos).
func (uc *BrandRecordUseCase) projectOne(r *entity.BrandRecord, viewer projection.Viewer) *dto.RecordResponse {
	projected := uc.engine.ProjectRecords([]*entity.BrandRecord{r}, withInactive(viewer))
	if len(projected) == 0 {
		return nil
	}
	return toRecordResponse(projected[0])
}

// Delete elimina un registro (solo admin) y lo deja en la bitácora.
func (uc *BrandRecordUseCase) Delete(ctx context.Context, actor Actor, id string) error {
	if actor.Viewer.Role != projection.RoleAdmin {
		return domain.ErrForbidden
	}
	existing, err := uc.records.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return uc.tx.Run(ctx, func(records repository.BrandRecordRepository, audit repository.AuditRepository) error {
		if err := records.Delete(id); err != nil {
			return err
		}
		return audit.Create(auditEntry(actor, id, entity.AuditActionDelete, nil))
	})
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func withInactive(v projection.Viewer) projection.Viewer {
	v.ShowInactive = true
	return v
}

// recordMatches búsqueda insensible a casing y acentos sobre todos los valores.
func recordMatches(r *entity.BrandRecord, search string) bool {
	for _, v := range r.Fields {
		if s, ok := v.(string); ok && textutil.ContainsFold(s, search) {
			return true
		}
	}
	for _, v := range r.CustomFields {
		if s, ok := v.(string); ok && textutil.ContainsFold(s, search) {
			return true
		}
	}
	return false
}

// customColumnsFromKeys columnas personalizadas sintéticas para el chequeo de
// editabilidad (las claves custom existentes más las que llegan en la petición).
func customColumnsFromKeys(existing map[string]any, incoming map[string]any) []schema.Column {
	seen := make(map[string]bool)
	var cols []schema.Column
	add := func(k string) {
		if !seen[k] {
			seen[k] = true
			cols = append(cols, schema.Column{Key: k, Type: schema.ColumnText, Custom: true})
		}
	}
	for k := range existing {
		add(k)
	}
	for k := range incoming {
		add(k)
	}
	return cols
}

func copyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// diffRecords cambios campo a campo (forma string) entre dos versiones.
// before == nil representa la creación: todo valor no vacío es un cambio.
func diffRecords(before, after *entity.BrandRecord) []entity.FieldChange {
	keys := make(map[string]bool)
	collect := func(r *entity.BrandRecord) {
		if r == nil {
			return
		}
		for k := range r.Fields {
			keys[k] = true
		}
		for k := range r.CustomFields {
			keys[k] = true
		}
	}
	collect(before)
	collect(after)

	ordered := make([]string, 0, len(keys))
	for k := range keys {
		ordered = append(ordered, k)
	}
	sort.Strings(ordered)

	var changes []entity.FieldChange
	for _, k := range ordered {
		from := fieldString(before, k)
		to := fieldString(after, k)
		if from != to {
			changes = append(changes, entity.FieldChange{Key: k, From: from, To: to})
		}
	}
	return changes
}

func fieldString(r *entity.BrandRecord, key string) string {
	if r == nil {
		return ""
	}
	raw, ok := r.Fields[key]
	if !ok {
		raw = r.CustomFields[key]
	}
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func auditEntry(actor Actor, recordID, action string, changes []entity.FieldChange) *entity.AuditEntry {
	return &entity.AuditEntry{
		ID:        uuid.New().String(),
		RecordID:  recordID,
		UserID:    actor.UserID,
		Username:  actor.Username,
		Action:    action,
		Changes:   changes,
		CreatedAt: time.Now(),
	}
}

func toRecordResponse(r *entity.BrandRecord) *dto.RecordResponse {
	if r == nil {
		return nil
	}
	return &dto.RecordResponse{
		ID:           r.ID,
		Fields:       r.Fields,
		CustomFields: r.CustomFields,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
		UpdatedBy:    r.UpdatedBy,
	}
}
