package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/brandops/allocation-api/internal/domain"
	"github.com/brandops/allocation-api/internal/domain/entity"
	"github.com/brandops/allocation-api/internal/domain/repository"
)

var _ repository.BrandRecordRepository = (*BrandRecordRepo)(nil)

// BrandRecordRepo implementación sobre PostgreSQL (usable con pool o tx).
// Los campos flexibles del registro van en columnas JSONB: fields guarda el
// esquema base (marca, flags, FA, contactos) y custom_fields las columnas
// agregadas por administradores.
type BrandRecordRepo struct {
	q Querier
}

// NewBrandRecordRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBrandRecordRepository(q Querier) *BrandRecordRepo {
	return &BrandRecordRepo{q: q}
}

// Create persiste un registro de marca.
func (r *BrandRecordRepo) Create(record *entity.BrandRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}
	record.UpdatedAt = now
	query := `
		INSERT INTO brand_records (id, fields, custom_fields, created_at, updated_at, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		record.ID, record.Fields, record.CustomFields,
		record.CreatedAt, record.UpdatedAt, nullable(record.UpdatedBy),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert brand record: %w", err)
	}
	return nil
}

// GetByID obtiene un registro por ID. Devuelve ErrNotFound si no existe.
func (r *BrandRecordRepo) GetByID(id string) (*entity.BrandRecord, error) {
	query := `
		SELECT id, fields, custom_fields, created_at, updated_at, COALESCE(updated_by, '')
		FROM brand_records WHERE id = $1`
	rec, err := scanRecord(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get brand record: %w", err)
	}
	return rec, nil
}

// Update reemplaza los campos del registro.
func (r *BrandRecordRepo) Update(record *entity.BrandRecord) error {
	record.UpdatedAt = time.Now().UTC()
	query := `
		UPDATE brand_records SET fields = $2, custom_fields = $3, updated_at = $4, updated_by = $5
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		record.ID, record.Fields, record.CustomFields, record.UpdatedAt, nullable(record.UpdatedBy),
	)
	if err != nil {
		return fmt.Errorf("update brand record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un registro por ID.
func (r *BrandRecordRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM brand_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete brand record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve todos los registros ordenados por creación. El filtrado por
// rol lo hace el motor de proyección en memoria, no la consulta.
func (r *BrandRecordRepo) List() ([]*entity.BrandRecord, error) {
	query := `
		SELECT id, fields, custom_fields, created_at, updated_at, COALESCE(updated_by, '')
		FROM brand_records ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list brand records: %w", err)
	}
	defer rows.Close()
	var list []*entity.BrandRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan brand record: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

// AddCustomKey siembra la clave con valor vacío en custom_fields de todos los
// registros que aún no la tienen (un solo UPDATE, no round-trip por fila).
func (r *BrandRecordRepo) AddCustomKey(key string) error {
	query := `
		UPDATE brand_records
		SET custom_fields = jsonb_set(COALESCE(custom_fields, '{}'::jsonb), ARRAY[$1], '""'::jsonb),
		    updated_at = $2
		WHERE NOT (COALESCE(custom_fields, '{}'::jsonb) ? $1)`
	if _, err := r.q.Exec(context.Background(), query, key, time.Now().UTC()); err != nil {
		return fmt.Errorf("add custom key: %w", err)
	}
	return nil
}

func scanRecord(row pgx.Row) (*entity.BrandRecord, error) {
	var rec entity.BrandRecord
	if err := row.Scan(&rec.ID, &rec.Fields, &rec.CustomFields, &rec.CreatedAt, &rec.UpdatedAt, &rec.UpdatedBy); err != nil {
		return nil, err
	}
	if rec.Fields == nil {
		rec.Fields = map[string]any{}
	}
	if rec.CustomFields == nil {
		rec.CustomFields = map[string]any{}
	}
	return &rec, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
