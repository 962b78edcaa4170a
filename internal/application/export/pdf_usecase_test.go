package export_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandops/allocation-api/internal/application/dto"
	"github.com/brandops/allocation-api/internal/application/export"
	"github.com/brandops/allocation-api/internal/domain/entity"
	"github.com/brandops/allocation-api/internal/domain/projection"
)

// listRepo fake mínimo: solo List se usa en la exportación.
type listRepo struct {
	records []*entity.BrandRecord
}

func (r *listRepo) Create(*entity.BrandRecord) error            { return nil }
func (r *listRepo) GetByID(string) (*entity.BrandRecord, error) { return nil, nil }
func (r *listRepo) Update(*entity.BrandRecord) error            { return nil }
func (r *listRepo) Delete(string) error                         { return nil }
func (r *listRepo) AddCustomKey(string) error                   { return nil }
func (r *listRepo) List() ([]*entity.BrandRecord, error)        { return r.records, nil }

// captureGenerator captura las filas que llegan al generador.
type captureGenerator struct {
	title string
	rows  []export.BrandRow
}

func (g *captureGenerator) GenerateAllocationPDF(_ context.Context, title string, rows []export.BrandRow) ([]byte, error) {
	g.title = title
	g.rows = rows
	return []byte("%PDF-fake"), nil
}

func record(id string, fields map[string]any) *entity.BrandRecord {
	return &entity.BrandRecord{ID: id, Fields: fields, CustomFields: map[string]any{}}
}

func TestGenerateTable_FactorySoloExportaLoSuyo(t *testing.T) {
	repo := &listRepo{records: []*entity.BrandRecord{
		record("a", map[string]any{
			"all_brand": "Nordic Trail", "status": "active",
			"wuxi_moretti": "Yes", "fa_wuxi": "Wuxi",
		}),
		record("b", map[string]any{
			"all_brand": "Alpine Gear", "status": "active",
			"hz_u_jump": "Yes", "fa_hz_u": "HZ-U",
		}),
	}}
	gen := &captureGenerator{}
	uc := export.NewPDFUseCase(repo, projection.NewDefaultEngine(), gen)

	out, err := uc.GenerateTable(context.Background(),
		projection.Viewer{Role: projection.RoleFactory, FactoryAccount: "factory_wuxi"},
		dto.ListRecordsQuery{})
	require.NoError(t, err)
	assert.NotEmpty(t, out)

	require.Len(t, gen.rows, 1, "el factory solo exporta registros asignados")
	assert.Equal(t, "Nordic Trail", gen.rows[0].Brand,
		"la marca llega por la columna espejo aunque all_brand esté redactado")
	assert.Equal(t, "Wuxi", gen.rows[0].Factories)
}

func TestGenerateTable_AdminExportaTodoConFabricas(t *testing.T) {
	repo := &listRepo{records: []*entity.BrandRecord{
		record("a", map[string]any{
			"all_brand": "Nordic Trail", "status": "active", "classification": "A",
			"fa_wuxi": "Wuxi", "fa_singfore": "Singfore",
		}),
		record("b", map[string]any{
			"all_brand": "Alpine Gear", "status": "inactive",
		}),
	}}
	gen := &captureGenerator{}
	uc := export.NewPDFUseCase(repo, projection.NewDefaultEngine(), gen)

	_, err := uc.GenerateTable(context.Background(),
		projection.Viewer{Role: projection.RoleAdmin}, dto.ListRecordsQuery{})
	require.NoError(t, err)

	require.Len(t, gen.rows, 2, "admin exporta también inactivos")
	assert.Equal(t, "Brand Allocation", gen.title)
	assert.Equal(t, "Wuxi, Singfore", gen.rows[0].Factories)
	assert.Equal(t, "A", gen.rows[0].Classification)
	assert.Equal(t, "inactive", gen.rows[1].Status)
}
