// Package export genera la representación PDF del tablero de asignación de
// marcas, ya proyectado para el viewer (un factory exporta solo lo suyo).
package export

import (
	"context"
	"strings"

	"github.com/brandops/allocation-api/internal/application/dto"
	"github.com/brandops/allocation-api/internal/domain/entity"
	"github.com/brandops/allocation-api/internal/domain/projection"
	"github.com/brandops/allocation-api/internal/domain/repository"
	"github.com/brandops/allocation-api/internal/domain/schema"
)

// BrandRow una fila del PDF: resumen de marca + fábricas asignadas.
type BrandRow struct {
	Brand          string
	Classification string
	Status         string
	ShipmentTerms  string
	Factories      string // nombres de fábrica asignados, separados por coma
}

// TableGenerator puerto del generador de PDF (implementado con Maroto en
// infrastructure/pdf).
type TableGenerator interface {
	GenerateAllocationPDF(ctx context.Context, title string, rows []BrandRow) ([]byte, error)
}

// PDFUseCase exporta el listado proyectado del viewer a PDF.
type PDFUseCase struct {
	records   repository.BrandRecordRepository
	engine    *projection.Engine
	generator TableGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(records repository.BrandRecordRepository, engine *projection.Engine, generator TableGenerator) *PDFUseCase {
	return &PDFUseCase{records: records, engine: engine, generator: generator}
}

// GenerateTable proyecta los registros para el viewer y los vuelca al PDF.
func (uc *PDFUseCase) GenerateTable(ctx context.Context, viewer projection.Viewer, q dto.ListRecordsQuery) ([]byte, error) {
	viewer.ShowInactive = q.ShowInactive
	all, err := uc.records.List()
	if err != nil {
		return nil, err
	}
	projected := uc.engine.ProjectRecords(all, viewer)
	if q.SortBy != "" {
		projected = uc.engine.SortRecords(projected, q.SortBy, q.Order != "desc")
	}

	rows := make([]BrandRow, 0, len(projected))
	for _, r := range projected {
		rows = append(rows, BrandRow{
			Brand:          brandOf(r),
			Classification: fieldStr(r, schema.KeyClassification),
			Status:         fieldStr(r, schema.KeyStatus),
			ShipmentTerms:  fieldStr(r, schema.KeyShipmentTerms),
			Factories:      uc.assignedFactories(r),
		})
	}
	return uc.generator.GenerateAllocationPDF(ctx, "Brand Allocation", rows)
}

// brandOf para factory el nombre de marca viene en brand_visible_to_factory;
// para company/admin en all_brand.
func brandOf(r *entity.BrandRecord) string {
	if b := fieldStr(r, schema.KeyAllBrand); b != "" {
		return b
	}
	return fieldStr(r, schema.KeyBrandVisibleToFactory)
}

// assignedFactories nombres de fábrica presentes en los FA del registro
// proyectado (para factory, solo los suyos sobreviven a la proyección).
func (uc *PDFUseCase) assignedFactories(r *entity.BrandRecord) string {
	var names []string
	for _, p := range uc.engine.Table().Pairings() {
		if v, ok := r.Fields[p.FAKey].(string); ok && v != "" {
			names = append(names, v)
		}
	}
	return strings.Join(names, ", ")
}

func fieldStr(r *entity.BrandRecord, key string) string {
	s, _ := r.Fields[key].(string)
	return s
}
