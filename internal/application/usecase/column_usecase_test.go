package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandops/allocation-api/internal/application/dto"
	"github.com/brandops/allocation-api/internal/application/usecase"
	"github.com/brandops/allocation-api/internal/domain"
	"github.com/brandops/allocation-api/internal/domain/entity"
	"github.com/brandops/allocation-api/internal/domain/projection"
	"github.com/brandops/allocation-api/internal/domain/schema"
)

func newColumnFixture() (*usecase.ColumnUseCase, *usecase.BrandRecordUseCase, *memRecordRepo, *memAuditRepo) {
	records := newMemRecordRepo()
	audit := &memAuditRepo{}
	tx := &memTxRunner{records: records, audit: audit}
	engine := projection.NewDefaultEngine()
	colUC := usecase.NewColumnUseCase(tx, records, engine, schema.Groups())
	recUC := usecase.NewBrandRecordUseCase(tx, records, engine)
	return colUC, recUC, records, audit
}

func TestColumns_FactoryNoVeMarcaGlobal(t *testing.T) {
	colUC, _, _, _ := newColumnFixture()

	out, err := colUC.Columns(projection.Viewer{Role: projection.RoleFactory, FactoryAccount: "factory_wuxi"})
	require.NoError(t, err)

	keys := make(map[string]bool)
	for _, c := range out.Columns {
		keys[c.Key] = true
	}
	assert.False(t, keys["all_brand"], "all_brand nunca es visible para factory")
	assert.True(t, keys["brand_visible_to_factory"], "el factory ve la marca por la columna espejo")
	assert.False(t, keys["hz_u_senior_md"], "contactos de otras fábricas ocultos")
	assert.True(t, keys["wuxi_senior_md"])
	assert.False(t, out.CanCreateCustom)
}

func TestColumns_EditabilidadPorColumna(t *testing.T) {
	colUC, _, _, _ := newColumnFixture()

	out, err := colUC.Columns(projection.Viewer{Role: projection.RoleCompany, AccountType: "normal"})
	require.NoError(t, err)

	editable := make(map[string]bool)
	for _, c := range out.Columns {
		editable[c.Key] = c.Editable
	}
	assert.True(t, editable["status"], "company normal edita columnas base")
	assert.False(t, editable["fa_wuxi"], "los FA derivados son de solo lectura para company normal")
	assert.False(t, editable["wuxi_senior_md"], "los contactos de fábrica son de solo lectura para company normal")
}

func TestAddCustomColumn_SiembraLaClaveEnTodos(t *testing.T) {
	colUC, recUC, records, audit := newColumnFixture()
	seedRecord(t, recUC, nil)
	seedRecord(t, recUC, nil)

	err := colUC.AddCustomColumn(context.Background(), adminActor(), dto.CreateCustomColumnRequest{Key: "price_tier"})
	require.NoError(t, err)

	all, _ := records.List()
	for _, r := range all {
		v, ok := r.CustomFields["price_tier"]
		assert.True(t, ok, "todos los registros deben recibir la clave")
		assert.Equal(t, "", v)
	}
	last := audit.entries[len(audit.entries)-1]
	assert.Equal(t, entity.AuditActionAddColumn, last.Action)
}

func TestAddCustomColumn_Permisos(t *testing.T) {
	colUC, _, _, _ := newColumnFixture()
	ctx := context.Background()

	err := colUC.AddCustomColumn(ctx, factoryActor("factory_wuxi"), dto.CreateCustomColumnRequest{Key: "price_tier"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	err = colUC.AddCustomColumn(ctx, companyNormalActor(), dto.CreateCustomColumnRequest{Key: "price_tier"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// company con cuenta admin sí puede
	err = colUC.AddCustomColumn(ctx, companyAdminActor(), dto.CreateCustomColumnRequest{Key: "price_tier"})
	assert.NoError(t, err)
}

func TestAddCustomColumn_Validaciones(t *testing.T) {
	colUC, recUC, _, _ := newColumnFixture()
	ctx := context.Background()

	// clave con mayúsculas / espacios: rechazada
	err := colUC.AddCustomColumn(ctx, adminActor(), dto.CreateCustomColumnRequest{Key: "Price Tier"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// colisión con columna del catálogo
	err = colUC.AddCustomColumn(ctx, adminActor(), dto.CreateCustomColumnRequest{Key: "all_brand"})
	assert.ErrorIs(t, err, domain.ErrColumnExists)

	// colisión con una custom ya existente en los datos
	out, err := recUC.Create(ctx, companyAdminActor(), dto.CreateRecordRequest{
		Fields:       map[string]any{"all_brand": "Nordic Trail"},
		CustomFields: map[string]any{"price_tier": "premium"},
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	err = colUC.AddCustomColumn(ctx, adminActor(), dto.CreateCustomColumnRequest{Key: "price_tier"})
	assert.ErrorIs(t, err, domain.ErrColumnExists)
}

func TestColumns_InfiereTipoDeCustoms(t *testing.T) {
	colUC, recUC, _, _ := newColumnFixture()
	ctx := context.Background()

	for _, v := range []string{"yes", "no", "yes"} {
		_, err := recUC.Create(ctx, companyAdminActor(), dto.CreateRecordRequest{
			Fields:       map[string]any{"all_brand": "Brand " + v},
			CustomFields: map[string]any{"oeko_tex": v},
		})
		require.NoError(t, err)
	}

	out, err := colUC.Columns(projection.Viewer{Role: projection.RoleAdmin})
	require.NoError(t, err)

	var found *dto.ColumnResponse
	for i := range out.Columns {
		if out.Columns[i].Key == "oeko_tex" {
			found = &out.Columns[i]
		}
	}
	require.NotNil(t, found, "la columna custom debe aparecer en el catálogo del admin")
	assert.Equal(t, string(schema.ColumnBoolean), found.Type, "valores yes/no deben inferirse como boolean")
	assert.True(t, found.Custom)
}

func TestAuditUseCase_SoloAdmin(t *testing.T) {
	audit := &memAuditRepo{entries: []*entity.AuditEntry{
		{ID: "a1", Action: entity.AuditActionCreate, Username: "root"},
	}}
	uc := usecase.NewAuditUseCase(audit)

	_, err := uc.List(projection.Viewer{Role: projection.RoleCompany}, dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	out, err := uc.List(projection.Viewer{Role: projection.RoleAdmin}, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "root", out.Items[0].Username)
}
