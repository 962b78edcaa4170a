package repository

import "github.com/brandops/allocation-api/internal/domain/entity"

// BrandRecordRepository define el puerto de persistencia para BrandRecord (DIP).
type BrandRecordRepository interface {
	Create(record *entity.BrandRecord) error
	GetByID(id string) (*entity.BrandRecord, error)
	Update(record *entity.BrandRecord) error
	Delete(id string) error
	// List devuelve el conjunto completo; el filtrado por rol es del motor de
	// proyección, no de la consulta.
	List() ([]*entity.BrandRecord, error)
	// AddCustomKey siembra la clave con valor vacío en custom_fields de todos
	// los registros que aún no la tienen.
	AddCustomKey(key string) error
}
