package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"guid-gatherer/models"
	"guid-gatherer/types"
	"guid-gatherer/utils"
)

// ResourceRepository persists one directory entity kind through gorm.
type ResourceRepository[M any] struct {
	DB *gorm.DB
}

func NewResourceRepository[M any](db *gorm.DB) *ResourceRepository[M] {
	return &ResourceRepository[M]{DB: db}
}

func (r *ResourceRepository[M]) Create(ctx context.Context, record *M) error {
	return utils.WrapStoreError("create", translate(r.DB.WithContext(ctx).Create(record).Error))
}

// FindAll returns every record in insertion order. Snowflake ids grow with
// time, so ordering by id is ordering by creation.
func (r *ResourceRepository[M]) FindAll(ctx context.Context) ([]M, error) {
	records := []M{}
	if err := r.DB.WithContext(ctx).Order("id asc").Find(&records).Error; err != nil {
		return nil, utils.WrapStoreError("find", err)
	}
	return records, nil
}

func (r *ResourceRepository[M]) FindByID(ctx context.Context, id types.SnowflakeID) (*M, error) {
	var record M
	if err := r.DB.WithContext(ctx).Where("id = ?", id).Take(&record).Error; err != nil {
		return nil, utils.WrapStoreError("find by id", translate(err))
	}
	return &record, nil
}

// Save writes every column of record except id and created_at. The row must
// still exist.
func (r *ResourceRepository[M]) Save(ctx context.Context, record *M) error {
	result := r.DB.WithContext(ctx).Model(record).Select("*").Omit("id", "created_at").Updates(record)
	if result.Error != nil {
		return utils.WrapStoreError("update", translate(result.Error))
	}
	if result.RowsAffected > 0 {
		return nil
	}

	// MySQL reports zero affected rows when no value changed.
	return r.exists(ctx, record)
}

func (r *ResourceRepository[M]) exists(ctx context.Context, record *M) error {
	rec, ok := any(record).(models.Record)
	if !ok {
		return utils.ErrRecordNotFound
	}
	var count int64
	if err := r.DB.WithContext(ctx).Model(new(M)).Where("id = ?", rec.GetID()).Count(&count).Error; err != nil {
		return utils.WrapStoreError("update", err)
	}
	if count == 0 {
		return utils.ErrRecordNotFound
	}
	return nil
}

func (r *ResourceRepository[M]) Delete(ctx context.Context, id types.SnowflakeID) error {
	result := r.DB.WithContext(ctx).Where("id = ?", id).Delete(new(M))
	if result.Error != nil {
		return utils.WrapStoreError("delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrRecordNotFound
	}
	return nil
}

// CreateBatch inserts all records in one transaction or none of them.
func (r *ResourceRepository[M]) CreateBatch(ctx context.Context, records []M) error {
	if len(records) == 0 {
		return nil
	}
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&records).Error
	})
	return utils.WrapStoreError("import", translate(err))
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return utils.ErrRecordNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &utils.DuplicateError{Message: "Record with these details already exists"}
	default:
		return err
	}
}
