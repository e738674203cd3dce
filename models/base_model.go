package models

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"guid-gatherer/idgen"
	"guid-gatherer/types"
)

// Record is implemented by every persisted directory and auth model.
type Record interface {
	GetID() types.SnowflakeID
	SetID(id types.SnowflakeID)
	Touch(now time.Time, creating bool)
}

// Base holds the system-assigned identifier. Embed it first so "id" leads
// the JSON representation.
type Base struct {
	ID types.SnowflakeID `json:"id" gorm:"primaryKey;autoIncrement:false"`
}

func (b *Base) GetID() types.SnowflakeID { return b.ID }

func (b *Base) SetID(id types.SnowflakeID) { b.ID = id }

func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == 0 {
		b.ID = types.SnowflakeID(idgen.GenerateID())
	}
	return nil
}

// Timestamps is embedded last; gorm maintains both columns on create and save.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (t *Timestamps) Touch(now time.Time, creating bool) {
	if creating {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// setOptional clears the field when the supplied value is blank.
func setOptional(dst **string, src *string) {
	if src == nil {
		return
	}
	if strings.TrimSpace(*src) == "" {
		*dst = nil
		return
	}
	v := *src
	*dst = &v
}
