package models

import "guid-gatherer/types"

type Wholesaler struct {
	Base
	Name        string  `json:"name" gorm:"size:255;not null" validate:"notblank"`
	PhoneNumber string  `json:"phoneNumber" gorm:"size:20;not null" validate:"notblank,contactno"`
	Address     string  `json:"address" gorm:"not null" validate:"notblank"`
	Product     string  `json:"product" gorm:"size:255;not null" validate:"notblank"`
	Email       *string `json:"email" gorm:"size:255" validate:"omitempty,email"`
	Remark      *string `json:"remark"`
	Timestamps
}

type WholesalerPayload struct {
	Name        *string `json:"name"`
	PhoneNumber *string `json:"phoneNumber"`
	Address     *string `json:"address"`
	Product     *string `json:"product"`
	Email       *string `json:"email"`
	Remark      *string `json:"remark"`
}

var WholesalerColumns = []string{"name", "phoneNumber", "address", "product", "email", "remark"}

func (p *WholesalerPayload) ApplyTo(w *Wholesaler) {
	setString(&w.Name, p.Name)
	setString(&w.PhoneNumber, p.PhoneNumber)
	setString(&w.Address, p.Address)
	setString(&w.Product, p.Product)
	setOptional(&w.Email, p.Email)
	setOptional(&w.Remark, p.Remark)
}

// WholesalerListItem is the list representation; SNo is the 1-based position
// in the current response and is never stored.
type WholesalerListItem struct {
	ID          types.SnowflakeID `json:"id"`
	SNo         int               `json:"sNo"`
	Name        string            `json:"name"`
	PhoneNumber string            `json:"phoneNumber"`
	Address     string            `json:"address"`
	Product     string            `json:"product"`
	Email       *string           `json:"email"`
	Remark      *string           `json:"remark"`
	Timestamps
}

func (w *Wholesaler) ListItem(sNo int) WholesalerListItem {
	return WholesalerListItem{
		ID:          w.ID,
		SNo:         sNo,
		Name:        w.Name,
		PhoneNumber: w.PhoneNumber,
		Address:     w.Address,
		Product:     w.Product,
		Email:       w.Email,
		Remark:      w.Remark,
		Timestamps:  w.Timestamps,
	}
}
