package models

import "guid-gatherer/types"

type RetailSeller struct {
	Base
	Name        string  `json:"name" gorm:"size:255;not null" validate:"notblank"`
	PhoneNumber string  `json:"phoneNumber" gorm:"size:20;not null" validate:"notblank,contactno"`
	Address     string  `json:"address" gorm:"not null" validate:"notblank"`
	Product     string  `json:"product" gorm:"size:255;not null" validate:"notblank"`
	Email       *string `json:"email" gorm:"size:255" validate:"omitempty,email"`
	Remark      *string `json:"remark"`
	Timestamps
}

type RetailSellerPayload struct {
	Name        *string `json:"name"`
	PhoneNumber *string `json:"phoneNumber"`
	Address     *string `json:"address"`
	Product     *string `json:"product"`
	Email       *string `json:"email"`
	Remark      *string `json:"remark"`
}

var RetailSellerColumns = []string{"name", "phoneNumber", "address", "product", "email", "remark"}

func (p *RetailSellerPayload) ApplyTo(r *RetailSeller) {
	setString(&r.Name, p.Name)
	setString(&r.PhoneNumber, p.PhoneNumber)
	setString(&r.Address, p.Address)
	setString(&r.Product, p.Product)
	setOptional(&r.Email, p.Email)
	setOptional(&r.Remark, p.Remark)
}

type RetailSellerListItem struct {
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

func (r *RetailSeller) ListItem(sNo int) RetailSellerListItem {
	return RetailSellerListItem{
		ID:          r.ID,
		SNo:         sNo,
		Name:        r.Name,
		PhoneNumber: r.PhoneNumber,
		Address:     r.Address,
		Product:     r.Product,
		Email:       r.Email,
		Remark:      r.Remark,
		Timestamps:  r.Timestamps,
	}
}
