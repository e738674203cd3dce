package models

type Supplier struct {
	Base
	Name          string  `json:"name" gorm:"size:255;not null" validate:"notblank"`
	ContactNo     string  `json:"contactNo" gorm:"size:20;not null" validate:"notblank,contactno"`
	Address       string  `json:"address" gorm:"not null" validate:"notblank"`
	Category      string  `json:"category" gorm:"size:255;not null" validate:"notblank"`
	SuppliedItems string  `json:"suppliedItems" gorm:"not null" validate:"notblank"`
	Email         *string `json:"email" gorm:"size:255" validate:"omitempty,email"`
	Remarks       *string `json:"remarks"`
	Timestamps
}

type SupplierPayload struct {
	Name          *string `json:"name"`
	ContactNo     *string `json:"contactNo"`
	Address       *string `json:"address"`
	Category      *string `json:"category"`
	SuppliedItems *string `json:"suppliedItems"`
	Email         *string `json:"email"`
	Remarks       *string `json:"remarks"`
}

var SupplierColumns = []string{"name", "contactNo", "address", "category", "suppliedItems", "email", "remarks"}

func (p *SupplierPayload) ApplyTo(s *Supplier) {
	setString(&s.Name, p.Name)
	setString(&s.ContactNo, p.ContactNo)
	setString(&s.Address, p.Address)
	setString(&s.Category, p.Category)
	setString(&s.SuppliedItems, p.SuppliedItems)
	setOptional(&s.Email, p.Email)
	setOptional(&s.Remarks, p.Remarks)
}
