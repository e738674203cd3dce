package models

type Contractor struct {
	Base
	Name         string  `json:"name" gorm:"size:255;not null" validate:"notblank"`
	ContactNo    string  `json:"contactNo" gorm:"size:20;not null" validate:"notblank,contactno"`
	Address      string  `json:"address" gorm:"not null" validate:"notblank"`
	WorkCategory string  `json:"workCategory" gorm:"size:255;not null" validate:"notblank"`
	Email        *string `json:"email" gorm:"size:255" validate:"omitempty,email"`
	Remarks      *string `json:"remarks"`
	Timestamps
}

// ContractorPayload is the create/update body. Nil fields were not supplied.
type ContractorPayload struct {
	Name         *string `json:"name"`
	ContactNo    *string `json:"contactNo"`
	Address      *string `json:"address"`
	WorkCategory *string `json:"workCategory"`
	Email        *string `json:"email"`
	Remarks      *string `json:"remarks"`
}

var ContractorColumns = []string{"name", "contactNo", "address", "workCategory", "email", "remarks"}

func (p *ContractorPayload) ApplyTo(c *Contractor) {
	setString(&c.Name, p.Name)
	setString(&c.ContactNo, p.ContactNo)
	setString(&c.Address, p.Address)
	setString(&c.WorkCategory, p.WorkCategory)
	setOptional(&c.Email, p.Email)
	setOptional(&c.Remarks, p.Remarks)
}
