package controllers

import "guid-gatherer/models"

type SupplierController = ResourceController[models.Supplier, models.SupplierPayload]

func NewSupplierController(store ResourceStore[models.Supplier]) *SupplierController {
	return NewResourceController(store, Resource[models.Supplier, models.SupplierPayload]{
		Label:   "Supplier",
		Sheet:   "Suppliers",
		Columns: models.SupplierColumns,
		Apply: func(s *models.Supplier, p *models.SupplierPayload) {
			p.ApplyTo(s)
		},
	})
}
