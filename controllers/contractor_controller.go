package controllers

import "guid-gatherer/models"

type ContractorController = ResourceController[models.Contractor, models.ContractorPayload]

func NewContractorController(store ResourceStore[models.Contractor]) *ContractorController {
	return NewResourceController(store, Resource[models.Contractor, models.ContractorPayload]{
		Label:   "Contractor",
		Sheet:   "Contractors",
		Columns: models.ContractorColumns,
		Apply: func(c *models.Contractor, p *models.ContractorPayload) {
			p.ApplyTo(c)
		},
	})
}
