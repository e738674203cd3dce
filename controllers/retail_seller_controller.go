package controllers

import "guid-gatherer/models"

type RetailSellerController = ResourceController[models.RetailSeller, models.RetailSellerPayload]

func NewRetailSellerController(store ResourceStore[models.RetailSeller]) *RetailSellerController {
	return NewResourceController(store, Resource[models.RetailSeller, models.RetailSellerPayload]{
		Label:   "Retail Seller",
		Sheet:   "RetailSellers",
		Columns: models.RetailSellerColumns,
		Apply: func(r *models.RetailSeller, p *models.RetailSellerPayload) {
			p.ApplyTo(r)
		},
		ListItem: func(r *models.RetailSeller, sNo int) interface{} {
			return r.ListItem(sNo)
		},
	})
}
