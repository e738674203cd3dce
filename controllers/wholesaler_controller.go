package controllers

import "guid-gatherer/models"

type WholesalerController = ResourceController[models.Wholesaler, models.WholesalerPayload]

// Wholesaler lists carry a per-response sNo.
func NewWholesalerController(store ResourceStore[models.Wholesaler]) *WholesalerController {
	return NewResourceController(store, Resource[models.Wholesaler, models.WholesalerPayload]{
		Label:   "Wholesaler",
		Sheet:   "Wholesalers",
		Columns: models.WholesalerColumns,
		Apply: func(w *models.Wholesaler, p *models.WholesalerPayload) {
			p.ApplyTo(w)
		},
		ListItem: func(w *models.Wholesaler, sNo int) interface{} {
			return w.ListItem(sNo)
		},
	})
}
