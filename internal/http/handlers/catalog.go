package handlers

import (
	"pehlione.com/catalogadmin/internal/modules/catalog"
)

// CatalogHandler serves the CRUD screens: brands, categories and their
// bindings, properties, values, products and customer data.
type CatalogHandler struct {
	Svc *catalog.Service
}

func NewCatalogHandler(svc *catalog.Service) *CatalogHandler {
	return &CatalogHandler{Svc: svc}
}
