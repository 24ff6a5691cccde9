package product

import (
	"catalogsync/internal/domain/product"
	"catalogsync/internal/domain/sync"
)

type listOutput struct {
	Body []product.Product
}

type findInput struct {
	ExternalID int64 `path:"externalId" example:"1001" doc:"External id assigned by the source feed"`
}

type findOutput struct {
	Body findResponse
}

type findResponse struct {
	Status  string           `json:"status"`
	Product *product.Product `json:"product,omitempty"`
	Error   string           `json:"error,omitempty"`
}

type createInput struct {
	Body request
}

type updateInput struct {
	ExternalID int64 `path:"externalId" example:"1001" doc:"External id assigned by the source feed"`
	Body       request
}

type deleteInput struct {
	ExternalID int64 `path:"externalId" example:"1001" doc:"External id assigned by the source feed"`
}

type request struct {
	ExternalID  int64    `json:"external_id,omitempty" doc:"Source feed id; assigned automatically when omitted"`
	Title       string   `json:"title" minLength:"1" doc:"Product title"`
	Handle      *string  `json:"handle,omitempty"`
	BodyHTML    *string  `json:"body_html,omitempty"`
	Vendor      *string  `json:"vendor,omitempty"`
	ProductType *string  `json:"product_type,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type output struct {
	Body response
}

type response struct {
	ExternalID int64  `json:"external_id,omitempty"`
	Status     string `json:"status"`
	Message    string `json:"message,omitempty"`
}

type searchInput struct {
	Query string `query:"query" example:"shirt" doc:"Substring matched against title, vendor, type and tags"`
}

type syncOutput struct {
	Body syncResponse
}

type syncResponse struct {
	Status string       `json:"status"`
	Report *sync.Report `json:"report,omitempty"`
}
