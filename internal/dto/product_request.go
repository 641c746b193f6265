package dto

import "mime/multipart"

type ProductRequest struct {
	UserID             string                  `form:"userId"`
	ProductName        string                  `form:"productName" validate:"required"`
	ProductCode        string                  `form:"productCode" validate:"required"`
	ProductDescription string                  `form:"productDescription" validate:"required"`
	ProductPrice       string                  `form:"productPrice" validate:"required,numeric"`
	StockQuantity      string                  `form:"stockQuantity" validate:"required,number"`
	Category           string                  `form:"category" validate:"required"`
	StartDate          string                  `form:"startDate"`
	EndDate            string                  `form:"endDate"`
	Image              *multipart.FileHeader   `form:"-" name:"image" validate:"required"`
	MultipleImages     []*multipart.FileHeader `form:"-" name:"multipleImages"`
}

type ServiceRequest struct {
	UserID         string                  `form:"userId"`
	ServiceName    string                  `form:"serviceName" validate:"required"`
	Description    string                  `form:"description" validate:"required"`
	ServicePrice   string                  `form:"servicePrice" validate:"required,numeric"`
	StartDate      string                  `form:"startDate"`
	EndDate        string                  `form:"endDate"`
	Image          *multipart.FileHeader   `form:"-" name:"image" validate:"required"`
	MultipleImages []*multipart.FileHeader `form:"-" name:"multipleImages"`
}

type ServiceStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type SoldsProductRef struct {
	ID string `json:"_id" validate:"required"`
}

type SoldsItem struct {
	Product  *SoldsProductRef `json:"productId" validate:"required"`
	Quantity int64            `json:"quantity" validate:"gt=0"`
}

type SoldsUpdateRequest struct {
	UpdateProducts []SoldsItem `json:"updateproducts" validate:"required,min=1,dive"`
}
