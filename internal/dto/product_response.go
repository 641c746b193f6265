package dto

import (
	"time"

	"github.com/alimikegami/pos-microservices/marketplace-service/internal/domain"
)

type ProductResponse struct {
	ID                 string         `json:"_id"`
	UserID             string         `json:"userId"`
	UserName           string         `json:"userName,omitempty"`
	ProductName        string         `json:"productName"`
	ProductCode        string         `json:"productCode"`
	ProductDescription string         `json:"productDescription"`
	ProductPrice       float64        `json:"productPrice"`
	StockQuantity      int64          `json:"stockQuantity"`
	Category           string         `json:"category"`
	Image              domain.Image   `json:"image"`
	MultipleImages     []domain.Image `json:"multipleImages"`
	StartDate          *time.Time     `json:"startDate,omitempty"`
	EndDate            *time.Time     `json:"endDate,omitempty"`
	Solds              int64          `json:"solds"`
	CreatedAt          time.Time      `json:"createdAt"`
}

type ServiceResponse struct {
	ID             string         `json:"_id"`
	UserID         string         `json:"userId"`
	UserName       string         `json:"userName,omitempty"`
	ServiceName    string         `json:"serviceName"`
	Description    string         `json:"description"`
	ServicePrice   float64        `json:"servicePrice"`
	Image          domain.Image   `json:"image"`
	MultipleImages []domain.Image `json:"multipleImages"`
	StartDate      *time.Time     `json:"startDate,omitempty"`
	EndDate        *time.Time     `json:"endDate,omitempty"`
	Status         string         `json:"status"`
	CreatedAt      time.Time      `json:"createdAt"`
}
