package dto

const (
	EventProductCreated = "product_created"
	EventProductDeleted = "product_deleted"
	EventServiceCreated = "service_created"
	EventServiceDeleted = "service_deleted"
	EventServiceStatus  = "service_status_updated"
	EventSoldsUpdated   = "solds_updated"
	EventOrderCreated   = "order_created"
	EventUserUpdate     = "user_update"
)

type KafkaMessage struct {
	EventType string      `json:"event_type"`
	Data      interface{} `json:"data"`
}

// UserEvent is the payload of user_update events published by the user service.
type UserEvent struct {
	ExternalID string `json:"external_id"`
	Name       string `json:"name"`
}

type ProductDeletedEvent struct {
	ID string `json:"id"`
}

type ServiceEvent struct {
	ID     string `json:"id"`
	Status string `json:"status,omitempty"`
}
