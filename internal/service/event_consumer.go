package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alimikegami/pos-microservices/marketplace-service/internal/domain"
	"github.com/alimikegami/pos-microservices/marketplace-service/internal/dto"
	"github.com/alimikegami/pos-microservices/marketplace-service/internal/repository"
	"github.com/rs/zerolog/log"
)

type EventConsumerImpl struct {
	reader     MessageReader
	userRepo   repository.UserRepository
	searchRepo repository.ProductSearchRepository
}

// CreateEventConsumer builds the broker consumer. searchRepo may be nil, in
// which case catalog events are acknowledged without indexing.
func CreateEventConsumer(reader MessageReader, userRepo repository.UserRepository, searchRepo repository.ProductSearchRepository) EventConsumer {
	return &EventConsumerImpl{reader: reader, userRepo: userRepo, searchRepo: searchRepo}
}

// ConsumeEvent reads until ctx is cancelled. Undecodable or failing messages
// are logged and skipped.
func (c *EventConsumerImpl) ConsumeEvent(ctx context.Context) {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Error().Err(err).Str("component", "ConsumeEvent").Msg("")
			continue
		}

		if err := c.HandleMessage(ctx, msg.Value); err != nil {
			log.Error().Err(err).Str("component", "ConsumeEvent").Int64("offset", msg.Offset).Msg("")
		}
	}
}

type rawKafkaMessage struct {
	EventType string          `json:"event_type"`
	Data      json.RawMessage `json:"data"`
}

func (c *EventConsumerImpl) HandleMessage(ctx context.Context, value []byte) (err error) {
	var received rawKafkaMessage
	if err = json.Unmarshal(value, &received); err != nil {
		return fmt.Errorf("decode message: %w", err)
	}

	switch received.EventType {
	case dto.EventUserUpdate:
		var user dto.UserEvent
		if err = json.Unmarshal(received.Data, &user); err != nil {
			return fmt.Errorf("decode %s: %w", received.EventType, err)
		}
		if user.ExternalID == "" {
			return errors.New("user_update without external_id")
		}

		return c.userRepo.UpsertUser(ctx, domain.User{ID: user.ExternalID, UserName: user.Name})
	case dto.EventProductCreated:
		if c.searchRepo == nil {
			return nil
		}

		var product dto.ProductResponse
		if err = json.Unmarshal(received.Data, &product); err != nil {
			return fmt.Errorf("decode %s: %w", received.EventType, err)
		}

		return c.searchRepo.IndexProduct(ctx, product)
	case dto.EventProductDeleted:
		if c.searchRepo == nil {
			return nil
		}

		var deleted dto.ProductDeletedEvent
		if err = json.Unmarshal(received.Data, &deleted); err != nil {
			return fmt.Errorf("decode %s: %w", received.EventType, err)
		}

		return c.searchRepo.DeleteProduct(ctx, deleted.ID)
	default:
		log.Debug().Str("component", "ConsumeEvent").Str("event_type", received.EventType).Msg("ignored event")
	}

	return nil
}
