package event

import (
	"encoding/json"
	"log"

	"roomie/pkg/dto"
	"roomie/pkg/mq"
)

type Emitter struct {
	mqClient *mq.RabbitMQ
}

func NewEmitter(mqClient *mq.RabbitMQ) (*Emitter, error) {
	if err := mqClient.DeclareExchange(mq.ExchangeMatchEvents, mq.ExchangeTypeTopic); err != nil {
		log.Printf("❌ Failed to declare match events exchange: %v", err)
		return nil, err
	}
	return &Emitter{mqClient: mqClient}, nil
}

// PublishMatchCreated hands a fresh match to the notification collaborator
func (e *Emitter) PublishMatchCreated(payload dto.MatchEventDTO) error {
	eventBytes, err := json.Marshal(payload)
	if err != nil {
		log.Printf("❌ Failed to marshal match created event: %v", err)
		return err
	}

	err = e.mqClient.PublishMessage(
		mq.ExchangeMatchEvents,
		mq.RoutingKeyMatchCreated,
		eventBytes,
	)
	if err != nil {
		log.Printf("❌ Failed to publish match created event: %v", err)
		return err
	}

	log.Printf("Match created event published, match %d", payload.MatchID)
	return nil
}
