package mq

// Exchange Names
const (
	ExchangeMatchEvents = "match_events"
	ExchangeLog         = "app_logs"
)

// Exchange Types
const (
	ExchangeTypeTopic  = "topic"
	ExchangeTypeFanout = "fanout"
)

// Routing Keys
const (
	RoutingKeyMatchCreated = "match.created"
)
