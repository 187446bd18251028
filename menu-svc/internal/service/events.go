package service

import (
	"context"
	"time"

	"menu-admin/menu-svc/internal/domain"

	"github.com/rs/zerolog/log"
)

// publish is best-effort: the write already committed, so a broker outage
// is logged and not returned.
func publish(ctx context.Context, publisher EventPublisher, eventType domain.EventType, entity string, id int) {
	if publisher == nil {
		return
	}
	err := publisher.Publish(ctx, domain.MenuEvent{
		Type:      eventType,
		Entity:    entity,
		EntityID:  id,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		log.Warn().Err(err).
			Str("entity", entity).
			Int("id", id).
			Str("event", string(eventType)).
			Msg("failed to publish menu event")
	}
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

func intOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}
