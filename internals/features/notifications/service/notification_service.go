package service

import (
	"log"

	"github.com/google/uuid"
)

// Event kinds the engine emits. Channel delivery (email, push) is not
// the engine's concern; a Notifier only receives the fact.
const (
	EventNeedRequestApproved = "need_request.approved"
	EventNeedRequestRejected = "need_request.rejected"
	EventDeliveryDelivered   = "delivery.delivered"
)

type Event struct {
	Kind        string     `json:"kind"`
	EntityID    uuid.UUID  `json:"entity_id"`
	ActorID     uuid.UUID  `json:"actor_id"`
	RecipientID *uuid.UUID `json:"recipient_id,omitempty"` // mosque admin, when known
}

type Notifier interface {
	Notify(ev Event)
}

// LogNotifier is the default channel: it only records the event.
type LogNotifier struct{}

func (LogNotifier) Notify(ev Event) {
	log.Printf("[NOTIFY] kind=%s entity=%s actor=%s", ev.Kind, ev.EntityID, ev.ActorID)
}

// NotificationService dispatches fire-and-forget events to the
// configured channel. Failures of the channel never reach callers.
type NotificationService struct {
	notifier Notifier
}

func NewNotificationService(n Notifier) *NotificationService {
	if n == nil {
		n = LogNotifier{}
	}
	return &NotificationService{notifier: n}
}

func (s *NotificationService) dispatch(ev Event) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[NOTIFY] channel panic: %v", r)
			}
		}()
		s.notifier.Notify(ev)
	}()
}

func (s *NotificationService) NeedRequestApproved(requestID, actorID uuid.UUID, recipient *uuid.UUID) {
	s.dispatch(Event{Kind: EventNeedRequestApproved, EntityID: requestID, ActorID: actorID, RecipientID: recipient})
}

func (s *NotificationService) NeedRequestRejected(requestID, actorID uuid.UUID, recipient *uuid.UUID) {
	s.dispatch(Event{Kind: EventNeedRequestRejected, EntityID: requestID, ActorID: actorID, RecipientID: recipient})
}

func (s *NotificationService) DeliveryDelivered(deliveryID, actorID uuid.UUID, recipient *uuid.UUID) {
	s.dispatch(Event{Kind: EventDeliveryDelivered, EntityID: deliveryID, ActorID: actorID, RecipientID: recipient})
}
