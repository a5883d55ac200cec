package service

import (
	"sync"

	"github.com/getAlby/nftmarket.go/common"
	"github.com/getAlby/nftmarket.go/db/models"
	"github.com/google/uuid"
)

// Pubsub fans market events out to in-process subscribers. Topics are event
// types; subscribers of common.EventTopicAll receive every event.
type Pubsub struct {
	mu   sync.RWMutex
	subs map[string]map[string]chan models.MarketEvent
}

func NewPubsub() *Pubsub {
	ps := &Pubsub{}
	ps.subs = make(map[string]map[string]chan models.MarketEvent)
	return ps
}

func (ps *Pubsub) Subscribe(topic string, ch chan models.MarketEvent) (subId string, err error) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if ps.subs[topic] == nil {
		ps.subs[topic] = make(map[string]chan models.MarketEvent)
	}
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	subId = id.String()
	ps.subs[topic][subId] = ch
	return subId, nil
}

func (ps *Pubsub) Unsubscribe(id string, topic string) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if ps.subs[topic] == nil {
		return
	}
	if ps.subs[topic][id] == nil {
		return
	}
	close(ps.subs[topic][id])
	delete(ps.subs[topic], id)
}

// Publish never blocks: a subscriber whose buffer is full misses the event.
// It returns the number of subscribers that missed it.
func (ps *Pubsub) Publish(topic string, msg models.MarketEvent) (missed int) {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	deliver := func(subs map[string]chan models.MarketEvent) {
		for _, ch := range subs {
			select {
			case ch <- msg:
			default:
				missed++
			}
		}
	}
	deliver(ps.subs[topic])
	if topic != common.EventTopicAll {
		deliver(ps.subs[common.EventTopicAll])
	}
	return missed
}

func (ps *Pubsub) SubscriberCount(topic string) int {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	return len(ps.subs[topic])
}
