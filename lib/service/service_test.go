package service

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/getAlby/nftmarket.go/common"
	"github.com/getAlby/nftmarket.go/db/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetFeePercentage(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	fee, err := svc.FeePercentage(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), fee)

	_, err = svc.SetFeePercentage(ctx, "mallory", 5)
	assert.ErrorIs(t, err, ErrNotAdministrator)
	_, err = svc.SetFeePercentage(ctx, testAdmin, 100)
	assert.ErrorIs(t, err, ErrInvalidFeePercentage)
	_, err = svc.SetFeePercentage(ctx, testAdmin, -1)
	assert.ErrorIs(t, err, ErrInvalidFeePercentage)

	fee, err = svc.FeePercentage(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), fee)

	feeConfig, err := svc.SetFeePercentage(ctx, testAdmin, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), feeConfig.Percentage)
	assert.False(t, feeConfig.UpdatedAt.IsZero())

	fee, err = svc.FeePercentage(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), fee)

	// seeding never overwrites a stored value
	stored, err := svc.EnsureFeeConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stored.Percentage)

	// fee changes are not market events
	assert.Empty(t, eventTypes(t, svc))
}

func TestStaticAdministrator(t *testing.T) {
	admin := NewStaticAdministrator("admin")
	assert.True(t, admin.IsAdministrator("admin"))
	assert.False(t, admin.IsAdministrator("Admin"))
	assert.False(t, admin.IsAdministrator(""))
	assert.False(t, NewStaticAdministrator("").IsAdministrator(""))
}

func TestPubsubDeliversTypeAndWildcardTopics(t *testing.T) {
	ps := NewPubsub()
	sold := make(chan models.MarketEvent, 1)
	all := make(chan models.MarketEvent, 2)
	soldId, err := ps.Subscribe(common.EventTypeSold, sold)
	require.NoError(t, err)
	_, err = ps.Subscribe(common.EventTopicAll, all)
	require.NoError(t, err)

	ps.Publish(common.EventTypeListed, models.MarketEvent{Type: common.EventTypeListed})
	ps.Publish(common.EventTypeSold, models.MarketEvent{Type: common.EventTypeSold})

	assert.Equal(t, common.EventTypeSold, (<-sold).Type)
	assert.Equal(t, common.EventTypeListed, (<-all).Type)
	assert.Equal(t, common.EventTypeSold, (<-all).Type)

	ps.Unsubscribe(soldId, common.EventTypeSold)
	_, open := <-sold
	assert.False(t, open)
	assert.Equal(t, 0, ps.SubscriberCount(common.EventTypeSold))
	// unknown ids are ignored
	ps.Unsubscribe(soldId, common.EventTypeSold)
}

func TestPublishSkipsFullSubscribers(t *testing.T) {
	ps := NewPubsub()
	full := make(chan models.MarketEvent, 1)
	_, err := ps.Subscribe(common.EventTopicAll, full)
	require.NoError(t, err)

	assert.Equal(t, 0, ps.Publish(common.EventTypeListed, models.MarketEvent{EventID: "a"}))
	assert.Equal(t, 1, ps.Publish(common.EventTypeListed, models.MarketEvent{EventID: "b"}))
	assert.Equal(t, "a", (<-full).EventID)
	assert.Empty(t, full)
}

func TestActionsDoNotWaitForSlowSubscribers(t *testing.T) {
	svc, l := newTestService(t)
	ctx := context.Background()
	// never drained
	_, unsubscribe, err := svc.SubscribeMarketEvents()
	require.NoError(t, err)

	const listings = 60
	for tokenID := uint64(0); tokenID < listings; tokenID++ {
		mintForSale(t, svc, l, tokenID, "seller")
	}
	done := make(chan error, 1)
	go func() {
		for tokenID := uint64(0); tokenID < listings; tokenID++ {
			if _, err := svc.List(ctx, testCollection, tokenID, "seller", 10); err != nil {
				done <- err
				return
			}
		}
		done <- nil
	}()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("listing is blocked by a full subscriber")
	}

	unsubscribed := make(chan struct{})
	go func() {
		unsubscribe()
		close(unsubscribed)
	}()
	select {
	case <-unsubscribed:
	case <-time.After(2 * time.Second):
		t.Fatal("unsubscribe is blocked")
	}

	// every event is still in the log
	events, err := svc.Events(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, events, 2*listings)
}

func TestEncodeMarketEventKeepsTokenZero(t *testing.T) {
	svc, l := newTestService(t)
	ctx := context.Background()
	mintForSale(t, svc, l, 0, "seller")
	_, err := svc.List(ctx, testCollection, 0, "seller", 100)
	require.NoError(t, err)

	events, err := svc.Events(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, events, 2)

	var buf bytes.Buffer
	require.NoError(t, svc.EncodeMarketEvent(ctx, &buf, events[0]))
	listed := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &listed))
	assert.Equal(t, common.EventTypeListed, listed["type"])
	assert.Equal(t, float64(0), listed["token_id"])
	assert.Equal(t, float64(100), listed["price"])
	assert.Equal(t, testCollection+"/0", events[0].Asset())

	buf.Reset()
	require.NoError(t, svc.EncodeMarketEvent(ctx, &buf, events[1]))
	stats := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &stats))
	assert.Equal(t, common.EventTypeStatsUpdated, stats["type"])
	assert.NotContains(t, stats, "token_id")
	assert.NotContains(t, stats, "price")
	assert.Equal(t, float64(1), stats["total_listings"])
}

func TestEventTypeListDecode(t *testing.T) {
	var list EventTypeList
	require.NoError(t, list.Decode("listed, sold,,"))
	assert.Equal(t, EventTypeList{"listed", "sold"}, list)
	assert.Error(t, list.Decode("listed,sold out"))
}

func TestWebhookReceivesFilteredEvents(t *testing.T) {
	svc, l := newTestService(t)
	svc.Config.WebhookEventTypes = EventTypeList{common.EventTypeSold}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var attempts atomic.Int32
	received := make(chan models.MarketEvent, 10)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// the first delivery fails and is retried
		if attempts.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		var event models.MarketEvent
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&event))
		received <- event
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	go svc.StartWebhookSubscription(ctx, server.URL)
	require.Eventually(t, func() bool {
		return svc.EventPubSub.SubscriberCount(common.EventTopicAll) == 1
	}, time.Second, 10*time.Millisecond)

	mintForSale(t, svc, l, 5, "seller")
	fund(t, svc, l, "buyer", 100)
	_, err := svc.List(ctx, testCollection, 5, "seller", 100)
	require.NoError(t, err)
	_, err = svc.Buy(ctx, testCollection, 5, "buyer", 100)
	require.NoError(t, err)

	select {
	case event := <-received:
		assert.Equal(t, common.EventTypeSold, event.Type)
		assert.Equal(t, "buyer", event.Buyer)
		assert.NotEmpty(t, event.EventID)
	case <-time.After(5 * time.Second):
		t.Fatal("webhook was not called")
	}
	assert.Empty(t, received)
}

func TestMarkEventPublished(t *testing.T) {
	svc, l := newTestService(t)
	ctx := context.Background()
	mintForSale(t, svc, l, 5, "seller")
	_, err := svc.List(ctx, testCollection, 5, "seller", 100)
	require.NoError(t, err)

	events, err := svc.Events(ctx, 0, 1)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.True(t, events[0].PublishedAt.IsZero())

	require.NoError(t, svc.MarkEventPublished(ctx, events[0]))
	events, err = svc.Events(ctx, 0, 1)
	require.NoError(t, err)
	assert.False(t, events[0].PublishedAt.IsZero())

	later, err := svc.Events(ctx, events[0].ID, 0)
	require.NoError(t, err)
	require.Len(t, later, 1)
	assert.Equal(t, common.EventTypeStatsUpdated, later[0].Type)

	between, err := svc.EventsBetween(ctx, time.Now().Add(-time.Hour), time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Len(t, between, 2)
}
