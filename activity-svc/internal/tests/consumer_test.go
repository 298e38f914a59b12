package tests

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"quickbite/activity-svc/internal/domain"
	"quickbite/activity-svc/internal/mocks"
	"quickbite/activity-svc/internal/service"
)

func TestConsumer_ProcessCartEvent(t *testing.T) {
	tests := []struct {
		name           string
		inputMessage   domain.CartMessage
		setupMockStore func(*mocks.StoreInterface)
	}{
		{
			name: "cart update counted",
			inputMessage: domain.CartMessage{
				Type:      domain.CartUpdated,
				SessionID: "sess-1",
			},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("BumpSession", "sess-1", "cartUpdated").Return(nil)
			},
		},
		{
			name: "favorites update counted",
			inputMessage: domain.CartMessage{
				Type:      domain.FavoritesUpdated,
				SessionID: "sess-1",
			},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("BumpSession", "sess-1", "favoritesUpdated").Return(nil)
			},
		},
		{
			name: "store error is swallowed",
			inputMessage: domain.CartMessage{
				Type:      domain.CartUpdated,
				SessionID: "sess-1",
			},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("BumpSession", "sess-1", "cartUpdated").Return(errors.New("redis error"))
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockStore := mocks.NewStoreInterface(t)
			testCase.setupMockStore(mockStore)

			consumer := &service.Consumer{Store: mockStore}
			consumer.ProcessCartEvent(testCase.inputMessage)
			mockStore.AssertExpectations(t)
		})
	}
}

func TestConsumer_ProcessCartEvent_IgnoresUnknownOrAnonymous(t *testing.T) {
	mockStore := mocks.NewStoreInterface(t)
	consumer := &service.Consumer{Store: mockStore}

	consumer.ProcessCartEvent(domain.CartMessage{Type: "unknown_type", SessionID: "sess-1"})
	consumer.ProcessCartEvent(domain.CartMessage{Type: domain.CartUpdated, SessionID: ""})

	mockStore.AssertNotCalled(t, "BumpSession", mock.Anything, mock.Anything)
}

func TestConsumer_ProcessOrderEvent(t *testing.T) {
	at := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	mockStore := mocks.NewStoreInterface(t)
	mockStore.On("RecordOrderStatus", 2, "confirmed", at).Return(nil)

	consumer := &service.Consumer{Store: mockStore}
	consumer.ProcessOrderEvent(domain.OrderMessage{
		Type:         domain.StatusChanged,
		OrderID:      42,
		RestaurantID: 2,
		From:         "pending",
		To:           "confirmed",
		Timestamp:    at,
	})
	mockStore.AssertExpectations(t)
}

func TestConsumer_ProcessOrderEvent_DefaultsMissingTimestamp(t *testing.T) {
	mockStore := mocks.NewStoreInterface(t)
	mockStore.On("RecordOrderStatus", 2, "delivered", mock.MatchedBy(func(at time.Time) bool {
		return !at.IsZero()
	})).Return(nil)

	consumer := &service.Consumer{Store: mockStore}
	consumer.ProcessOrderEvent(domain.OrderMessage{
		Type:         domain.StatusChanged,
		RestaurantID: 2,
		To:           "delivered",
	})
	mockStore.AssertExpectations(t)
}

func TestConsumer_ProcessOrderEvent_IgnoresForeignTypes(t *testing.T) {
	mockStore := mocks.NewStoreInterface(t)
	consumer := &service.Consumer{Store: mockStore}

	consumer.ProcessOrderEvent(domain.OrderMessage{Type: "payment_settled", RestaurantID: 2})
	consumer.ProcessOrderEvent(domain.OrderMessage{Type: domain.StatusChanged, RestaurantID: 0})

	mockStore.AssertNotCalled(t, "RecordOrderStatus", mock.Anything, mock.Anything, mock.Anything)
}
