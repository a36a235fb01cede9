package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"firebase.google.com/go/messaging"
	"github.com/MKhiriev/go-sub-keeper/internal/logger"
	"github.com/MKhiriev/go-sub-keeper/internal/mock"
	"github.com/MKhiriev/go-sub-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeMessenger struct {
	sent    []*messaging.Message
	dryRuns []*messaging.Message
	failFor map[string]error
}

func (f *fakeMessenger) Send(_ context.Context, m *messaging.Message) (string, error) {
	if err := f.failFor[m.Token]; err != nil {
		return "", err
	}
	f.sent = append(f.sent, m)
	return "projects/p/messages/1", nil
}

func (f *fakeMessenger) SendDryRun(_ context.Context, m *messaging.Message) (string, error) {
	if err := f.failFor[m.Token]; err != nil {
		return "", err
	}
	f.dryRuns = append(f.dryRuns, m)
	return "projects/p/messages/dry", nil
}

func TestFCMNotifier_SendsToEveryToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	tokens := mock.NewMockDeviceTokenRepository(ctrl)
	tokens.EXPECT().ListDeviceTokens(ctx, "user-1").Return([]string{"a", "b"}, nil)

	messenger := &fakeMessenger{}
	n := NewFCMNotifier(messenger, tokens, logger.Nop())

	list := models.SubscriptionStatusList{Subscriptions: []models.SubscriptionStatus{{ProductID: "basic", EntitlementActive: true}}}
	require.NoError(t, n.Notify(ctx, "user-1", list))

	require.Len(t, messenger.sent, 2)
	assert.Equal(t, "a", messenger.sent[0].Token)
	assert.Equal(t, "b", messenger.sent[1].Token)

	var decoded models.SubscriptionStatusList
	require.NoError(t, json.Unmarshal([]byte(messenger.sent[0].Data[CurrentStatusKey]), &decoded))
	assert.Equal(t, list, decoded)
}

func TestFCMNotifier_NoTokens(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	tokens := mock.NewMockDeviceTokenRepository(ctrl)
	tokens.EXPECT().ListDeviceTokens(ctx, "user-1").Return([]string{}, nil)

	messenger := &fakeMessenger{}
	require.NoError(t, NewFCMNotifier(messenger, tokens, logger.Nop()).Notify(ctx, "user-1", models.SubscriptionStatusList{}))
	assert.Empty(t, messenger.sent)
}

func TestFCMNotifier_ContinuesAfterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	tokens := mock.NewMockDeviceTokenRepository(ctrl)
	tokens.EXPECT().ListDeviceTokens(ctx, "user-1").Return([]string{"stale", "ok"}, nil)

	messenger := &fakeMessenger{failFor: map[string]error{"stale": errors.New("unregistered")}}
	err := NewFCMNotifier(messenger, tokens, logger.Nop()).Notify(ctx, "user-1", models.SubscriptionStatusList{})

	require.ErrorIs(t, err, ErrDeliveryFailed)
	require.Len(t, messenger.sent, 1)
	assert.Equal(t, "ok", messenger.sent[0].Token)
}

func TestFCMTokenValidator(t *testing.T) {
	ctx := context.Background()
	messenger := &fakeMessenger{failFor: map[string]error{"bad": errors.New("invalid registration")}}
	v := NewFCMTokenValidator(messenger)

	assert.NoError(t, v.ValidateToken(ctx, "good"))
	assert.ErrorIs(t, v.ValidateToken(ctx, "bad"), ErrInvalidToken)
	assert.ErrorIs(t, v.ValidateToken(ctx, " "), ErrEmptyToken)
	assert.Len(t, messenger.dryRuns, 1)
	assert.Empty(t, messenger.sent)
}
