package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-sub-keeper/internal/app"
	"github.com/MKhiriev/go-sub-keeper/internal/logger"
	"github.com/MKhiriev/go-sub-keeper/internal/mock"
	"github.com/MKhiriev/go-sub-keeper/internal/notify"
	"github.com/MKhiriev/go-sub-keeper/internal/service"
	"github.com/MKhiriev/go-sub-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type cliFixture struct {
	subs    *mock.MockClientSubscriptionService
	job     *mock.MockClientRefreshJob
	app     *App
	opts    *rootOptions
	timeout time.Duration
	failure error
}

func newCLIFixture(t *testing.T) *cliFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &cliFixture{
		subs: mock.NewMockClientSubscriptionService(ctrl),
		job:  mock.NewMockClientRefreshJob(ctrl),
	}
	f.app = &App{
		subscriptions:   f.subs,
		refreshJob:      f.job,
		refreshInterval: time.Minute,
		logger:          logger.Nop(),
	}
	f.opts = &rootOptions{app: f.app, logger: logger.Nop()}
	f.timeout = time.Second
	f.subs.EXPECT().LastFailure().DoAndReturn(func() error { return f.failure }).AnyTimes()
	return f
}

func (f *cliFixture) run(stdin string, args ...string) (string, error) {
	root := newRootCommand(f.opts)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append(args, "--timeout="+f.timeout.String()))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func closed() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

func decodeList(t *testing.T, out string) models.SubscriptionStatusList {
	t.Helper()
	var list models.SubscriptionStatusList
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	return list
}

func TestStatusCommand(t *testing.T) {
	f := newCLIFixture(t)
	f.subs.EXPECT().RefreshStatus(gomock.Any()).Return(closed())
	f.subs.EXPECT().Subscriptions().Return([]models.SubscriptionStatus{{ProductID: "basic", EntitlementActive: true}})

	out, err := f.run("", "status")

	require.NoError(t, err)
	list := decodeList(t, out)
	require.Len(t, list.Subscriptions, 1)
	assert.True(t, list.Subscriptions[0].EntitlementActive)
}

func TestStatusCommand_TimesOut(t *testing.T) {
	f := newCLIFixture(t)
	f.timeout = 10 * time.Millisecond
	f.subs.EXPECT().RefreshStatus(gomock.Any()).Return(make(chan struct{}))

	start := time.Now()
	_, err := f.run("", "status")

	assert.ErrorIs(t, err, ErrTimedOut)
	assert.Less(t, time.Since(start), 5*time.Second)
	assert.Equal(t, 10*time.Millisecond, f.opts.timeout)
}

func TestStatusCommand_ReportsFailedRefresh(t *testing.T) {
	f := newCLIFixture(t)
	failure := &service.OperationError{Method: "refreshStatus", Code: http.StatusInternalServerError, Message: "boom"}
	f.subs.EXPECT().RefreshStatus(gomock.Any()).DoAndReturn(func(context.Context) <-chan struct{} {
		f.failure = failure
		return closed()
	})

	out, err := f.run("", "status")

	assert.ErrorIs(t, err, failure)
	assert.Empty(t, out)
}

func TestStatusCommand_IgnoresEarlierFailure(t *testing.T) {
	f := newCLIFixture(t)
	f.failure = &service.OperationError{Method: "refreshStatus", Code: app.NoHTTPCode, Message: "offline"}
	f.subs.EXPECT().RefreshStatus(gomock.Any()).Return(closed())
	f.subs.EXPECT().Subscriptions().Return(nil)

	_, err := f.run("", "status")

	assert.NoError(t, err)
}

func TestCacheCommand_EmptyCache(t *testing.T) {
	f := newCLIFixture(t)
	f.subs.EXPECT().Subscriptions().Return(nil)

	out, err := f.run("", "cache")

	require.NoError(t, err)
	assert.JSONEq(t, `{"subscriptions":[]}`, out)
}

func TestPurchaseCommands(t *testing.T) {
	f := newCLIFixture(t)
	conflict := models.NewConflictStatus("basic", "tok")
	f.subs.EXPECT().Register(gomock.Any(), "basic", "tok").Return(closed())
	f.subs.EXPECT().Transfer(gomock.Any(), "basic", "tok").Return(closed())
	f.subs.EXPECT().Subscriptions().Return([]models.SubscriptionStatus{conflict}).Times(2)

	out, err := f.run("", "register", "basic", "tok")
	require.NoError(t, err)
	assert.True(t, decodeList(t, out).Subscriptions[0].AlreadyOwnedByOtherUser)

	_, err = f.run("", "transfer", "basic", "tok")
	require.NoError(t, err)
}

func TestPurchaseCommands_ServerOutcomes(t *testing.T) {
	tests := []struct {
		name    string
		use     string
		code    int
		wantErr bool
	}{
		{name: "register conflict prints the record", use: "register", code: http.StatusConflict},
		{name: "register server error", use: "register", code: http.StatusInternalServerError, wantErr: true},
		{name: "transfer without response", use: "transfer", code: app.NoHTTPCode, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCLIFixture(t)
			failure := &service.OperationError{Method: tt.use, Code: tt.code, Message: "failed"}
			fail := func(context.Context, string, string) <-chan struct{} {
				f.failure = failure
				return closed()
			}
			if tt.use == "register" {
				f.subs.EXPECT().Register(gomock.Any(), "basic", "tok").DoAndReturn(fail)
			} else {
				f.subs.EXPECT().Transfer(gomock.Any(), "basic", "tok").DoAndReturn(fail)
			}
			if !tt.wantErr {
				f.subs.EXPECT().Subscriptions().Return([]models.SubscriptionStatus{models.NewConflictStatus("basic", "tok")})
			}

			out, err := f.run("", tt.use, "basic", "tok")

			if tt.wantErr {
				assert.ErrorIs(t, err, failure)
				return
			}
			require.NoError(t, err)
			assert.True(t, decodeList(t, out).Subscriptions[0].AlreadyOwnedByOtherUser)
		})
	}
}

func TestPurchaseCommand_RequiresTwoArgs(t *testing.T) {
	f := newCLIFixture(t)

	_, err := f.run("", "register", "basic")
	assert.Error(t, err)
}

func TestContentCommand(t *testing.T) {
	f := newCLIFixture(t)
	f.subs.EXPECT().FetchBasicContent(gomock.Any()).Return(closed())
	f.subs.EXPECT().Content(models.ContentTierBasic).Return(models.ContentResource{URL: "basic.jpg"}, true)
	f.subs.EXPECT().FetchPremiumContent(gomock.Any()).Return(closed())
	f.subs.EXPECT().Content(models.ContentTierPremium).Return(models.ContentResource{}, false)

	out, err := f.run("", "content", "basic")
	require.NoError(t, err)
	assert.JSONEq(t, `{"url":"basic.jpg"}`, out)

	_, err = f.run("", "content", "premium")
	assert.ErrorIs(t, err, ErrContentUnavailable)

	_, err = f.run("", "content", "gold")
	assert.ErrorIs(t, err, ErrUnknownTier)
}

func TestDeviceCommands(t *testing.T) {
	f := newCLIFixture(t)
	f.subs.EXPECT().OnDeviceTokenRefreshed(gomock.Any(), "fcm-1").Return(closed())
	f.subs.EXPECT().UnregisterDevice(gomock.Any(), "fcm-1").Return(closed())

	_, err := f.run("", "device", "register", "fcm-1")
	require.NoError(t, err)

	_, err = f.run("", "device", "unregister", "fcm-1")
	require.NoError(t, err)
}

func TestPushApplyCommand(t *testing.T) {
	f := newCLIFixture(t)
	payload := `{"currentStatus":"{\"subscriptions\":[{\"productId\":\"premium\",\"entitlementActive\":true}]}"}`
	f.subs.EXPECT().OnPushPayloadReceived(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, data map[string]string) error {
			assert.Contains(t, data[notify.CurrentStatusKey], "premium")
			return nil
		})
	f.subs.EXPECT().Subscriptions().Return([]models.SubscriptionStatus{{ProductID: "premium", EntitlementActive: true}})

	out, err := f.run(payload, "push", "apply", "-")

	require.NoError(t, err)
	assert.Equal(t, "premium", decodeList(t, out).Subscriptions[0].ProductID)
}

func TestPushApplyCommand_RejectedPayload(t *testing.T) {
	f := newCLIFixture(t)
	rejected := errors.New("no status")
	f.subs.EXPECT().OnPushPayloadReceived(gomock.Any(), map[string]string{"other": "x"}).Return(rejected)

	_, err := f.run(`{"other":"x"}`, "push", "apply", "-")
	assert.ErrorIs(t, err, rejected)

	_, err = f.run(`not json`, "push", "apply", "-")
	assert.Error(t, err)
}

func TestCLI_BuildsAppOnceAndClosesIt(t *testing.T) {
	f := newCLIFixture(t)
	closes := 0
	f.app.closers = []func() error{func() error { closes++; return nil }}
	f.subs.EXPECT().Subscriptions().Return(nil)

	builds := 0
	f.opts.app = nil
	f.opts.newApp = func(context.Context, string) (*App, error) {
		builds++
		return f.app, nil
	}

	cli := &CLI{opts: f.opts, root: newRootCommand(f.opts)}
	cli.root.SetOut(&bytes.Buffer{})
	cli.root.SetArgs([]string{"cache", "--config", "client.json"})

	require.NoError(t, cli.ExecuteContext(context.Background()))
	assert.Equal(t, 1, builds)
	assert.Equal(t, 1, closes)
}

func TestCLI_AppBuildFailure(t *testing.T) {
	f := newCLIFixture(t)
	buildErr := errors.New("bad config")
	f.opts.app = nil
	f.opts.newApp = func(context.Context, string) (*App, error) { return nil, buildErr }

	_, err := f.run("", "cache")
	assert.ErrorIs(t, err, buildErr)
}
