package notification_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/browse/internal/application/port"
	"github.com/bnema/browse/internal/infrastructure/notification"
	"github.com/bnema/browse/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func awaitResponse(t *testing.T, ch <-chan string) string {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("no response")
		return ""
	}
}

func TestNotifier_TimeoutAnswersEmpty(t *testing.T) {
	n := notification.New(nil)
	got := make(chan string, 1)

	n.Show(testContext(), port.Notice{Title: "Download started", Timeout: 10 * time.Millisecond},
		func(a string) { got <- a })

	assert.Equal(t, "", awaitResponse(t, got))
	assert.Zero(t, n.Pending())
}

func TestNotifier_RespondIsAsynchronousAndOnce(t *testing.T) {
	n := notification.New(nil)
	got := make(chan string, 2)

	id := n.Show(testContext(), port.Notice{Title: "Download complete"}, func(a string) { got <- a })
	require.True(t, n.Respond(id, port.ActionShow))
	assert.Equal(t, port.ActionShow, awaitResponse(t, got))

	assert.False(t, n.Respond(id, port.ActionOK))
	select {
	case a := <-got:
		t.Fatalf("unexpected second response %q", a)
	case <-time.After(30 * time.Millisecond):
	}
}

func TestNotifier_DismissSuppressesCallback(t *testing.T) {
	var sunk []port.Notice
	n := notification.New(func(_ port.NotificationID, notice port.Notice) { sunk = append(sunk, notice) })
	got := make(chan string, 1)

	id := n.Show(testContext(), port.Notice{Title: "x", Timeout: 20 * time.Millisecond}, func(a string) { got <- a })
	n.Dismiss(testContext(), id)

	select {
	case <-got:
		t.Fatal("dismissed notice answered")
	case <-time.After(60 * time.Millisecond):
	}
	require.Len(t, sunk, 1)
	assert.Equal(t, "x", sunk[0].Title)
}
