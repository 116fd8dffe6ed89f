package workers

import (
	"autochannel/domain/event"
	"autochannel/mocks"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEventWorker_Handles_Until_Channel_Closed(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	handler := mocks.NewMockIEventHandler(ctrl)

	events := make(chan event.Event, 3)
	join := event.MemberVoiceStateChanged{MemberID: "alice", After: &event.VoiceChannelRef{ID: "T", Members: 1}}
	deleted := event.ChannelDeleted{ChannelID: "C1"}
	ready := event.GatewayReady{Guilds: 1}
	events <- join
	events <- deleted
	events <- ready
	close(events)

	// Given a handler failing on the second event
	gomock.InOrder(
		handler.EXPECT().Handle(gomock.Any(), join).Return(nil),
		handler.EXPECT().Handle(gomock.Any(), deleted).Return(errors.New("boom")),
		handler.EXPECT().Handle(gomock.Any(), ready).Return(nil),
	)

	// Then the failure is logged and the worker keeps consuming
	err := NewEventWorker(events, handler, slog.Default()).Run(context.Background())
	req.NoError(err)
}

func TestEventWorker_Stops_On_Context_Done(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	handler := mocks.NewMockIEventHandler(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- NewEventWorker(make(chan event.Event), handler, slog.Default()).Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		req.NoError(err)
	case <-time.After(500 * time.Millisecond):
		req.Fail("Worker should have stopped")
	}
}
