//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"autochannel/domain"
	"autochannel/domain/event"
	"context"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// IPlatformGateway is the chat platform as seen by the lifecycle.
// Every call may block on the network.
type IPlatformGateway interface {
	CloneChannel(ctx context.Context, templateID, name string) (string, error)
	MoveMember(ctx context.Context, guildID, memberID, channelID string) error
	DeleteChannel(ctx context.Context, channelID string) error
	LookupChannel(ctx context.Context, channelID string) (domain.ChannelInfo, error)
}

// IEventSource delivers gateway events in arrival order.
type IEventSource interface {
	Events() <-chan event.Event
}

type IConfigStore interface {
	ListTemplates() ([]domain.TemplateChannel, error)
	PutTemplate(id, displayName string) error
	DeleteTemplate(id string) error
	GetFallbackChannelID() (*string, error)
	SetFallbackChannelID(id string) error
	Message(key string) (string, error)
	SeedMessages(defaults map[string]string) error
}

type IEventHandler interface {
	Handle(ctx context.Context, e event.Event) error
}

type ILifecycle interface {
	IEventHandler
	CreateTemplate(ctx context.Context, cmd domain.CreateTemplateCommand) (domain.TemplateChannel, error)
	DeleteTemplate(ctx context.Context, templateID string) error
	Shutdown(ctx context.Context) int
}

// IReadiness is flipped once startup reconciliation has completed.
type IReadiness interface {
	SetServing(serving bool)
}
