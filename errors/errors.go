package errors

import "fmt"

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")

	ErrAlreadyRegistered = fmt.Errorf("autochannel already registered")
	ErrNotFound          = fmt.Errorf("channel not found")
	ErrNotVoiceChannel   = fmt.Errorf("channel is not a voice channel")
	ErrTemporaryChannel  = fmt.Errorf("channel is a temporary channel")
	ErrPlatformOperation = fmt.Errorf("platform operation failed")
	ErrConfigPersistence = fmt.Errorf("config persistence failed")
)
