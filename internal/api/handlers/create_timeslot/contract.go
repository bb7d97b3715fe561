package create_timeslot

import (
	"context"

	createTimeslot "github.com/mvlko/EventBookingService/internal/usecase/create_timeslot"
)

type CreateTimeSlotUseCase interface {
	Execute(ctx context.Context, req *createTimeslot.Request) (*createTimeslot.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
