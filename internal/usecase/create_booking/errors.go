package create_booking

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не существует
	ErrSlotNotFound = errors.New("create_booking: timeslot not found")

	// ErrSlotAlreadyBooked возвращается, когда слот уже забронирован
	// Слот не перебронируется никем, включая текущего владельца, до отмены
	ErrSlotAlreadyBooked = errors.New("create_booking: timeslot already booked")

	// ErrUserNotFound возвращается, когда пользователь не найден в AuthService
	ErrUserNotFound = errors.New("create_booking: user not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
