package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotAlreadyBooked возвращается, когда слот уже забронирован
	// (нарушение уникальности bookings.timeslot_id)
	ErrSlotAlreadyBooked = errors.New("booking.repository: timeslot already booked")

	// ErrTimeSlotNotFound возвращается, когда слот бронирования не существует
	ErrTimeSlotNotFound = errors.New("booking.repository: timeslot not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
