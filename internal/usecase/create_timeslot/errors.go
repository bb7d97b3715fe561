package create_timeslot

import "errors"

var (
	// ErrValidation возвращается при некорректном черновике слота
	// (пустой заголовок, end_time <= start_time и т.п.)
	ErrValidation = errors.New("create_timeslot: validation failed")

	// ErrCategoryNotFound возвращается, когда категория слота не существует
	ErrCategoryNotFound = errors.New("create_timeslot: category not found")

	// ErrAccessDenied возвращается, когда пользователь не является администратором
	ErrAccessDenied = errors.New("create_timeslot: access denied")

	// ErrUserNotFound возвращается, когда пользователь не найден в AuthService
	ErrUserNotFound = errors.New("create_timeslot: user not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_timeslot: internal error")
)
