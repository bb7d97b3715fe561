package categories

import "errors"

var (
	// ErrCategoryExists возвращается при попытке создать категорию с занятым именем
	ErrCategoryExists = errors.New("category already exists")

	// ErrAccessDenied возвращается, когда пользователь не является администратором
	ErrAccessDenied = errors.New("access denied")

	// ErrUserNotFound возвращается, когда пользователь не найден в AuthService
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
