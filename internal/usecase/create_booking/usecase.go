package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/mvlko/EventBookingService/internal/domain"
	bookingRepo "github.com/mvlko/EventBookingService/internal/infra/storage/booking"
	timeslotRepo "github.com/mvlko/EventBookingService/internal/infra/storage/timeslot"
	authClient "github.com/mvlko/EventBookingService/internal/integrations/authservice"
)

// UseCase use case бронирования слота
type UseCase struct {
	timeslotRepo TimeSlotRepository
	bookingRepo  BookingRepository
	authClient   AuthServiceClient
	txManager    TransactionManager
	cache        SlotCache
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	timeslotRepo TimeSlotRepository,
	bookingRepo BookingRepository,
	auth AuthServiceClient,
	txManager TransactionManager,
	cache SlotCache,
	logger Logger,
) *UseCase {
	return &UseCase{
		timeslotRepo: timeslotRepo,
		bookingRepo:  bookingRepo,
		authClient:   auth,
		txManager:    txManager,
		cache:        cache,
		logger:       logger,
	}
}

// Execute выполняет бронирование слота
//
// Проверка "слот свободен" и вставка бронирования выполняются в одной
// сериализуемой транзакции; инвариант "не больше одного бронирования на
// слот" дополнительно страхует уникальный констрейнт в БД. Из двух
// конкурентных бронирований одного слота ровно одно завершается успехом,
// второе получает ErrSlotAlreadyBooked.
//
// Чтение календаря при этом оптимистичное: клиент мог видеть слот
// свободным и всё равно получить ErrSlotAlreadyBooked - это штатный
// исход гонки, а не сбой
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, timeslot=%d", req.UserID, req.TimeSlotID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем профиль пользователя (имя и email денормализуются в бронирование)
	user, err := uc.authClient.GetUser(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, authClient.ErrUserNotFound) {
			uc.logger.Warn("CreateBooking: user=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateBooking: failed to get user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	var result *domain.TimeSlot

	// 3. Проверка доступности и вставка - единый атомарный шаг
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Читаем слот с блокировкой строки (FOR UPDATE внутри транзакции)
		slot, err := uc.timeslotRepo.GetByID(txCtx, req.TimeSlotID)
		if err != nil {
			if errors.Is(err, timeslotRepo.ErrTimeSlotNotFound) {
				uc.logger.Warn("CreateBooking: timeslot=%d not found", req.TimeSlotID)
				return ErrSlotNotFound
			}
			uc.logger.Error("CreateBooking: failed to get timeslot=%d: %v", req.TimeSlotID, err)
			return fmt.Errorf("%w: failed to get timeslot: %v", ErrInternal, err)
		}

		// 3.2. Слот уже занят - отказ без попытки вставки
		if !slot.IsAvailable() {
			uc.logger.Warn("CreateBooking: timeslot=%d already booked by user=%d",
				req.TimeSlotID, slot.Booking.UserID)
			return ErrSlotAlreadyBooked
		}

		// 3.3. Прикрепляем бронирование
		booking := &domain.Booking{
			TimeSlotID: req.TimeSlotID,
			UserID:     req.UserID,
			UserName:   user.Name,
			UserEmail:  user.Email,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			switch {
			case errors.Is(err, bookingRepo.ErrSlotAlreadyBooked):
				// Конкурент успел раньше
				uc.logger.Warn("CreateBooking: lost race for timeslot=%d", req.TimeSlotID)
				return ErrSlotAlreadyBooked
			case errors.Is(err, bookingRepo.ErrTimeSlotNotFound):
				// Слот удален администратором между чтением и вставкой
				uc.logger.Warn("CreateBooking: timeslot=%d deleted concurrently", req.TimeSlotID)
				return ErrSlotNotFound
			default:
				uc.logger.Error("CreateBooking: failed to create booking: %v", err)
				return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
			}
		}

		slot.Booking = created.Info()
		result = slot
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 4. Каталог изменился - закэшированные окна устарели
	uc.cache.Invalidate(ctx)

	uc.logger.Info("CreateBooking: successfully booked timeslot=%d, booking id=%d",
		req.TimeSlotID, result.Booking.ID)

	return &Response{Slot: result}, nil
}
