package booking

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/chefhub-in/ChefHub-BookingService/internal/domain"
	"github.com/chefhub-in/ChefHub-BookingService/pkg/dbmetrics"
	"github.com/chefhub-in/ChefHub-BookingService/pkg/psqlbuilder"
)

// bookingColumns общий список колонок таблицы bookings
var bookingColumns = []string{
	"id",
	"user_phone",
	"chef_id",
	"chef_name",
	"chef_cuisine",
	"chef_hourly_rate",
	"chef_location",
	"chef_distance",
	"chef_image",
	"chef_rating",
	"chef_review_count",
	"chef_experience",
	"chef_bio",
	"chef_specialties",
	"chef_available",
	"chef_is_veg",
	"chef_indoor_only",
	"booking_date",
	"start_time",
	"guests",
	"hours",
	"event_location",
	"occasion",
	"details",
	"total_amount",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями и их историей статусов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Снапшот повара денормализуется в плоские колонки: цена и атрибуты
// фиксируются на момент создания и не зависят от последующих изменений каталога
// Запись истории статусов выполняется отдельным вызовом AppendHistory
// в той же транзакции (executor берётся из контекста)
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"user_phone",
			"chef_id",
			"chef_name",
			"chef_cuisine",
			"chef_hourly_rate",
			"chef_location",
			"chef_distance",
			"chef_image",
			"chef_rating",
			"chef_review_count",
			"chef_experience",
			"chef_bio",
			"chef_specialties",
			"chef_available",
			"chef_is_veg",
			"chef_indoor_only",
			"booking_date",
			"start_time",
			"guests",
			"hours",
			"event_location",
			"occasion",
			"details",
			"total_amount",
			"status",
		).
		Values(
			booking.ID,
			booking.UserPhone,
			booking.Chef.ID,
			booking.Chef.Name,
			joinTags(booking.Chef.Cuisine),
			booking.Chef.HourlyRate,
			booking.Chef.Location,
			booking.Chef.Distance,
			booking.Chef.Image,
			booking.Chef.Rating,
			booking.Chef.ReviewCount,
			booking.Chef.Experience,
			booking.Chef.Bio,
			joinTags(booking.Chef.Specialties),
			booking.Chef.Available,
			booking.Chef.IsVeg,
			booking.Chef.OnlyIndoorCooking,
			booking.Date,
			booking.StartTime,
			booking.Guests,
			booking.Hours,
			booking.EventLocation,
			booking.Occasion,
			booking.Details,
			booking.TotalAmount,
			booking.Status,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// AppendHistory добавляет запись в историю статусов бронирования
// История append-only: записи никогда не обновляются и не удаляются
func (r *Repository) AppendHistory(ctx context.Context, bookingID string, entry domain.StatusHistoryEntry) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("booking_status_history").
		Columns("booking_id", "status", "note", "created_at").
		Values(bookingID, entry.Status, entry.Note, entry.Timestamp).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AppendHistory - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: AppendHistory - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByID получает бронирование по ID вместе с историей статусов
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	// Внутри транзакции блокируем строку: статус меняется через read-modify-write
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, err
	}

	history, err := r.GetHistory(ctx, id)
	if err != nil {
		return nil, err
	}
	booking.StatusHistory = history

	return booking, nil
}

// GetByUserPhone получает бронирования пользователя, новые первыми
// Опционально фильтрует по статусу; бронирования никогда не удаляются
func (r *Repository) GetByUserPhone(ctx context.Context, phone string, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_phone": phone}).
		OrderBy("created_at DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserPhone - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserPhone - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings, err := scanBookings(rows)
	if err != nil {
		return nil, err
	}

	if err := r.attachHistories(ctx, bookings); err != nil {
		return nil, err
	}

	return bookings, nil
}

// UpdateStatus обновляет статус бронирования
// Вызывается в транзакции вместе с AppendHistory
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// GetHistory возвращает историю статусов бронирования в порядке добавления
func (r *Repository) GetHistory(ctx context.Context, bookingID string) ([]domain.StatusHistoryEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("status", "note", "created_at").
		From("booking_status_history").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetHistory - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetHistory - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	history := make([]domain.StatusHistoryEntry, 0)
	for rows.Next() {
		var entry domain.StatusHistoryEntry
		var createdAt sql.NullTime

		if err := rows.Scan(&entry.Status, &entry.Note, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: GetHistory - scan row: %v", ErrScanRow, err)
		}

		entry.Timestamp = createdAt.Time
		history = append(history, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetHistory - rows error: %v", ErrScanRow, err)
	}

	return history, nil
}

// attachHistories подгружает историю для списка бронирований одним запросом
func (r *Repository) attachHistories(ctx context.Context, bookings []*domain.Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	ids := make([]string, len(bookings))
	byID := make(map[string]*domain.Booking, len(bookings))
	for i, b := range bookings {
		ids[i] = b.ID
		byID[b.ID] = b
	}

	query, args, err := psqlbuilder.Select("booking_id", "status", "note", "created_at").
		From("booking_status_history").
		Where(squirrel.Eq{"booking_id": ids}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: attachHistories - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: attachHistories - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var bookingID string
		var entry domain.StatusHistoryEntry
		var createdAt sql.NullTime

		if err := rows.Scan(&bookingID, &entry.Status, &entry.Note, &createdAt); err != nil {
			return fmt.Errorf("%w: attachHistories - scan row: %v", ErrScanRow, err)
		}

		entry.Timestamp = createdAt.Time
		if booking, ok := byID[bookingID]; ok {
			booking.StatusHistory = append(booking.StatusHistory, entry)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: attachHistories - rows error: %v", ErrScanRow, err)
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку bookings в domain модель
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var cuisine, specialties string
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.UserPhone,
		&booking.Chef.ID,
		&booking.Chef.Name,
		&cuisine,
		&booking.Chef.HourlyRate,
		&booking.Chef.Location,
		&booking.Chef.Distance,
		&booking.Chef.Image,
		&booking.Chef.Rating,
		&booking.Chef.ReviewCount,
		&booking.Chef.Experience,
		&booking.Chef.Bio,
		&specialties,
		&booking.Chef.Available,
		&booking.Chef.IsVeg,
		&booking.Chef.OnlyIndoorCooking,
		&booking.Date,
		&booking.StartTime,
		&booking.Guests,
		&booking.Hours,
		&booking.EventLocation,
		&booking.Occasion,
		&booking.Details,
		&booking.TotalAmount,
		&booking.Status,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanBooking - scan row: %v", ErrScanRow, err)
	}

	booking.Chef.Cuisine = splitTags(cuisine)
	booking.Chef.Specialties = splitTags(specialties)
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// Теги храним той же строкой с запятыми, что отдаёт апстрим
func joinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

func splitTags(s string) []string {
	tags := make([]string, 0)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			tags = append(tags, part)
		}
	}
	return tags
}
