package domain

// Default filter values
const (
	DefaultPriceMin    = 0.0
	DefaultPriceMax    = 16600.0
	DefaultMaxDistance = 50.0
)

// DefaultCuisineTag подставляется, когда у повара нет ни одного тега кухни
const DefaultCuisineTag = "General"

// Business validation constants
const (
	MinGuests        = 1
	MaxGuests        = 500
	MaxHours         = 24.0
	MaxNoteLength    = 500
	MaxDetailsLength = 1000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// StatusOrder канонический порядок прохождения статусов бронирования
// cancelled не входит в линейный порядок и обрабатывается отдельной веткой
var StatusOrder = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
}

// ActiveStatuses список статусов активных бронирований
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
}

// StatusLabels человекочитаемые названия статусов для клиента
var StatusLabels = map[BookingStatus]string{
	StatusPending:    "Pending Confirmation",
	StatusConfirmed:  "Confirmed",
	StatusInProgress: "In Progress",
	StatusCompleted:  "Completed",
	StatusCancelled:  "Cancelled",
}
