package list_time_slots

type CatalogService interface {
	ListTimeSlots(room string) ([]string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
