package list_locations

type CatalogService interface {
	ListLocations() []string
}

type Logger interface {
	Info(format string, v ...interface{})
}
