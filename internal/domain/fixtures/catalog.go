// Package fixtures содержит демонстрационный каталог офисов и пользователей для тестов
package fixtures

import "github.com/m04kA/SMC-MeetingRoomService/internal/domain"

// Locations returns the demo office tables, the same data as catalog.toml
func Locations() []domain.Location {
	return []domain.Location{
		{
			Name: "Hoà Lạc",
			Floors: []domain.Floor{
				{Name: "1", Rooms: []domain.Room{
					{Name: "HL-1F-Room A", TimeSlots: []string{"09:00 - 10:00", "10:00 - 11:00", "14:00 - 15:00"}},
					{Name: "HL-1F-Room B", TimeSlots: []string{"09:30 - 10:30", "11:00 - 12:00", "15:00 - 16:00"}},
				}},
				{Name: "2", Rooms: []domain.Room{
					{Name: "HL-2F-Conf Hall", TimeSlots: []string{"10:00 - 12:00", "13:30 - 15:30"}},
				}},
			},
		},
		{
			Name: "FPT Tower",
			Floors: []domain.Floor{
				{Name: "10", Rooms: []domain.Room{
					{Name: "FPTT-10F-Room 101", TimeSlots: []string{"08:00 - 09:00", "10:00 - 11:00"}},
					{Name: "FPTT-10F-Room 102", TimeSlots: []string{"09:00 - 10:00", "13:00 - 14:00", "16:00 - 17:00"}},
				}},
				{Name: "11", Rooms: []domain.Room{
					{Name: "FPTT-11F-Meeting Hub", TimeSlots: []string{"10:30 - 12:00", "14:00 - 15:30"}},
				}},
				{Name: "12", Rooms: []domain.Room{
					{Name: "FPTT-12F-Exec Suite", TimeSlots: []string{"11:00 - 12:30", "14:00 - 16:00"}},
					{Name: "FPTT-12F-Room A", TimeSlots: []string{"11:00 - 12:00", "14:00 - 15:00", "16:00 - 17:00"}},
					{Name: "FPTT-12F-Room B", TimeSlots: []string{"09:00 - 10:00", "14:00 - 15:30"}},
					{Name: "FPTT-12F-Conf Room", TimeSlots: []string{"10:00 - 12:00", "14:00 - 16:00"}},
					{Name: "FPTT-12F-Training Room", TimeSlots: []string{"08:00 - 10:00", "14:00 - 17:00"}},
				}},
			},
		},
		{
			Name: "Duy Tân",
			Floors: []domain.Floor{
				{Name: "3", Rooms: []domain.Room{
					{Name: "DT-3F-Room Alpha", TimeSlots: []string{"09:00 - 11:00", "14:00 - 16:00"}},
				}},
				{Name: "4", Rooms: []domain.Room{
					{Name: "DT-4F-Room Beta", TimeSlots: []string{"10:00 - 12:00", "13:00 - 15:00"}},
				}},
			},
		},
		{
			Name: "Fville 1",
			Floors: []domain.Floor{
				{Name: "0", Rooms: []domain.Room{
					{Name: "FV1-GF-Innovation", TimeSlots: []string{"09:00 - 10:30", "14:30 - 16:00"}},
				}},
				{Name: "1", Rooms: []domain.Room{
					{Name: "FV1-1F-Collaboration", TimeSlots: []string{"10:00 - 11:30", "13:00 - 14:30"}},
				}},
			},
		},
		{
			Name: "Fville 2",
			Floors: []domain.Floor{
				{Name: "A1", Rooms: []domain.Room{
					{Name: "FV2-A1-Synergy", TimeSlots: []string{"08:30 - 10:00", "15:00 - 16:30"}},
				}},
				{Name: "B2", Rooms: []domain.Room{
					{Name: "FV2-B2-Focus", TimeSlots: []string{"10:30 - 12:00", "13:30 - 15:00"}},
				}},
			},
		},
		{
			Name: "Fville 3",
			Floors: []domain.Floor{
				{Name: "MH", Rooms: []domain.Room{
					{Name: "FV3-MH-Connect", TimeSlots: []string{"09:00 - 10:00", "11:00 - 12:00", "14:00 - 15:00"}},
				}},
				{Name: "C3", Rooms: []domain.Room{
					{Name: "FV3-C3-Think Tank", TimeSlots: []string{"10:00 - 11:30", "13:00 - 14:30", "15:30 - 17:00"}},
				}},
			},
		},
	}
}

// Catalog builds the demo catalog, panicking on invalid data
func Catalog() *domain.Catalog {
	c, err := domain.NewCatalog(Locations())
	if err != nil {
		panic(err)
	}
	return c
}

// Users returns the demo user assignments, the same data as users.toml
func Users() []domain.UserAssignment {
	return []domain.UserAssignment{
		{UserID: "ToanLM1", Location: "FPT Tower", Floor: "12"},
		{UserID: "AnNH8", Location: "Hoà Lạc", Floor: "2"},
		{UserID: "user123", Location: "FPT Tower", Floor: "10"},
		{UserID: "admin456", Location: "Hoà Lạc", Floor: "1"},
		{UserID: "dev789", Location: "Fville 3", Floor: "C3"},
	}
}
