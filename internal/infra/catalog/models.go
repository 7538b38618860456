package catalog

import "github.com/m04kA/SMC-MeetingRoomService/internal/domain"

// fileModel схема файла catalog.toml
type fileModel struct {
	Locations []locationModel `toml:"locations"`
}

type locationModel struct {
	Name   string       `toml:"name"`
	Floors []floorModel `toml:"floors"`
}

type floorModel struct {
	Name  string      `toml:"name"`
	Rooms []roomModel `toml:"rooms"`
}

type roomModel struct {
	Name      string   `toml:"name"`
	TimeSlots []string `toml:"time_slots"`
}

func (m *fileModel) toDomain() []domain.Location {
	locations := make([]domain.Location, 0, len(m.Locations))
	for _, l := range m.Locations {
		floors := make([]domain.Floor, 0, len(l.Floors))
		for _, f := range l.Floors {
			rooms := make([]domain.Room, 0, len(f.Rooms))
			for _, r := range f.Rooms {
				rooms = append(rooms, domain.Room{Name: r.Name, TimeSlots: r.TimeSlots})
			}
			floors = append(floors, domain.Floor{Name: f.Name, Rooms: rooms})
		}
		locations = append(locations, domain.Location{Name: l.Name, Floors: floors})
	}
	return locations
}
