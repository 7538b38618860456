package domain

import (
	"fmt"
	"slices"
)

// Room represents a bookable room with its ordered time slots
type Room struct {
	Name      string
	TimeSlots []string // Метки вида "HH:MM - HH:MM", не парсятся
}

// Floor represents a floor of a location with its ordered rooms
type Floor struct {
	Name  string
	Rooms []Room
}

// Location represents an office location with its ordered floors
type Location struct {
	Name   string
	Floors []Floor
}

// Catalog неизменяемая иерархия location → floor → room → time slot.
//
// Имена комнат уникальны в пределах всего каталога: слоты ищутся
// только по имени комнаты, без location и floor.
// После NewCatalog каталог не меняется, все методы возвращают копии,
// поэтому его можно читать из любого количества горутин без блокировок.
type Catalog struct {
	locations []string
	floors    map[string][]string            // location -> floors
	rooms     map[string]map[string][]string // location -> floor -> rooms
	slots     map[string][]string            // room -> time slots
}

// NewCatalog строит каталог из вложенных таблиц и проверяет инварианты
func NewCatalog(locations []Location) (*Catalog, error) {
	c := &Catalog{
		locations: make([]string, 0, len(locations)),
		floors:    make(map[string][]string, len(locations)),
		rooms:     make(map[string]map[string][]string, len(locations)),
		slots:     make(map[string][]string),
	}

	// room -> "location/floor", для сообщения о дубликате
	roomOwners := make(map[string]string)

	for _, loc := range locations {
		if loc.Name == "" {
			return nil, fmt.Errorf("%w: location name is empty", ErrInvalidCatalog)
		}
		if _, exists := c.floors[loc.Name]; exists {
			return nil, fmt.Errorf("%w: duplicate location %q", ErrInvalidCatalog, loc.Name)
		}

		floorNames := make([]string, 0, len(loc.Floors))
		floorRooms := make(map[string][]string, len(loc.Floors))

		for _, floor := range loc.Floors {
			if floor.Name == "" {
				return nil, fmt.Errorf("%w: empty floor name in location %q", ErrInvalidCatalog, loc.Name)
			}
			if _, exists := floorRooms[floor.Name]; exists {
				return nil, fmt.Errorf("%w: duplicate floor %q in location %q", ErrInvalidCatalog, floor.Name, loc.Name)
			}

			roomNames := make([]string, 0, len(floor.Rooms))
			for _, room := range floor.Rooms {
				if room.Name == "" {
					return nil, fmt.Errorf("%w: empty room name on floor %q of %q", ErrInvalidCatalog, floor.Name, loc.Name)
				}
				if owner, exists := roomOwners[room.Name]; exists {
					return nil, fmt.Errorf("%w: room %q is declared in %s and %s/%s",
						ErrInvalidCatalog, room.Name, owner, loc.Name, floor.Name)
				}
				if err := checkTimeSlots(room); err != nil {
					return nil, err
				}

				roomOwners[room.Name] = loc.Name + "/" + floor.Name
				roomNames = append(roomNames, room.Name)
				// Комната без слотов получает пустой список, а не отсутствующий ключ
				c.slots[room.Name] = append(make([]string, 0, len(room.TimeSlots)), room.TimeSlots...)
			}

			floorNames = append(floorNames, floor.Name)
			floorRooms[floor.Name] = roomNames
		}

		c.locations = append(c.locations, loc.Name)
		c.floors[loc.Name] = floorNames
		c.rooms[loc.Name] = floorRooms
	}

	return c, nil
}

func checkTimeSlots(room Room) error {
	seen := make(map[string]struct{}, len(room.TimeSlots))
	for _, slot := range room.TimeSlots {
		if slot == "" {
			return fmt.Errorf("%w: empty time slot in room %q", ErrInvalidCatalog, room.Name)
		}
		if _, exists := seen[slot]; exists {
			return fmt.Errorf("%w: duplicate time slot %q in room %q", ErrInvalidCatalog, slot, room.Name)
		}
		seen[slot] = struct{}{}
	}
	return nil
}

// Locations returns location names in catalog order
func (c *Catalog) Locations() []string {
	return slices.Clone(c.locations)
}

// Floors returns floors of the location in catalog order; false if the location is unknown
func (c *Catalog) Floors(location string) ([]string, bool) {
	floors, ok := c.floors[location]
	if !ok {
		return nil, false
	}
	return slices.Clone(floors), true
}

// HasFloor проверяет, что этаж входит в список этажей локации
func (c *Catalog) HasFloor(location, floor string) bool {
	return slices.Contains(c.floors[location], floor)
}

// Rooms returns rooms of the floor in catalog order; false if location or floor is unknown
func (c *Catalog) Rooms(location, floor string) ([]string, bool) {
	floors, ok := c.rooms[location]
	if !ok {
		return nil, false
	}
	rooms, ok := floors[floor]
	if !ok {
		return nil, false
	}
	return slices.Clone(rooms), true
}

// HasRoom проверяет, что комната находится именно на этом этаже этой локации
func (c *Catalog) HasRoom(location, floor, room string) bool {
	return slices.Contains(c.rooms[location][floor], room)
}

// TimeSlots returns the slots of a room looked up by name alone; false if the room is unknown.
// Every room gets an entry in NewCatalog, so a room without slots yields an empty list
func (c *Catalog) TimeSlots(room string) ([]string, bool) {
	slots, ok := c.slots[room]
	if !ok {
		return nil, false
	}
	return slices.Clone(slots), true
}

// HasTimeSlot проверяет, что слот настроен для комнаты
func (c *Catalog) HasTimeSlot(room, slot string) bool {
	return slices.Contains(c.slots[room], slot)
}
