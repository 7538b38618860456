package catalog

// RoomSlots комната вместе с её временными слотами
type RoomSlots struct {
	Room      string
	TimeSlots []string
}
