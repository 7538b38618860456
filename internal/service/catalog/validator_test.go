package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	"github.com/m04kA/SMC-MeetingRoomService/internal/domain/fixtures"
)

func newTestValidator(t *testing.T) *Validator {
	t.Helper()
	return NewValidator(fixtures.Catalog())
}

func TestValidator_Scenarios(t *testing.T) {
	v := newTestValidator(t)

	floors, err := v.ListFloors("Hoà Lạc")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, floors)

	rooms, err := v.ListRooms("Hoà Lạc", "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"HL-1F-Room A", "HL-1F-Room B"}, rooms)

	slots, err := v.ListTimeSlots("HL-1F-Room A")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00 - 10:00", "10:00 - 11:00", "14:00 - 15:00"}, slots)

	_, err = v.ListRooms("Nowhere", "1")
	assert.ErrorIs(t, err, ErrUnknownLocation)

	_, err = v.ListTimeSlots("No Such Room")
	assert.ErrorIs(t, err, ErrUnknownRoom)
}

func TestValidator_ListLocations(t *testing.T) {
	v := newTestValidator(t)

	assert.Equal(t,
		[]string{"Hoà Lạc", "FPT Tower", "Duy Tân", "Fville 1", "Fville 2", "Fville 3"},
		v.ListLocations(),
	)
}

func TestValidator_ListFloors_UnknownLocation(t *testing.T) {
	v := newTestValidator(t)

	for _, location := range []string{"", "Nowhere", "hoà lạc"} {
		floors, err := v.ListFloors(location)
		assert.ErrorIs(t, err, ErrUnknownLocation, "location=%q", location)
		assert.Nil(t, floors)
	}
}

func TestValidator_ListRooms_UnknownFloor(t *testing.T) {
	v := newTestValidator(t)

	_, err := v.ListRooms("Hoà Lạc", "10")
	assert.ErrorIs(t, err, ErrUnknownFloor)

	_, err = v.ListRooms("FPT Tower", "")
	assert.ErrorIs(t, err, ErrUnknownFloor)
}

func TestValidator_EmptyFloorAndRoom(t *testing.T) {
	c, err := domain.NewCatalog([]domain.Location{
		{Name: "Annex", Floors: []domain.Floor{
			{Name: "G"},
			{Name: "1", Rooms: []domain.Room{{Name: "Annex-1F-Storage"}}},
		}},
	})
	require.NoError(t, err)
	v := NewValidator(c)

	rooms, err := v.ListRooms("Annex", "G")
	require.NoError(t, err)
	assert.NotNil(t, rooms)
	assert.Empty(t, rooms)

	slots, err := v.ListTimeSlots("Annex-1F-Storage")
	require.NoError(t, err)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)

	_, err = v.ValidateBooking(domain.BookingIntent{
		Location: "Annex", Floor: "1", Room: "Annex-1F-Storage", TimeSlot: "09:00 - 10:00",
	})
	assert.ErrorIs(t, err, ErrInvalidDetails)
}

func TestValidator_HierarchyIsConsistent(t *testing.T) {
	v := newTestValidator(t)

	for _, location := range v.ListLocations() {
		floors, err := v.ListFloors(location)
		require.NoError(t, err, "location=%q", location)

		for _, floor := range floors {
			rooms, err := v.ListRooms(location, floor)
			require.NoError(t, err, "location=%q floor=%q", location, floor)

			for _, room := range rooms {
				_, err := v.ListTimeSlots(room)
				require.NoError(t, err, "room=%q", room)
			}
		}
	}
}

func TestValidator_ListRoomsWithSlots(t *testing.T) {
	v := newTestValidator(t)

	rooms, err := v.ListRoomsWithSlots("Hoà Lạc", "2")
	require.NoError(t, err)
	assert.Equal(t, []RoomSlots{
		{Room: "HL-2F-Conf Hall", TimeSlots: []string{"10:00 - 12:00", "13:30 - 15:30"}},
	}, rooms)

	_, err = v.ListRoomsWithSlots("Hoà Lạc", "3")
	assert.ErrorIs(t, err, ErrUnknownFloor)
}

func TestValidator_ValidateBooking(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		name    string
		intent  domain.BookingIntent
		wantErr error
	}{
		{
			name:   "valid booking",
			intent: domain.BookingIntent{Location: "Hoà Lạc", Floor: "1", Room: "HL-1F-Room A", TimeSlot: "09:00 - 10:00"},
		},
		{
			name:   "valid booking carries user",
			intent: domain.BookingIntent{UserID: "ToanLM1", Location: "FPT Tower", Floor: "12", Room: "FPTT-12F-Room A", TimeSlot: "16:00 - 17:00"},
		},
		{
			name:    "room on another floor",
			intent:  domain.BookingIntent{Location: "Hoà Lạc", Floor: "2", Room: "HL-1F-Room A", TimeSlot: "09:00 - 10:00"},
			wantErr: ErrInvalidDetails,
		},
		{
			name:    "unknown location",
			intent:  domain.BookingIntent{Location: "Nowhere", Floor: "1", Room: "HL-1F-Room A", TimeSlot: "09:00 - 10:00"},
			wantErr: ErrInvalidDetails,
		},
		{
			name:    "floor of another location",
			intent:  domain.BookingIntent{Location: "Hoà Lạc", Floor: "10", Room: "FPTT-10F-Room 101", TimeSlot: "08:00 - 09:00"},
			wantErr: ErrInvalidDetails,
		},
		{
			name:    "slot of another room",
			intent:  domain.BookingIntent{Location: "Hoà Lạc", Floor: "1", Room: "HL-1F-Room A", TimeSlot: "09:30 - 10:30"},
			wantErr: ErrInvalidDetails,
		},
		{
			name:    "missing time slot",
			intent:  domain.BookingIntent{Location: "Hoà Lạc", Floor: "1", Room: "HL-1F-Room A"},
			wantErr: ErrMissingFields,
		},
		{
			name:    "missing fields win over invalid ones",
			intent:  domain.BookingIntent{Location: "Nowhere", Floor: "99", Room: "", TimeSlot: "never"},
			wantErr: ErrMissingFields,
		},
		{
			name:    "all fields empty",
			intent:  domain.BookingIntent{},
			wantErr: ErrMissingFields,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking, err := v.ValidateBooking(tt.intent)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, booking)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, &domain.ValidatedBooking{
				UserID:   tt.intent.UserID,
				Location: tt.intent.Location,
				Floor:    tt.intent.Floor,
				Room:     tt.intent.Room,
				TimeSlot: tt.intent.TimeSlot,
			}, booking)
		})
	}
}

func TestValidator_ValidateBooking_Idempotent(t *testing.T) {
	v := newTestValidator(t)
	intent := domain.BookingIntent{Location: "Duy Tân", Floor: "3", Room: "DT-3F-Room Alpha", TimeSlot: "14:00 - 16:00"}

	first, err := v.ValidateBooking(intent)
	require.NoError(t, err)
	second, err := v.ValidateBooking(intent)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	bad := domain.BookingIntent{Location: "Duy Tân", Floor: "4", Room: "DT-3F-Room Alpha", TimeSlot: "14:00 - 16:00"}
	_, err1 := v.ValidateBooking(bad)
	_, err2 := v.ValidateBooking(bad)
	assert.ErrorIs(t, err1, ErrInvalidDetails)
	assert.ErrorIs(t, err2, ErrInvalidDetails)
}

func TestValidator_CheckAssignment(t *testing.T) {
	v := newTestValidator(t)
	intent := domain.BookingIntent{UserID: "admin456", Location: "Hoà Lạc", Floor: "1", Room: "HL-1F-Room B", TimeSlot: "11:00 - 12:00"}

	assert.NoError(t, v.CheckAssignment(intent, &domain.UserAssignment{UserID: "admin456", Location: "Hoà Lạc", Floor: "1"}))
	assert.ErrorIs(t, v.CheckAssignment(intent, &domain.UserAssignment{UserID: "AnNH8", Location: "Hoà Lạc", Floor: "2"}), ErrInvalidDetails)
	assert.ErrorIs(t, v.CheckAssignment(intent, nil), ErrInvalidDetails)
}
