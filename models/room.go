package models

import "fmt"

// Room identifies one of the fixed set of bookable rooms.
type Room string

const (
	RoomDance Room = "dance"
	RoomSRC   Room = "src"
	RoomMusic Room = "music"
)

// Valid reports whether r is one of the known rooms.
func (r Room) Valid() bool {
	switch r {
	case RoomDance, RoomSRC, RoomMusic:
		return true
	}
	return false
}

// ParseRoom converts a raw string into a Room, rejecting unknown values.
func ParseRoom(s string) (Room, error) {
	r := Room(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown room %q", s)
	}
	return r, nil
}

// RoomDetails describes a room for the catalogue endpoint.
type RoomDetails struct {
	ID          Room   `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description" json:"description"`
	Image       string `bson:"image" json:"image"`
}

// RoomCatalogue is the fixed set of rooms offered for booking.
var RoomCatalogue = []RoomDetails{
	{
		ID:          RoomDance,
		Name:        "Dance Room",
		Description: "A spacious studio with hardwood floors, mirrors, and professional sound system. Perfect for dance rehearsals, choreography sessions, and group performances.",
		Image:       "/dance-room.jpg",
	},
	{
		ID:          RoomSRC,
		Name:        "SRC Room",
		Description: "Multi-purpose space with flexible setup options. Suitable for meetings, workshops, presentations, and collaborative sessions.",
		Image:       "/src-room.jpg",
	},
	{
		ID:          RoomMusic,
		Name:        "Music Room",
		Description: "Acoustically treated room with professional audio equipment. Ideal for music practice, recording sessions, and band rehearsals.",
		Image:       "/music-room.jpg",
	},
}
