package queries

import (
	"time"
)

type ItemRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type UserRef struct {
	ID int64 `json:"id"`
}

// BookingView represents read-optimized booking data
type BookingView struct {
	ID      int64     `json:"id"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Status  string    `json:"status"`
	Item    ItemRef   `json:"item"`
	Booker  UserRef   `json:"booker"`
	OwnerID int64     `json:"-"`
}
