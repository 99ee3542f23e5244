package request

import (
	"time"

	"shareit/internal/usecase/commands"
)

// CreateBookingRequest refuses an inverted or empty interval at binding time;
// the domain validator repeats the check for callers that skip the HTTP layer.
type CreateBookingRequest struct {
	ItemID int64      `json:"itemId" binding:"required,min=1"`
	Start  *time.Time `json:"start" binding:"required"`
	End    *time.Time `json:"end" binding:"required,gtfield=Start"`
}

func (r *CreateBookingRequest) ToInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		ItemID: r.ItemID,
		Start:  r.Start.UTC(),
		End:    r.End.UTC(),
	}
}

type ListBookingsQuery struct {
	State string `form:"state"`
	From  *int   `form:"from"`
	Size  *int   `form:"size"`
}

type DecideBookingQuery struct {
	Approved *bool `form:"approved" binding:"required"`
}
