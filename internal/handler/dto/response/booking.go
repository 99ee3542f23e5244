package response

import (
	"time"

	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ItemResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type BookerResponse struct {
	ID int64 `json:"id"`
}

type BookingResponse struct {
	ID     int64          `json:"id"`
	Start  time.Time      `json:"start"`
	End    time.Time      `json:"end"`
	Status string         `json:"status"`
	Item   ItemResponse   `json:"item"`
	Booker BookerResponse `json:"booker"`
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	var res BookingResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, errs.Wrap(err, "failed to map booking view")
	}
	res.Start = res.Start.UTC()
	res.End = res.End.UTC()
	return &res, nil
}

func FromBookingViews(views []*queries.BookingView) ([]*BookingResponse, error) {
	res := make([]*BookingResponse, 0, len(views))
	for _, v := range views {
		r, err := FromBookingView(v)
		if err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, nil
}
