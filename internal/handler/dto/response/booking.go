package response

import "helperhub/internal/usecase/readmodel"

type BookingResponse struct {
	Booking *readmodel.BookingRM `json:"booking"`
}

type BookingListResponse struct {
	Bookings []*readmodel.BookingRM `json:"bookings"`
	Count    int                    `json:"count"`
}

func FromBookingViews(views []*readmodel.BookingRM) BookingListResponse {
	if views == nil {
		views = []*readmodel.BookingRM{}
	}
	return BookingListResponse{Bookings: views, Count: len(views)}
}
