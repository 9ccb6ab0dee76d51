package response

import "helperhub/internal/usecase/readmodel"

type HelperListResponse struct {
	Helpers []*readmodel.HelperPublicRM `json:"helpers"`
	Count   int                         `json:"count"`
}

func FromHelperViews(views []*readmodel.HelperPublicRM) HelperListResponse {
	if views == nil {
		views = []*readmodel.HelperPublicRM{}
	}
	return HelperListResponse{Helpers: views, Count: len(views)}
}
