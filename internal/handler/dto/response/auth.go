package response

import "helperhub/internal/usecase/readmodel"

type AuthResponse struct {
	Token   string               `json:"token"`
	Account *readmodel.AccountRM `json:"account"`
}
