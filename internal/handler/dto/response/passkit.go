package response

import "loyalty-wallet/internal/usecase/queries"

type UpdatedPassesResponse struct {
	LastUpdated   string   `json:"lastUpdated"`
	SerialNumbers []string `json:"serialNumbers"`
}

func FromUpdatedPasses(v *queries.UpdatedPassesView) *UpdatedPassesResponse {
	return &UpdatedPassesResponse{
		LastUpdated:   v.LastUpdated,
		SerialNumbers: v.SerialNumbers,
	}
}
