package response

import (
	"loyalty-wallet/internal/usecase"
)

type PassResponse struct {
	Platform string `json:"platform"`
	Type     string `json:"type,omitempty"`
	Data     string `json:"data,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
	FileName string `json:"fileName,omitempty"`
	URL      string `json:"url,omitempty"`
}

func FromPassResult(r *usecase.PassResult) *PassResponse {
	return &PassResponse{
		Platform: r.Platform.String(),
		Type:     r.Type,
		Data:     r.Data,
		MimeType: r.MimeType,
		FileName: r.FileName,
		URL:      r.URL,
	}
}
