package request

type ScanRequest struct {
	Code string `json:"code" binding:"required,max=256"`
}

type AddStampsRequest struct {
	Code  string `json:"code" binding:"required,max=256"`
	Count int    `json:"count" binding:"required,min=1,max=100"`
}
