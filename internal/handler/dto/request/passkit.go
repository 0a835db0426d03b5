package request

type DeviceLogRequest struct {
	Logs []string `json:"logs"`
}
