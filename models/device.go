package models

// DeviceTokenRequest is the body of the instanceId endpoints.
type DeviceTokenRequest struct {
	InstanceID string `json:"instanceId"`
}

// StatusResponse is the acknowledgement returned by endpoints that have no
// payload of their own.
type StatusResponse struct {
	Status string `json:"status"`
}
