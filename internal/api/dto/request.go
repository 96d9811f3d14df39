package dto

// CreateRequest is the body for registering a notification request.
type CreateRequest struct {
	To      string `json:"to" validate:"required"`
	Message string `json:"message" validate:"required"`
	Type    string `json:"type" validate:"required,oneof=email sms push"`
}

// CreateResponse is returned after a request has been registered.
type CreateResponse struct {
	ID string `json:"id"`
}

// StatusResponse reports the current lifecycle status of a request.
type StatusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
