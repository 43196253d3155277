package response

// ErrorBody is the shape of every failed response.
type ErrorBody struct {
	Detail string            `json:"detail"`
	Errors map[string]string `json:"errors,omitempty"`
}

type StatusBody struct {
	Message string `json:"message,omitempty"`
	Status  string `json:"status"`
}
