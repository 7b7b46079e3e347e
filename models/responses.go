package models

// Envelope is the uniform wire shape of every response the service sends,
// success or failure. Clients branch on Success/Status and the HTTP code,
// never on the payload shape.
type Envelope struct {
	// Success reports whether the request achieved its effect.
	Success bool `json:"success"`

	// Status is "success" or "error", mirroring Success for clients that
	// prefer string matching.
	Status string `json:"status"`

	// Result is a human-readable outcome message.
	Result string `json:"result"`

	// Data carries the endpoint-specific payload, if any.
	Data any `json:"data,omitempty"`
}

// Envelope status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// OK builds a success envelope with an optional payload.
func OK(result string, data any) Envelope {
	return Envelope{
		Success: true,
		Status:  StatusSuccess,
		Result:  result,
		Data:    data,
	}
}

// Err builds an error envelope. Error responses never carry partial data.
func Err(result string) Envelope {
	return Envelope{
		Success: false,
		Status:  StatusError,
		Result:  result,
	}
}

// CSRFData is the payload of GET /api/auth/csrf.
type CSRFData struct {
	CSRFToken string `json:"CsrfToken"`
}

// LoginData is the payload of a successful POST /api/auth/login.
type LoginData struct {
	// User is the safe column subset of the authenticated account.
	User User `json:"user"`

	// Access is the signed bearer token for subsequent requests.
	Access string `json:"access"`
}

// UserListData is the payload of GET /api/user/view.
type UserListData struct {
	Users  []User `json:"users"`
	Length int    `json:"length"`
}
