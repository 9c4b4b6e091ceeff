package response

// Envelope is the wire format for every endpoint:
// {"success": bool, "message"?: string, "data"?: ...}.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// TokenData is the payload returned by a successful admin login.
type TokenData struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

func OKMessage(message string) Envelope {
	return Envelope{Success: true, Message: message}
}

func Created(message string, data any) Envelope {
	return Envelope{Success: true, Message: message, Data: data}
}

func Error(message string) Envelope {
	return Envelope{Success: false, Message: message}
}
