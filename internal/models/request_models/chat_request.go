package request_models

type ChatMessageRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
	UserName  string `json:"user_name,omitempty"`
}

type ChatOptionRequest struct {
	SessionID string `json:"session_id"`
	Option    string `json:"option"`
}
