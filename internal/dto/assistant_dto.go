package dto

type SendChatRequest struct {
	SessionId string `json:"session_id" validate:"required"`
	Message   string `json:"message" validate:"required"`
}

type SendChatResponse struct {
	SessionId string `json:"session_id"`
	Reply     string `json:"reply"`
	Mode      string `json:"mode,omitempty"` // "profile" | "knowledge"
	Finished  bool   `json:"finished"`
}

type CleanupSessionRequest struct {
	SessionId string `json:"session_id" validate:"required"`
}
