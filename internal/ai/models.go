package ai

import "errors"

var (
	ErrEmptyResponse = errors.New("ai: empty response")
	ErrRateLimited   = errors.New("ai: rate limited")
	ErrInvalidPlan   = errors.New("ai: invalid route plan")
)

const (
	RoleUser  = "user"
	RoleModel = "model"
)

// ChatMessage is one prior turn of a conversation.
type ChatMessage struct {
	// Role is either "user" or "model". Anything else is treated as "user".
	Role string `json:"role"`
	Text string `json:"text"`
}
