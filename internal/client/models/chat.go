package models

// Role of a chat message author.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type ChatSession struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	StartedAt    string `json:"started_at"`
	UpdatedAt    string `json:"updated_at"`
	IsActive     bool   `json:"is_active"`
	MessageCount int    `json:"message_count"`
}

type ChatMessage struct {
	ID        int64          `json:"id"`
	Content   string         `json:"content"`
	Role      Role           `json:"role"`
	CreatedAt string         `json:"created_at"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

type SessionWithMessages struct {
	ChatSession
	Messages []ChatMessage `json:"messages"`
}

type CreateSessionResponse struct {
	ID             int64       `json:"id"`
	Name           string      `json:"name"`
	StartedAt      string      `json:"started_at"`
	UpdatedAt      string      `json:"updated_at"`
	IsActive       bool        `json:"is_active"`
	WelcomeMessage ChatMessage `json:"welcome_message"`
}

type MessageExchange struct {
	UserMessage ChatMessage `json:"user_message"`
	AIMessage   ChatMessage `json:"ai_message"`
}

// SessionUpdate renames or closes a session; nil fields are not sent.
type SessionUpdate struct {
	Name     *string `json:"name,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

type DirectQueryResponse struct {
	Response string         `json:"response"`
	Metadata map[string]any `json:"metadata,omitempty"`
}
