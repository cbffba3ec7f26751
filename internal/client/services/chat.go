package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/agroassist/internal/client/api"
	"github.com/dmitrijs2005/agroassist/internal/client/models"
)

// DefaultSessionLimit is used by ListSessions when limit is zero.
const DefaultSessionLimit = 10

type ChatService interface {
	CreateSession(ctx context.Context, name string) (*models.CreateSessionResponse, error)
	ListSessions(ctx context.Context, activeOnly bool, limit int) ([]models.ChatSession, error)
	GetSession(ctx context.Context, id int64, includeMetadata bool) (*models.SessionWithMessages, error)
	UpdateSession(ctx context.Context, id int64, update models.SessionUpdate) (*models.ChatSession, error)
	DeleteSession(ctx context.Context, id int64) (*models.MessageResponse, error)
	SendMessage(ctx context.Context, id int64, content string) (*models.MessageExchange, error)
	// DirectQuery asks the assistant without a session; it is available to
	// guests.
	DirectQuery(ctx context.Context, content string) (*models.DirectQueryResponse, error)
}

type chatService struct {
	api Requester
}

func NewChatService(r Requester) ChatService {
	return &chatService{api: r}
}

type contentBody struct {
	Content string `json:"content"`
}

func sessionPath(id int64) string {
	return fmt.Sprintf("/chat/sessions/%d", id)
}

func (c *chatService) CreateSession(ctx context.Context, name string) (*models.CreateSessionResponse, error) {
	body := struct {
		Name string `json:"name,omitempty"`
	}{Name: name}

	var resp models.CreateSessionResponse
	if err := c.api.Post(ctx, "/chat/sessions", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *chatService) ListSessions(ctx context.Context, activeOnly bool, limit int) ([]models.ChatSession, error) {
	if limit == 0 {
		limit = DefaultSessionLimit
	}
	q := api.NewQuery()
	if activeOnly {
		q.Add("active", "true")
	}
	q.Int("limit", limit)

	var resp []models.ChatSession
	if err := c.api.Get(ctx, q.Path("/chat/sessions"), &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *chatService) GetSession(ctx context.Context, id int64, includeMetadata bool) (*models.SessionWithMessages, error) {
	q := api.NewQuery()
	if includeMetadata {
		q.Add("include_metadata", "true")
	}

	var resp models.SessionWithMessages
	if err := c.api.Get(ctx, q.Path(sessionPath(id)), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *chatService) UpdateSession(ctx context.Context, id int64, update models.SessionUpdate) (*models.ChatSession, error) {
	var resp models.ChatSession
	if err := c.api.Put(ctx, sessionPath(id), update, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *chatService) DeleteSession(ctx context.Context, id int64) (*models.MessageResponse, error) {
	var resp models.MessageResponse
	if err := c.api.Delete(ctx, sessionPath(id), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *chatService) SendMessage(ctx context.Context, id int64, content string) (*models.MessageExchange, error) {
	var resp models.MessageExchange
	if err := c.api.Post(ctx, sessionPath(id)+"/messages", contentBody{Content: content}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *chatService) DirectQuery(ctx context.Context, content string) (*models.DirectQueryResponse, error) {
	var resp models.DirectQueryResponse
	if err := c.api.Post(ctx, "/chat/query", contentBody{Content: content}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
