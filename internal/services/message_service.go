package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Azhar512/tassiecar/internal/models"
)

type MessageService struct {
	repo models.MessageRepo
}

func NewMessageService(repo models.MessageRepo) *MessageService {
	return &MessageService{repo: repo}
}

func (ms *MessageService) List(ctx context.Context) ([]models.Message, error) {
	return ms.repo.ListMessages(ctx)
}

// Send records a contact-form or support-widget submission.
func (ms *MessageService) Send(ctx context.Context, msg models.NewMessage) (*models.Message, error) {
	if err := models.Validate.Struct(msg); err != nil {
		return nil, fmt.Errorf("invalid message data: %v", err)
	}
	return ms.repo.CreateMessage(ctx, msg)
}

// Reply sets or overwrites the admin reply on a message. Deleting
// messages is intentionally unsupported.
func (ms *MessageService) Reply(ctx context.Context, id, reply string) (*models.Message, error) {
	if id == "" {
		return nil, fmt.Errorf("message ID is required")
	}
	if strings.TrimSpace(reply) == "" {
		return nil, fmt.Errorf("reply text is required")
	}
	return ms.repo.ReplyToMessage(ctx, id, reply)
}
