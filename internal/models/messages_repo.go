package models

import (
	"context"
	"fmt"

	"github.com/supabase-community/postgrest-go"
)

func (su *SupabaseRepo) ListMessages(ctx context.Context) ([]Message, error) {
	data, _, err := su.client.
		From(MessagesTable).
		Select("*", "", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %v", err)
	}

	rows, err := decodeRows[messageRow](data)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal messages: %v", err)
	}

	messages := make([]Message, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, row.toMessage())
	}
	return messages, nil
}

func (su *SupabaseRepo) CreateMessage(ctx context.Context, msg NewMessage) (*Message, error) {
	data, _, err := su.client.
		From(MessagesTable).
		Insert(newMessageRow(msg), false, "", "representation", "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to create message from %s: %v", msg.Email, err)
	}

	rows, err := decodeRows[messageRow](data)
	if err != nil || len(rows) == 0 {
		return nil, fmt.Errorf("no message returned after create from %s: %v", msg.Email, err)
	}
	message := rows[0].toMessage()
	return &message, nil
}

// ReplyToMessage sets or overwrites the reply text. A repeated reply
// replaces the previous one; messages themselves are never deleted.
func (su *SupabaseRepo) ReplyToMessage(ctx context.Context, id string, reply string) (*Message, error) {
	data, _, err := su.client.
		From(MessagesTable).
		Update(map[string]interface{}{"reply": reply}, "representation", "").
		Eq("id", id).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to reply to message %s: %v", id, err)
	}

	rows, err := decodeRows[messageRow](data)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal replied message %s: %v", id, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no message found to reply to: %s", id)
	}
	message := rows[0].toMessage()
	return &message, nil
}
