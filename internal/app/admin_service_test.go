package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/telebot.v3"
)

func TestAdminService_Broadcast(t *testing.T) {
	tests := []struct {
		name    string
		sender  int64
		message string
		wantErr error
		wantTxt string
	}{
		{name: "operator", sender: testAdminID, message: "🍒 Вишня поступила!", wantTxt: "📢 🍒 Вишня поступила!"},
		{name: "stranger", sender: testStrangerID, message: "spam", wantErr: ErrAdminNotAuthorized},
		{name: "blank", sender: testAdminID, message: "   ", wantErr: ErrEmptyBroadcast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &recordingClient{}
			s := NewAdminService(client, testAdminID, testChannelID, testBotLink)

			err := s.Broadcast(context.Background(), tt.sender, tt.message)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, client.sent)
				return
			}
			require.NoError(t, err)
			require.Len(t, client.sent, 1)
			assert.Equal(t, tt.wantTxt, client.sent[0].text)
			assert.Equal(t, telebot.ModeMarkdown, client.sent[0].options.ParseMode)
		})
	}
}

func TestAdminService_CanceledContext(t *testing.T) {
	client := &recordingClient{}
	s := NewAdminService(client, testAdminID, testChannelID, testBotLink)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.Broadcast(ctx, testAdminID, "hi"), context.Canceled)
	assert.ErrorIs(t, s.PublishPromo(ctx), context.Canceled)
	assert.Empty(t, client.sent)
}

func TestAdminService_PublishPromoSkipsIdentityCheck(t *testing.T) {
	client := &recordingClient{}
	s := NewAdminService(client, testAdminID, testChannelID, testBotLink)

	require.NoError(t, s.PublishPromo(context.Background()))
	require.Len(t, client.sent, 1)
	assert.Equal(t, testChannelID, client.sent[0].destination)
}
