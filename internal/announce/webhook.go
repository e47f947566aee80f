package announce

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// WebhookSender posts embeds through a Discord channel webhook
type WebhookSender struct {
	session *discordgo.Session
	id      string
	token   string
}

// NewWebhookSender parses a webhook URL of the form https://discord.com/api/webhooks/{id}/{token}
func NewWebhookSender(webhookURL string) (*WebhookSender, error) {
	id, token, err := ParseWebhookURL(webhookURL)
	if err != nil {
		return nil, err
	}

	// Webhook execution needs no bot token
	session, err := discordgo.New("")
	if err != nil {
		return nil, err
	}

	return &WebhookSender{session: session, id: id, token: token}, nil
}

// Send executes the webhook with a single embed
func (s *WebhookSender) Send(ctx context.Context, embed *discordgo.MessageEmbed) error {
	_, err := s.session.WebhookExecute(s.id, s.token, false, &discordgo.WebhookParams{
		Username: WebhookUsername,
		Embeds:   []*discordgo.MessageEmbed{embed},
	}, discordgo.WithContext(ctx))
	return err
}

// ParseWebhookURL extracts the webhook id and token
func ParseWebhookURL(raw string) (id, token string, err error) {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", "", fmt.Errorf("%s: %q", ErrMsgInvalidWebhookURL, raw)
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i := 0; i+2 < len(parts); i++ {
		if parts[i] == "webhooks" && parts[i+1] != "" && parts[i+2] != "" {
			return parts[i+1], parts[i+2], nil
		}
	}
	return "", "", fmt.Errorf("%s: %q", ErrMsgInvalidWebhookURL, raw)
}
