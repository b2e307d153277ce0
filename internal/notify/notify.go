// Package notify announces finished exports to the operations channel.
package notify

import (
	"context"
	"fmt"
	"os"

	"github.com/slack-go/slack"

	"github.com/amby-app/feedsync/pkg/errors"
)

// Notifier delivers an export file to whoever acts on it.
type Notifier interface {
	// SendFile uploads the file at path, attributed to the named partner.
	SendFile(ctx context.Context, path, partner string) error
}

// Slack posts export files into a Slack channel.
type Slack struct {
	client  *slack.Client
	channel string
}

// NewSlack creates a notifier posting into the given channel.
func NewSlack(token, channel string) *Slack {
	return &Slack{
		client:  slack.New(token),
		channel: channel,
	}
}

// SendFile uploads the export file with a reminder to refresh the feed.
func (s *Slack) SendFile(ctx context.Context, path, partner string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.WrapIO("stat", path, err)
	}

	_, err = s.client.UploadFileV2Context(ctx, slack.UploadFileV2Parameters{
		Channel:        s.channel,
		File:           path,
		Filename:       "export.csv",
		FileSize:       int(info.Size()),
		InitialComment: fmt.Sprintf("🚨 Пожалуйста, обновите фид *%s*", partner),
	})
	if err != nil {
		return errors.WrapResource("send", "export file", partner, err)
	}

	return nil
}
