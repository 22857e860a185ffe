package discord

import (
	"context"
	"time"

	"daily_pilot/pkg/clients/httptool"

	"github.com/pkg/errors"
)

const (
	clientNameDiscord = "discord"

	messageTimeout = 15 * time.Second
	fileTimeout    = 30 * time.Second
)

// Client Discord incoming webhook 客户端。webhook URL 本身就是完整地址。
type Client struct {
	webhookURL string

	msgClient  *httptool.HTTPClient
	fileClient *httptool.HTTPClient
}

type webhookMessage struct {
	Content string `json:"content"`
}

// NewClient 创建 Discord 客户端，webhookURL 为空时处于未配置状态
func NewClient(webhookURL string) *Client {
	return &Client{
		webhookURL: webhookURL,
		msgClient:  httptool.NewHTTPClient(webhookURL, clientNameDiscord, messageTimeout, nil, nil),
		fileClient: httptool.NewHTTPClient(webhookURL, clientNameDiscord, fileTimeout, nil, nil),
	}
}

// Enabled webhook 是否已配置
func (c *Client) Enabled() bool {
	return c.webhookURL != ""
}

// SendMessage 发送文本消息
func (c *Client) SendMessage(ctx context.Context, content string) error {
	if !c.Enabled() {
		return errors.New("discord client is not configured")
	}

	if _, err := c.msgClient.PostJSONWithContext(ctx, "", &webhookMessage{Content: content}); err != nil {
		return errors.Wrap(err, "discord message")
	}
	return nil
}

// SendFile 发送文件，content 为空时不带正文
func (c *Client) SendFile(ctx context.Context, filePath, content string) error {
	if !c.Enabled() {
		return errors.New("discord client is not configured")
	}

	fields := map[string]string{}
	if content != "" {
		fields["content"] = content
	}

	if _, err := c.fileClient.PostFileWithContext(ctx, "", "file", filePath, fields); err != nil {
		return errors.Wrap(err, "discord file")
	}
	return nil
}
