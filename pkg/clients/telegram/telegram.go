package telegram

import (
	"context"
	"fmt"
	"time"

	"daily_pilot/pkg/clients/httptool"

	"github.com/pkg/errors"
)

const (
	clientNameTelegram = "telegram"

	defaultBaseURL = "https://api.telegram.org"

	// 文本消息 15s，文件上传 30s
	messageTimeout  = 15 * time.Second
	documentTimeout = 30 * time.Second
)

// Client Telegram Bot API 客户端，按 bot token + chat id 投递
type Client struct {
	botToken string
	chatID   string

	msgClient  *httptool.HTTPClient
	fileClient *httptool.HTTPClient
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// NewClient 创建 Telegram 客户端。token 或 chatID 为空时客户端处于未配置状态，
// 调用方应通过 Enabled() 判断后跳过发送。
func NewClient(botToken, chatID string) *Client {
	return &Client{
		botToken:   botToken,
		chatID:     chatID,
		msgClient:  httptool.NewHTTPClient(defaultBaseURL, clientNameTelegram, messageTimeout, nil, nil),
		fileClient: httptool.NewHTTPClient(defaultBaseURL, clientNameTelegram, documentTimeout, nil, nil),
	}
}

// Enabled bot token 和 chat id 是否都已配置
func (c *Client) Enabled() bool {
	return c.botToken != "" && c.chatID != ""
}

// SendMessage 发送 Markdown 文本消息
func (c *Client) SendMessage(ctx context.Context, text string) error {
	if !c.Enabled() {
		return errors.New("telegram client is not configured")
	}

	payload := &sendMessageRequest{
		ChatID:    c.chatID,
		Text:      text,
		ParseMode: "Markdown",
	}

	url := fmt.Sprintf("/bot%s/sendMessage", c.botToken)
	if _, err := c.msgClient.PostJSONWithContext(ctx, url, payload); err != nil {
		return errors.Wrap(err, "telegram sendMessage")
	}
	return nil
}

// SendDocument 发送文件，caption 为空时不带说明
func (c *Client) SendDocument(ctx context.Context, filePath, caption string) error {
	if !c.Enabled() {
		return errors.New("telegram client is not configured")
	}

	fields := map[string]string{
		"chat_id": c.chatID,
	}
	if caption != "" {
		fields["caption"] = caption
	}

	url := fmt.Sprintf("/bot%s/sendDocument", c.botToken)
	if _, err := c.fileClient.PostFileWithContext(ctx, url, "document", filePath, fields); err != nil {
		return errors.Wrap(err, "telegram sendDocument")
	}
	return nil
}
