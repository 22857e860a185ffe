package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sashabaranov/go-openai"
	log "github.com/sirupsen/logrus"
)

const (
	clientNameLLM = "llm"
)

// Client OpenAI 兼容接口的模型客户端。
// 每个用途（总结、点评）各建一个实例，温度和 token 上限跟着实例走。
type Client struct {
	config *Config
	client *openai.Client
}

// NewClient 创建新的LLM客户端
// 必须传入 baseURL, apiKey, modelName 三个参数
func NewClient(baseURL, apiKey, modelName string, opts ...Option) *Client {
	params := ClientParams{
		BaseURL:   baseURL,
		APIKey:    apiKey,
		ModelName: modelName,
	}
	return NewClientWithParams(params, opts...)
}

// NewClientWithParams 使用参数结构体创建新的LLM客户端
// params 包含必填的 BaseURL, APIKey, ModelName
func NewClientWithParams(params ClientParams, opts ...Option) *Client {
	config := DefaultConfig()
	config.BaseURL = params.BaseURL
	config.APIKey = params.APIKey
	config.ModelName = params.ModelName

	// 应用可选配置
	for _, opt := range opts {
		opt(config)
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	clientConfig.BaseURL = config.BaseURL

	return &Client{
		config: config,
		client: openai.NewClientWithConfig(clientConfig),
	}
}

// GetConfig 获取当前配置
func (c *Client) GetConfig() *Config {
	return c.config
}

// PostChatCompletionsNonStream 非流式调用，返回完整响应
func (c *Client) PostChatCompletionsNonStream(ctx context.Context, messages []openai.ChatCompletionMessage) (*openai.ChatCompletionResponse, error) {
	request := openai.ChatCompletionRequest{
		Model:       c.config.ModelName,
		Messages:    messages,
		MaxTokens:   c.config.MaxTokens,
		Temperature: c.config.Temperature,
		Stream:      false,
	}

	// debug 出完整的请求参数，json格式（仅在 debug 级别时序列化）
	if log.GetLevel() == log.DebugLevel {
		requestJson, err := json.MarshalIndent(request, "", "  ")
		if err != nil {
			log.Errorf("%s chat completion request json marshal error: %v", clientNameLLM, err)
			return nil, err
		}
		if _, err := fmt.Fprintf(os.Stdout, "[DEBUG] %s chat completion request:\n%s\n", clientNameLLM, string(requestJson)); err != nil {
			log.Warnf("%s failed to write debug output: %v", clientNameLLM, err)
		}
	}

	response, err := c.client.CreateChatCompletion(ctx, request)

	if err != nil {
		log.Errorf("%s chat completion error: %v", clientNameLLM, err)
		return nil, err
	}

	// debug 出完整的响应内容，json格式（仅在 debug 级别时序列化）
	if log.GetLevel() == log.DebugLevel {
		responseJson, err := json.MarshalIndent(response, "", "  ")
		if err != nil {
			log.Errorf("%s chat completion response json marshal error: %v", clientNameLLM, err)
		} else {
			if _, err := fmt.Fprintf(os.Stdout, "[DEBUG] %s chat completion response:\n%s\n", clientNameLLM, string(responseJson)); err != nil {
				log.Warnf("%s failed to write debug output: %v", clientNameLLM, err)
			}
		}
	}

	return &response, nil
}

// PostChatCompletionsNonStreamContent 非流式调用，只返回响应内容字符串
func (c *Client) PostChatCompletionsNonStreamContent(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error) {
	response, err := c.PostChatCompletionsNonStream(ctx, messages)
	if err != nil {
		return "", err
	}

	if response == nil {
		log.Errorf("%s chat completion response is nil", clientNameLLM)
		return "", fmt.Errorf("chat completion response is nil")
	}

	if len(response.Choices) == 0 {
		log.Errorf("%s chat completion response has no choices", clientNameLLM)
		return "", fmt.Errorf("chat completion response has no choices")
	}

	content := response.Choices[0].Message.Content
	if content == "" {
		log.Warnf("%s chat completion response content is empty", clientNameLLM)
	}

	return content, nil
}

// Chat 简单对话的便捷方法
func (c *Client) Chat(ctx context.Context, userMessage string) (string, error) {
	messages := []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleUser,
			Content: userMessage,
		},
	}
	return c.PostChatCompletionsNonStreamContent(ctx, messages)
}

// ChatWithSystemPrompt 使用系统提示词进行对话的便捷方法
func (c *Client) ChatWithSystemPrompt(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	messages := []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleSystem,
			Content: systemPrompt,
		},
		{
			Role:    openai.ChatMessageRoleUser,
			Content: userMessage,
		},
	}
	return c.PostChatCompletionsNonStreamContent(ctx, messages)
}
