package notionimplement

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"daily_pilot/pkg/clients/httptool"

	"github.com/pkg/errors"
)

const (
	clientNameNotion = "notion"

	headerNotionVersion = "Notion-Version"

	defaultTimeout = 30 * time.Second
)

// Client Notion REST API 客户端，三个库（任务/策略/日志）共用一个实例
type Client struct {
	hc *httptool.HTTPClient
}

// NewClient 创建 Notion 客户端
func NewClient(baseURL, apiKey, notionVersion string) *Client {
	hc := httptool.NewHTTPClient(baseURL, clientNameNotion, defaultTimeout, nil, nil)
	hc.SetHeader(httptool.HeaderAuthorization, "Bearer "+apiKey)
	hc.SetHeader(headerNotionVersion, notionVersion)
	hc.SetHeader(httptool.HeaderContentType, httptool.HeaderContentTypeJSON)
	return &Client{hc: hc}
}

type queryRequest struct {
	Filter *filter `json:"filter,omitempty"`
}

type queryResponse struct {
	Results []page `json:"results"`
}

type createPageRequest struct {
	Parent     pageParent `json:"parent"`
	Properties properties `json:"properties"`
	Children   []block    `json:"children,omitempty"`
}

type pageParent struct {
	DatabaseID string `json:"database_id"`
}

type updatePageRequest struct {
	Properties properties `json:"properties"`
}

// QueryDatabase 按过滤条件查询数据库，filter 为 nil 时查全部
func (c *Client) QueryDatabase(ctx context.Context, dbID string, f *filter) ([]page, error) {
	url := fmt.Sprintf("/v1/databases/%s/query", dbID)

	body, err := c.hc.PostJSONWithContext(ctx, url, &queryRequest{Filter: f})
	if err != nil {
		return nil, errors.Wrap(err, "notion query database")
	}

	var resp queryResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.Wrap(err, "notion decode query response")
	}
	return resp.Results, nil
}

// CreatePage 在数据库里创建页面，children 可选，返回新页面 id
func (c *Client) CreatePage(ctx context.Context, dbID string, props properties, children []block) (string, error) {
	req := &createPageRequest{
		Parent:     pageParent{DatabaseID: dbID},
		Properties: props,
		Children:   children,
	}

	body, err := c.hc.PostJSONWithContext(ctx, "/v1/pages", req)
	if err != nil {
		return "", errors.Wrap(err, "notion create page")
	}

	var created page
	if err := json.Unmarshal(body, &created); err != nil {
		return "", errors.Wrap(err, "notion decode create response")
	}
	return created.ID, nil
}

// UpdatePage 更新页面属性
func (c *Client) UpdatePage(ctx context.Context, pageID string, props properties) error {
	url := fmt.Sprintf("/v1/pages/%s", pageID)

	if _, err := c.hc.PatchJSONWithContext(ctx, url, &updatePageRequest{Properties: props}); err != nil {
		return errors.Wrap(err, "notion update page")
	}
	return nil
}
