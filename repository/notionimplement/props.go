package notionimplement

import (
	"time"

	"daily_pilot/pkg/timeutil"
)

// Notion 页面属性的编解码。
// 读取方向全部做安全兜底：缺失的 select/number/checkbox 取 ""/0/false，
// title/rich_text 取第一个片段。

type page struct {
	ID         string     `json:"id"`
	Properties properties `json:"properties"`
}

type properties map[string]propertyValue

type propertyValue struct {
	Title    []richTextFragment `json:"title,omitempty"`
	RichText []richTextFragment `json:"rich_text,omitempty"`
	Select   *selectValue       `json:"select,omitempty"`
	Date     *dateValue         `json:"date,omitempty"`
	Number   *float64           `json:"number,omitempty"`
	Checkbox *bool              `json:"checkbox,omitempty"`
}

type richTextFragment struct {
	Type      string     `json:"type,omitempty"`
	Text      *textValue `json:"text,omitempty"`
	PlainText string     `json:"plain_text,omitempty"`
}

type textValue struct {
	Content string `json:"content"`
}

type selectValue struct {
	Name string `json:"name"`
}

type dateValue struct {
	Start string `json:"start"`
}

// ========== 查询过滤条件 ==========

// filter 查询过滤条件：Date 等值、Name（title）等值，或两者 AND
type filter struct {
	And      []filter    `json:"and,omitempty"`
	Property string      `json:"property,omitempty"`
	Date     *dateEquals `json:"date,omitempty"`
	Title    *textEquals `json:"title,omitempty"`
}

type dateEquals struct {
	Equals string `json:"equals"`
}

type textEquals struct {
	Equals string `json:"equals"`
}

func dateEqualsFilter(property string, day time.Time) *filter {
	return &filter{
		Property: property,
		Date:     &dateEquals{Equals: timeutil.FormatDay(day)},
	}
}

func titleEqualsFilter(property, name string) *filter {
	return &filter{
		Property: property,
		Title:    &textEquals{Equals: name},
	}
}

func andFilter(filters ...*filter) *filter {
	and := make([]filter, 0, len(filters))
	for _, f := range filters {
		and = append(and, *f)
	}
	return &filter{And: and}
}

// ========== 写方向 ==========

func titleProp(content string) propertyValue {
	return propertyValue{Title: []richTextFragment{{Text: &textValue{Content: content}}}}
}

func richTextProp(content string) propertyValue {
	return propertyValue{RichText: []richTextFragment{{Text: &textValue{Content: content}}}}
}

func selectProp(name string) propertyValue {
	return propertyValue{Select: &selectValue{Name: name}}
}

func dateProp(day time.Time) propertyValue {
	return propertyValue{Date: &dateValue{Start: timeutil.FormatDay(day)}}
}

func numberProp(n int) propertyValue {
	f := float64(n)
	return propertyValue{Number: &f}
}

func checkboxProp(b bool) propertyValue {
	return propertyValue{Checkbox: &b}
}

// ========== 读方向 ==========

func (p properties) title(name string) string {
	return firstFragment(p[name].Title)
}

func (p properties) richText(name string) string {
	return firstFragment(p[name].RichText)
}

func firstFragment(fragments []richTextFragment) string {
	if len(fragments) == 0 {
		return ""
	}
	if fragments[0].PlainText != "" {
		return fragments[0].PlainText
	}
	if fragments[0].Text != nil {
		return fragments[0].Text.Content
	}
	return ""
}

func (p properties) selectName(name string) string {
	v := p[name].Select
	if v == nil {
		return ""
	}
	return v.Name
}

func (p properties) number(name string) int {
	v := p[name].Number
	if v == nil {
		return 0
	}
	return int(*v)
}

func (p properties) checkbox(name string) bool {
	v := p[name].Checkbox
	if v == nil {
		return false
	}
	return *v
}

func (p properties) day(name string) time.Time {
	v := p[name].Date
	if v == nil || v.Start == "" {
		return time.Time{}
	}

	start := v.Start
	// date 属性可能带时间部分，只取日期
	if len(start) > len(timeutil.TimeFormatCommonStyleDay) {
		start = start[:len(timeutil.TimeFormatCommonStyleDay)]
	}

	day, err := timeutil.ParseDay(start)
	if err != nil {
		return time.Time{}
	}
	return day
}

// ========== 正文块 ==========

type block struct {
	Object    string     `json:"object"`
	Type      string     `json:"type"`
	Paragraph *blockText `json:"paragraph,omitempty"`
	Heading3  *blockText `json:"heading_3,omitempty"`
}

type blockText struct {
	RichText []richTextFragment `json:"rich_text"`
}

func paragraphBlock(content string) block {
	return block{
		Object:    "block",
		Type:      "paragraph",
		Paragraph: &blockText{RichText: []richTextFragment{{Type: "text", Text: &textValue{Content: content}}}},
	}
}

func heading3Block(content string) block {
	return block{
		Object:   "block",
		Type:     "heading_3",
		Heading3: &blockText{RichText: []richTextFragment{{Type: "text", Text: &textValue{Content: content}}}},
	}
}
