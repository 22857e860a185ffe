package model

import (
	"fmt"
	"regexp"

	log "github.com/sirupsen/logrus"
)

const (
	ErrorParams         = 100010
	ErrorEmptyID        = 100011
	ErrorNotionQuery    = 100020
	ErrorNotionCreate   = 100021
	ErrorNotionUpdate   = 100022
	ErrorNotionDBUnset  = 100023
	ErrorLLMRequest     = 100030
	ErrorLLMEmptyReply  = 100031
	ErrorConfigMissing  = 100040
	ErrorDocumentWrite  = 100050
	ErrorNotifySend     = 100051
	ErrorAdviceFileRead = 100052
)

var ErrorMessages = map[int]string{
	ErrorParams:         "参数错误",
	ErrorEmptyID:        "id 为空",
	ErrorNotionQuery:    "查询 Notion 数据库失败",
	ErrorNotionCreate:   "创建 Notion 页面失败",
	ErrorNotionUpdate:   "更新 Notion 页面失败",
	ErrorNotionDBUnset:  "Notion 数据库 id 未配置",
	ErrorLLMRequest:     "大模型调用失败",
	ErrorLLMEmptyReply:  "大模型返回为空",
	ErrorConfigMissing:  "缺少必要配置",
	ErrorDocumentWrite:  "生成计划文档失败",
	ErrorNotifySend:     "通知发送失败",
	ErrorAdviceFileRead: "读取建议文件失败",
}

type Error struct {
	Code       int    `json:"code"`
	Message    string `json:"message"`
	InnerError error  `json:"inner_error"`
}

func (err Error) Error() string {
	return err.Message
}

func (err Error) String() string {
	return err.InnerError.Error()
}

func NewError(code int, innerError error) *Error {
	if innerError != nil {
		var re = regexp.MustCompile(`[\n\t]+`)
		innerErrorString := re.ReplaceAllString(fmt.Sprintf("%+v", innerError), " ")
		log.Errorf("NewError code:%d, message:%s, innerError:%+v\n", code, ErrorMessages[code], innerErrorString)
	}
	return &Error{
		Code:       code,
		Message:    ErrorMessages[code],
		InnerError: innerError,
	}
}

func NewErrorWithMessage(code int, message string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		InnerError: nil,
	}
}
