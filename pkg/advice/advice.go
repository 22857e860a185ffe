package advice

import (
	"math/rand"
	"strings"
	"unicode/utf8"

	"daily_pilot/constant"
	"daily_pilot/pkg/file"
	"daily_pilot/pkg/str"

	log "github.com/sirupsen/logrus"
)

// LoadLines 读取笔记文件，按行清洗并按长度过滤。
// 文件未配置或不存在时返回空列表，不算错误。
func LoadLines(path string) []string {
	if path == "" || !file.CheckFileIsExist(path) {
		return nil
	}

	content, err := file.GetContent(path)
	if err != nil {
		log.Warnf("failed to read advice file %s: %v", path, err)
		return nil
	}

	var lines []string
	for _, raw := range strings.Split(content, "\n") {
		line := str.CleanText(raw)
		if !lengthOK(line) {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func lengthOK(line string) bool {
	n := utf8.RuneCountInString(line)
	return n >= constant.AdviceLineMinLen && n <= constant.AdviceLineMaxLen
}

// Pick 随机取一条建议，列表为空时返回空串
func Pick(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return lines[rand.Intn(len(lines))]
}
