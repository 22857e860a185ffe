package str

import (
	"strconv"
	"strings"
)

// 字符串转int
func StringToInt(str string) (int, error) {
	if str == "" {
		return 0, nil
	}

	i, err := strconv.Atoi(str)
	if err != nil {
		return 0, err
	}

	return i, err
}

// CleanText 清洗模型输出和笔记行：
// \r 换成空格，连续空行压成一行，去掉剩余的控制字符，最后去首尾空白。
// 清洗后是单行文本，换行也会被去掉。
func CleanText(txt string) string {
	if txt == "" {
		return ""
	}

	txt = strings.ReplaceAll(txt, "\r", " ")
	for strings.Contains(txt, "\n\n\n") {
		txt = strings.ReplaceAll(txt, "\n\n\n", "\n")
	}

	var b strings.Builder
	b.Grow(len(txt))
	for _, r := range txt {
		if r < 0x20 || r == 0x7f {
			continue
		}
		b.WriteRune(r)
	}

	return strings.TrimSpace(b.String())
}

// FirstNonEmpty 返回第一个非空字符串，全空则返回 fallback
func FirstNonEmpty(fallback string, values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return fallback
}
