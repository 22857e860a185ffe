package str

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringToInt(t *testing.T) {
	i, err := StringToInt("")
	assert.NoError(t, err)
	assert.Equal(t, 0, i)

	i, err = StringToInt("42")
	assert.NoError(t, err)
	assert.Equal(t, 42, i)

	_, err = StringToInt("abc")
	assert.Error(t, err)
}

func TestCleanText(t *testing.T) {
	// 空输入
	assert.Equal(t, "", CleanText(""))

	// 控制字符被去掉，\r 变空格
	assert.Equal(t, "a b", CleanText("a\rb"))
	assert.Equal(t, "ab", CleanText("a\x00\x1fb"))

	// 换行也属于控制字符，清洗后是单行
	assert.Equal(t, "onetwo", CleanText("one\ntwo"))
	assert.Equal(t, "onetwo", CleanText("one\n\n\n\n\ntwo"))

	// 首尾空白去掉
	assert.Equal(t, "hello", CleanText("   hello \t"))

	// 非 ASCII 文本保留
	assert.Equal(t, "день прошёл хорошо", CleanText(" день прошёл хорошо\n"))
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "x", FirstNonEmpty("fb", "", "x", "y"))
	assert.Equal(t, "fb", FirstNonEmpty("fb", "", ""))
}
