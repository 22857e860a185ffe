package advice

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAdviceFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadLinesLengthFilter(t *testing.T) {
	// 长度分别为 10、45、305、200 的行，只有 45 和 200 的留下
	lines := []string{
		strings.Repeat("a", 10),
		strings.Repeat("b", 45),
		strings.Repeat("c", 305),
		strings.Repeat("d", 200),
	}
	path := writeAdviceFile(t, strings.Join(lines, "\n"))

	got := LoadLines(path)
	require.Len(t, got, 2)
	assert.Equal(t, strings.Repeat("b", 45), got[0])
	assert.Equal(t, strings.Repeat("d", 200), got[1])
}

func TestLoadLinesCleansBeforeFiltering(t *testing.T) {
	// 清洗后不足 40 个字符的行被丢弃
	padded := "   " + strings.Repeat("x", 39) + "\r"
	kept := strings.Repeat("y", 40)
	path := writeAdviceFile(t, padded+"\n"+kept)

	got := LoadLines(path)
	require.Len(t, got, 1)
	assert.Equal(t, kept, got[0])
}

func TestLoadLinesCountsRunesNotBytes(t *testing.T) {
	// 40 个西里尔字符是 80 字节，按字符数应该通过过滤
	line := strings.Repeat("ж", 40)
	path := writeAdviceFile(t, line)

	got := LoadLines(path)
	require.Len(t, got, 1)
	assert.Equal(t, line, got[0])
}

func TestLoadLinesMissingFile(t *testing.T) {
	assert.Empty(t, LoadLines(""))
	assert.Empty(t, LoadLines(filepath.Join(t.TempDir(), "no_such_file.txt")))
}

func TestPick(t *testing.T) {
	assert.Equal(t, "", Pick(nil))
	assert.Equal(t, "only", Pick([]string{"only"}))

	lines := []string{"one", "two", "three"}
	for i := 0; i < 20; i++ {
		assert.Contains(t, lines, Pick(lines))
	}
}
