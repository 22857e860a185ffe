package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"daily_pilot/model"
	"daily_pilot/pkg/timeutil"

	"github.com/pkg/errors"
)

// PlanDocument 一次运行生成的计划文档内容
type PlanDocument struct {
	PlanDay     time.Time
	PlanItems   []string
	Tasks       []model.PlanTask
	DailyAdvice string
}

// Filename 文档名按计划日命名
func (d *PlanDocument) Filename() string {
	return fmt.Sprintf("plan_%s.md", timeutil.FormatDay(d.PlanDay))
}

// Render 渲染 Markdown 文本
func (d *PlanDocument) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Plan for %s\n\n", timeutil.FormatDay(d.PlanDay))

	b.WriteString("## AI Plan\n\n")
	if len(d.PlanItems) > 0 {
		for _, item := range d.PlanItems {
			fmt.Fprintf(&b, "- %s\n", item)
		}
	} else {
		b.WriteString("No explicit plan from AI.\n")
	}
	b.WriteString("\n")

	b.WriteString("## Tasks\n\n")
	if len(d.Tasks) == 0 {
		b.WriteString("No tasks found for this day.\n")
	} else {
		for i, t := range d.Tasks {
			fmt.Fprintf(&b, "%d. **%s [%s] — %d min**\n", i+1, t.Name, t.Type, t.PlannedMin)
			if t.Comment != "" {
				fmt.Fprintf(&b, "   AI comment: %s\n", t.Comment)
			}
			if t.Advice != "" {
				fmt.Fprintf(&b, "   Advice: %s\n", t.Advice)
			}
		}
	}

	if d.DailyAdvice != "" {
		b.WriteString("\n## Daily Advice\n\n")
		fmt.Fprintf(&b, "%s\n", d.DailyAdvice)
	}

	return b.String()
}

// Write 落盘到 dir，返回生成文件的路径
func (d *PlanDocument) Write(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}

	path := filepath.Join(dir, d.Filename())
	if err := os.WriteFile(path, []byte(d.Render()), 0o644); err != nil {
		return "", errors.Wrapf(err, "write plan document %s", path)
	}
	return path, nil
}
