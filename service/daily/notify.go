package daily

import (
	"context"
	"fmt"
	"strings"
	"time"

	"daily_pilot/model"
	"daily_pilot/pkg/timeutil"
)

// BuildTasksMessage 拼计划日的任务消息（Telegram Markdown，Discord 也直接复用）
func BuildTasksMessage(planDay time.Time, tasks []model.PlanTask, dailyAdvice string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*Task plan for %s:*\n", timeutil.FormatDay(planDay))

	if len(tasks) == 0 {
		fmt.Fprintf(&b, "No tasks found for %s.\n", timeutil.FormatDay(planDay))
	} else {
		for _, t := range tasks {
			fmt.Fprintf(&b, "- *%s* [%s] — %d min\n", t.Name, t.Type, t.PlannedMin)
			if t.Comment != "" {
				fmt.Fprintf(&b, "    _%s_\n", t.Comment)
			}
		}
	}

	if dailyAdvice != "" {
		fmt.Fprintf(&b, "\n*Advice of the day:* %s\n", dailyAdvice)
	}

	return b.String()
}

// notifyMessage 把消息投递到全部已配置渠道。
// 通知是尽力而为：单渠道失败只记日志，不影响运行结果。
func (s *Service) notifyMessage(ctx context.Context, text string) {
	if s.telegram.Enabled() {
		if err := s.telegram.SendMessage(ctx, text); err != nil {
			s.logger.Errorf("telegram message failed: %v", err)
		}
	} else {
		s.logger.Info("telegram is not configured, skip message")
	}

	if s.discord.Enabled() {
		if err := s.discord.SendMessage(ctx, text); err != nil {
			s.logger.Errorf("discord message failed: %v", err)
		}
	} else {
		s.logger.Info("discord is not configured, skip message")
	}
}

// notifyDocument 把计划文档投递到全部已配置渠道，同样尽力而为
func (s *Service) notifyDocument(ctx context.Context, filePath, caption string) {
	if s.telegram.Enabled() {
		if err := s.telegram.SendDocument(ctx, filePath, caption); err != nil {
			s.logger.Errorf("telegram document failed: %v", err)
		}
	}

	if s.discord.Enabled() {
		if err := s.discord.SendFile(ctx, filePath, caption); err != nil {
			s.logger.Errorf("discord file failed: %v", err)
		}
	}
}
