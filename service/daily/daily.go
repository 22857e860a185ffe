package daily

import (
	"context"

	"daily_pilot/config"
	"daily_pilot/entity"
	"daily_pilot/model"
	"daily_pilot/pkg/advice"
	"daily_pilot/pkg/clients/discord"
	"daily_pilot/pkg/clients/telegram"
	"daily_pilot/pkg/document"
	"daily_pilot/pkg/projectlog"
	"daily_pilot/pkg/timeutil"
	"daily_pilot/repository"
	"daily_pilot/repository/factory"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Service 每日作业服务。一次 Run 跑完整条流水线：
// 顺延昨天 -> 统计昨天 -> 模型总结 -> 落每日日志 -> 播种今天 -> 点评今天 -> 通知 -> 出文档。
type Service struct {
	tasks    repository.TaskRepository
	dailyLog repository.DailyLogRepository
	// strategy 为 nil 表示策略库未配置，快照降级为占位文案
	strategy repository.StrategyRepository

	coach    *Coach
	telegram *telegram.Client
	discord  *discord.Client
	resolver *timeutil.Resolver

	advicePath  string
	documentDir string

	runID  string
	logger *log.Entry
}

// NewService 创建每日作业服务。
// 任务库和日志库是硬依赖，未配置直接报错；策略库缺失只降级。
func NewService(repositoryFactory factory.Factory) (*Service, error) {
	cfg := config.GetInstance()

	tasks, err := repositoryFactory.NewTaskRepository()
	if err != nil {
		return nil, err
	}

	dailyLog, err := repositoryFactory.NewDailyLogRepository()
	if err != nil {
		return nil, err
	}

	strategy, err := repositoryFactory.NewStrategyRepository()
	if err != nil {
		log.Warnf("strategy repository unavailable, snapshot will degrade: %v", err)
		strategy = nil
	}

	runID := uuid.NewString()

	return &Service{
		tasks:       tasks,
		dailyLog:    dailyLog,
		strategy:    strategy,
		coach:       NewCoach(),
		telegram:    telegram.NewClient(cfg.GetString(config.TelegramBotToken), cfg.GetString(config.TelegramChatID)),
		discord:     discord.NewClient(cfg.GetString(config.DiscordWebhookURL)),
		resolver:    timeutil.NewResolver(cfg.GetString(config.AppTimezone)),
		advicePath:  cfg.GetString(config.DailyAdviceFilePath),
		documentDir: cfg.GetStringOrDefault(config.DailyDocumentDir, "."),
		runID:       runID,
		logger:      log.WithField(projectlog.FieldKeyRunID, runID),
	}, nil
}

// Run 执行一次每日作业。
// 数据面（查库、落库、模型总结）失败算致命；通知和点评失败只记日志。
func (s *Service) Run(ctx context.Context) error {
	summaryDay := s.resolver.Yesterday()
	planDay := s.resolver.Today()
	s.logger.Infof("daily run started, summary day %s, plan day %s",
		timeutil.FormatDay(summaryDay), timeutil.FormatDay(planDay))

	adviceLines := advice.LoadLines(s.advicePath)
	s.logger.Infof("loaded %d advice lines", len(adviceLines))

	// 1. 昨天的任务快照（顺延前）
	yesterdayTasks, err := s.tasks.ListByDate(ctx, summaryDay)
	if err != nil {
		return err
	}

	// 2. 统计要在顺延之前算，顺延会把没做完的挪到今天
	stats := CalculateStats(yesterdayTasks)
	status := DetermineStatus(stats)

	rolled, err := s.AutoRoll(ctx, yesterdayTasks, summaryDay)
	if err != nil {
		return err
	}
	s.logger.Infof("auto-rolled %d tasks from %s", rolled, timeutil.FormatDay(summaryDay))

	// 3. 策略快照 + 模型总结
	snapshot := s.LoadStrategySnapshot(ctx)

	plan, err := s.coach.GenerateSummaryAndPlan(ctx, stats, summaryDay, snapshot)
	if err != nil {
		return err
	}

	dailyAdvice := advice.Pick(adviceLines)

	// 4. 落每日日志
	logID, err := s.dailyLog.Create(ctx, &model.CreateDailyLogCondition{
		Date:              summaryDay,
		Status:            status,
		Stats:             stats,
		PlanTomorrow:      plan.PlanTomorrow,
		Summary:           plan.Summary,
		StrategyAlignment: plan.StrategyAlignment,
		DailyAdvice:       dailyAdvice,
	})
	if err != nil {
		return err
	}
	s.logger.Infof("daily log created, id=%s, status=%s", logID, status)

	// 5. 播种今天的固定任务，再取今天的完整任务列表
	created, err := s.EnsureRecurringTasks(ctx, planDay)
	if err != nil {
		return err
	}
	s.logger.Infof("seeded %d recurring tasks for %s", created, timeutil.FormatDay(planDay))

	todayTasks, err := s.tasks.ListByDate(ctx, planDay)
	if err != nil {
		return err
	}

	// 6. 逐条点评今天的任务并回写
	planTasks := s.enrichTasks(ctx, todayTasks, adviceLines)

	// 7. 通知
	message := BuildTasksMessage(planDay, planTasks, dailyAdvice)
	s.notifyMessage(ctx, message)

	// 8. 计划文档落盘并投递
	doc := &document.PlanDocument{
		PlanDay:     planDay,
		PlanItems:   plan.PlanTomorrow,
		Tasks:       planTasks,
		DailyAdvice: dailyAdvice,
	}
	docPath, err := doc.Write(s.documentDir)
	if err != nil {
		return model.NewError(model.ErrorDocumentWrite, err)
	}
	s.logger.Infof("plan document written to %s", docPath)

	s.notifyDocument(ctx, docPath, "Plan for "+timeutil.FormatDay(planDay))

	s.logger.Info("daily run finished")
	return nil
}

// enrichTasks 给计划日的每条任务要一条模型点评并回写到库里。
// 点评和回写都是尽力而为：单条失败跳过，继续处理剩下的。
func (s *Service) enrichTasks(ctx context.Context, tasks []*entity.Task, adviceLines []string) []model.PlanTask {
	planTasks := make([]model.PlanTask, 0, len(tasks))

	for _, t := range tasks {
		comment, err := s.coach.CommentForTask(ctx, t)
		if err != nil {
			s.logger.Errorf("comment for task %q failed: %v", t.Name, err)
			comment = ""
		}

		// 空点评也回写，覆盖掉上一轮的旧内容
		if err := s.tasks.UpdateAIComment(ctx, t.ID, comment); err != nil {
			s.logger.Errorf("update comment for task %q failed: %v", t.Name, err)
		}

		planTasks = append(planTasks, model.PlanTask{
			Name:       t.Name,
			Type:       t.Type.String(),
			PlannedMin: t.PlannedMin,
			Comment:    comment,
			Advice:     advice.Pick(adviceLines),
		})
	}

	return planTasks
}
