// Package daily 每日任务作业的提示词常量
package daily

// PromptSummarySystem 日总结与计划的系统提示词
// 应用位置: Coach.GenerateSummaryAndPlan()
const PromptSummarySystem = `你是用户的个人 AI 教练和战略顾问，基于数据做复盘，给出可执行的计划。`

// PromptSummaryUserTemplate 日总结用户提示词模板
// 参数顺序: 总结目标日, 统计 JSON, 策略快照文本
// 功能说明: 要求模型复盘一天、对照长期策略、给出明日计划，输出严格 JSON
const PromptSummaryUserTemplate = `以下是 %s 这一天的任务统计：
%s

以下是长期策略的快照（来自单独的 Strategy 库）：
%s

你的任务：
1) 简明扼要地复盘这一天过得怎么样。
2) 评估这一天与长期策略的契合程度（结合数据判断）。
3) 给出下一天的具体行动计划。

回复格式必须是严格的 JSON（外面不要加任何文字，不要用 markdown）：

{
  "summary": "对这一天的复盘，3-8 个段落，不要 markdown，不要 emoji。",
  "strategy_alignment": "这一天与长期策略的关系。",
  "plan_tomorrow": [
    "计划条目 1",
    "计划条目 2",
    "计划条目 3"
  ]
}

要求：
- 不要任何 markdown（不要 ###、**、---）。
- 只输出合法 JSON。
- "plan_tomorrow" 是字符串数组，每一条都是具体可执行的动作。`

// PromptCommentSystem 单任务点评的系统提示词
// 应用位置: Coach.CommentForTask()
const PromptCommentSystem = `你是用户严格但讲道理的产品导师，点评一针见血。`

// PromptCommentUserTemplate 单任务点评用户提示词模板
// 参数顺序: 任务名, 类型, 复杂度, 顺延次数, 计划时长（分钟）
// 功能说明: 要求模型给出一段话的执行建议，纯文本
const PromptCommentUserTemplate = `任务: "%s"
类型: %s
复杂度: %d
顺延次数: %d
计划时长: %d 分钟

给一条简短的点评（1-2 句话），不要 markdown，不要 emoji：
- 怎么做效率最高
- 需要注意什么
- 如果任务太大，提出一个简化方案。

用一个段落回答，不要换行。`
