package timeutil

import (
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	TimeFormatCommonStyleDay = "2006-01-02"
	TimeFormatCommonStyleMin = "2006-01-02 15:04"
	TimeFormatCommonStyleSec = "2006-01-02 15:04:05"
)

// Resolver 按配置时区解析"今天/昨天/明天"。
// 总结针对昨天，计划针对今天。
type Resolver struct {
	loc *time.Location

	// 测试注入用，零值时取 time.Now
	now func() time.Time
}

// NewResolver 创建日期解析器，时区名无效时回退 UTC
func NewResolver(timezone string) *Resolver {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		log.Warnf("invalid timezone %q, falling back to UTC: %v", timezone, err)
		loc = time.UTC
	}
	return &Resolver{loc: loc}
}

// NewResolverAt 创建使用固定时钟的解析器，测试用
func NewResolverAt(timezone string, now func() time.Time) *Resolver {
	r := NewResolver(timezone)
	r.now = now
	return r
}

func (r *Resolver) clock() time.Time {
	if r.now != nil {
		return r.now()
	}
	return time.Now()
}

// Today 当前时区下的今天（零点）
func (r *Resolver) Today() time.Time {
	return DayOf(r.clock().In(r.loc))
}

// Yesterday 总结的目标日
func (r *Resolver) Yesterday() time.Time {
	return r.Today().AddDate(0, 0, -1)
}

// Tomorrow 今天 +1 天
func (r *Resolver) Tomorrow() time.Time {
	return r.Today().AddDate(0, 0, 1)
}

// DayOf 截断到自然日
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// NextDay 日期 +1 天，auto-roll 的目标日
func NextDay(t time.Time) time.Time {
	return DayOf(t).AddDate(0, 0, 1)
}

// FormatDay 按 ISO 日期格式化
func FormatDay(t time.Time) string {
	return t.Format(TimeFormatCommonStyleDay)
}

// ParseDay 解析 ISO 日期，失败返回零值
func ParseDay(s string) (time.Time, error) {
	return time.Parse(TimeFormatCommonStyleDay, s)
}
