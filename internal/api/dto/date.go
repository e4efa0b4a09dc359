package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateLayout 请求与响应中日期的格式
const DateLayout = "2006-01-02"

// Date 只含日期的时间，按 UTC 零点存储
type Date struct {
	time.Time
}

// NewDate 截断到 UTC 日期
func NewDate(t time.Time) Date {
	t = t.UTC()
	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseDate 解析 2006-01-02 格式的日期
func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, want %s", s, DateLayout)
	}
	return Date{Time: t}, nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(DateLayout))
}

// Ptr 零值返回 nil
func (d *Date) Ptr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}
