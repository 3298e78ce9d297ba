package mapper

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// dateLayouts 固定的日期解析顺序：YYYY-MM-DD、DD-MM-YYYY、
// MM/DD/YYYY、DD/MM/YYYY，第一个解析成功的生效
var dateLayouts = []string{
	"2006-01-02",
	"02-01-2006",
	"01/02/2006",
	"02/01/2006",
}

var (
	yearPattern      = regexp.MustCompile(`\b(20\d{2}|19\d{2})\b`)
	yearRangePattern = regexp.MustCompile(`(\d{4})-(\d{4})`)
)

// ongoingPhrases 表示"仍在进行中"的状态短语
var ongoingPhrases = []string{"thesis submitted", "ongoing", "pursuing", "current"}

// parseExactDate 按固定顺序尝试四种日期格式，全部失败返回false
func parseExactDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseDateArray 把日期字符串解析为[年,月,日]数组。
// "present"/"current"（大小写不敏感）和空串视为进行中，返回nil；
// 四种固定格式都不匹配时尝试从自由文本提取4位年份（1900–2099），
// 降级为[年,1,1]；仍失败返回nil。
func ParseDateArray(s string) []int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	switch strings.ToLower(s) {
	case "present", "current":
		return nil
	}

	if t, ok := parseExactDate(s); ok {
		return []int{t.Year(), int(t.Month()), t.Day()}
	}

	if match := yearPattern.FindStringSubmatch(s); match != nil {
		year, _ := strconv.Atoi(match[1])
		return []int{year, 1, 1}
	}

	return nil
}

// FormatDateOfBirth 把出生日期格式化为下游要求的固定ISO形式
// "YYYY-MM-DDT18:30:00.000Z"（固定UTC偏移约定，非真正的时区转换）。
// 无法解析时返回nil。
func FormatDateOfBirth(s string) *string {
	t, ok := parseExactDate(s)
	if !ok {
		return nil
	}
	formatted := t.Format("2006-01-02") + "T18:30:00.000Z"
	return &formatted
}

// ExtractCompletionYear 从毕业时间字符串提取年份：
// 恰好4位数字 → 原样返回；YYYY-YYYY区间 → 取结束年；
// 自由文本中嵌入的4位年份（1900–2099）→ 该年份；
// 含进行中短语 → 空串（状态而非年份生效）；其余 → 空串。
func ExtractCompletionYear(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	if len(s) == 4 && isAllDigits(s) {
		return s
	}

	if match := yearRangePattern.FindStringSubmatch(s); match != nil {
		return match[2]
	}

	if match := yearPattern.FindStringSubmatch(s); match != nil {
		return match[1]
	}

	return ""
}

// CurrentStatus 从毕业时间/状态字符串提取进行中状态。
// 含进行中短语时返回其标题化形式，否则返回nil。
func CurrentStatus(s string) *string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil
	}
	for _, phrase := range ongoingPhrases {
		if strings.Contains(s, phrase) {
			titled := titleCase(s)
			return &titled
		}
	}
	return nil
}

// yearsMonthsBetween 近似的工龄计算：按日历天数差，
// years = days/365，months = (days%365)/30。刻意不做日历精确
// 换算，下游契约依赖这一近似。
func yearsMonthsBetween(from, to time.Time) (int, int) {
	days := int(to.Sub(from).Hours() / 24)
	if days < 0 {
		return 0, 0
	}
	return days / 365, (days % 365) / 30
}

// durationBetween 计算一段经历的年/月时长。
// from必须匹配固定格式，否则返回0,0；to为"present"/"current"时取now，
// treatEmptyAsNow为真时空to也取now（在职经历的约定）。
func durationBetween(fromStr, toStr string, now time.Time, treatEmptyAsNow bool) (int, int) {
	from, ok := parseExactDate(fromStr)
	if !ok {
		return 0, 0
	}

	var to time.Time
	switch lt := strings.ToLower(strings.TrimSpace(toStr)); {
	case lt == "present" || lt == "current":
		to = now
	case lt == "":
		if !treatEmptyAsNow {
			return 0, 0
		}
		to = now
	default:
		parsed, ok := parseExactDate(toStr)
		if !ok {
			return 0, 0
		}
		to = parsed
	}

	return yearsMonthsBetween(from, to)
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// titleCase 把每个单词的首字母大写、其余小写（等价于常见的
// 标题化处理，按非字母字符分词）
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevIsLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevIsLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevIsLetter = true
		} else {
			b.WriteRune(r)
			prevIsLetter = false
		}
	}
	return b.String()
}
