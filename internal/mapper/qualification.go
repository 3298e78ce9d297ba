package mapper

import (
	"strconv"
	"strings"
)

// 学历序数：Class10=1 … PhD=5
const (
	LevelClass10 = 1
	LevelClass12 = 2
	LevelUG      = 3
	LevelPG      = 4
	LevelPhD     = 5
)

// defaultLevel 未能分类时默认按本科（UG）处理
const defaultLevel = LevelUG

// levelRule 学历分类规则：关键字命中即得出序数
type levelRule struct {
	keywords []string
	ordinal  int
}

// levelRules 按优先级排序的分类规则表，自上而下第一条命中生效。
// 博士变体 → 硕士/PG → 本科/UG → 12年级 → 10年级。
var levelRules = []levelRule{
	{keywords: []string{"phd", "ph.d", "doctorate"}, ordinal: LevelPhD},
	{keywords: []string{"pg", "post graduate", "master", "msc", "m.sc"}, ordinal: LevelPG},
	{keywords: []string{"ug", "undergraduate", "bachelor", "bsc", "b.sc"}, ordinal: LevelUG},
	{keywords: []string{"class 12", "12th"}, ordinal: LevelClass12},
	{keywords: []string{"class 10", "10th"}, ordinal: LevelClass10},
}

// canonicalCourseByLevel 各序数对应的规范学位名
var canonicalCourseByLevel = map[int]string{
	LevelPhD:     "Ph.D.",
	LevelPG:      "M.Sc.",
	LevelUG:      "B.Sc.",
	LevelClass12: "Class 12",
	LevelClass10: "Class 10",
}

// 课程归一化的关键字规则集
var (
	// 看起来像职务/身份而非课程名
	designationTokens = []string{"researcher", "scholar", "candidate", "student"}
	// 看起来像院校名而非课程名
	institutionTokens = []string{
		"university", "college", "institute", "school",
		"mumbai", "delhi", "iit", "mit", "harvard", "stanford",
	}
	// 已经是可识别的学位名，保留原样
	degreeTokens = []string{"PH.D", "M.SC", "B.SC", "B.TECH", "M.TECH", "MBA", "CLASS"}
)

// classifyOrdinal 把学历自由文本分类为序数，关键字大小写不敏感。
// 未命中任何规则时返回false。
func classifyOrdinal(level string) (int, bool) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		return 0, false
	}
	for _, rule := range levelRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(level, keyword) {
				return rule.ordinal, true
			}
		}
	}
	return 0, false
}

// ClassifyLevelID 把学历自由文本映射为字符串编码的序数ID，
// 未能分类时默认"3"（UG）
func ClassifyLevelID(level string) string {
	if ordinal, ok := classifyOrdinal(level); ok {
		return strconv.Itoa(ordinal)
	}
	return strconv.Itoa(defaultLevel)
}

// HighestLevelID 返回所有教育条目中最高学历序数的字符串形式。
// 条目为空或没有任何条目可分类时返回"3"（UG）。
func HighestLevelID(levels []string) string {
	highest := 0
	for _, level := range levels {
		if ordinal, ok := classifyOrdinal(level); ok && ordinal > highest {
			highest = ordinal
		}
	}
	if highest == 0 {
		highest = defaultLevel
	}
	return strconv.Itoa(highest)
}

// NormalizeCourse 把课程名归一化为规范学位名：
//   - 课程名像职务/身份（researcher/scholar等）或院校名时，替换为
//     该学历级别对应的规范学位名
//   - 已含可识别学位记号（PH.D/B.TECH等）时原样保留
//   - 其余情况回落到按级别的规范学位名，无法分类时保留原值
//   - 空输入返回空串
func NormalizeCourse(course, qualificationLevel string) string {
	course = strings.TrimSpace(course)
	if course == "" {
		return ""
	}

	lowerCourse := strings.ToLower(course)

	if containsAny(lowerCourse, designationTokens) {
		if canonical := canonicalForLevel(qualificationLevel); canonical != "" {
			return canonical
		}
	}

	if containsAny(lowerCourse, institutionTokens) {
		if canonical := canonicalForLevel(qualificationLevel); canonical != "" {
			return canonical
		}
	}

	if containsAny(strings.ToUpper(course), degreeTokens) {
		return course
	}

	if canonical := canonicalForLevel(qualificationLevel); canonical != "" {
		return canonical
	}

	return course
}

// canonicalForLevel 取学历级别对应的规范学位名，无法分类时返回空串
func canonicalForLevel(qualificationLevel string) string {
	if ordinal, ok := classifyOrdinal(qualificationLevel); ok {
		return canonicalCourseByLevel[ordinal]
	}
	return ""
}

func containsAny(s string, tokens []string) bool {
	for _, token := range tokens {
		if strings.Contains(s, token) {
			return true
		}
	}
	return false
}
