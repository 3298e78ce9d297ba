package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyLevelID(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "PhD", expected: "5"},
		{input: "Ph.D. in Physics", expected: "5"},
		{input: "Doctorate", expected: "5"},
		{input: "Post Graduate", expected: "4"},
		{input: "M.Sc", expected: "4"},
		{input: "UG", expected: "3"},
		{input: "Bachelor of Science", expected: "3"},
		{input: "Class 12", expected: "2"},
		{input: "10th Standard", expected: "1"},
		{input: "something else", expected: "3"},
		{input: "", expected: "3"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ClassifyLevelID(tt.input), "学历分类结果应匹配: %s", tt.input)
	}
}

func TestHighestLevelID(t *testing.T) {
	assert.Equal(t, "5", HighestLevelID([]string{"BSc", "PhD"}), "应取最高学历序数")
	assert.Equal(t, "4", HighestLevelID([]string{"Class 12", "M.Sc"}))
	assert.Equal(t, "3", HighestLevelID(nil), "空列表应默认UG")
	assert.Equal(t, "3", HighestLevelID([]string{"gibberish"}), "无法分类时应默认UG")
}

func TestNormalizeCourse(t *testing.T) {
	tests := []struct {
		name     string
		course   string
		level    string
		expected string
	}{
		{name: "职务名替换为规范学位", course: "Research Scholar", level: "PhD", expected: "Ph.D."},
		{name: "院校名替换为规范学位", course: "Mumbai University", level: "PG", expected: "M.Sc."},
		{name: "可识别学位记号保留原样", course: "B.Tech Computer Science", level: "UG", expected: "B.Tech Computer Science"},
		{name: "普通课程名回落到规范学位", course: "Physics", level: "PG", expected: "M.Sc."},
		{name: "级别无法分类时保留原值", course: "Physics", level: "", expected: "Physics"},
		{name: "空课程名", course: "", level: "PhD", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeCourse(tt.course, tt.level), "课程归一化结果应匹配")
		})
	}
}
