package parser

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-structurer-go/internal/agent"
)

const mockStructuredResponse = "```json\n" + `{
	"personal_info": {
		"name": "Priya Sharma",
		"email": "priya@example.com",
		"phone": 9876543210,
		"date_of_birth": null
	},
	"education": [
		{
			"qualification_level": "PhD",
			"course": "Ph.D.",
			"year_of_completion": 2020
		}
	],
	"work_experience": [
		{
			"designation": "PhD Candidate",
			"from_date": "2016-01-01",
			"to_date": "Present",
			"years": 4,
			"months": 5
		}
	],
	"research_experience": {
		"has_research": true,
		"publications": ["Paper One", "Paper Two"]
	},
	"additional_informations": {
		"profile_summary": "Researcher in computational physics",
		"skills": ["Python", "DFT"],
		"languages": null
	}
}` + "\n```"

func TestStructureStripsCodeFenceAndSanitizes(t *testing.T) {
	mockModel := agent.NewMockChatClient(mockStructuredResponse, nil)
	structurer, err := NewResumeStructurer(mockModel)
	require.NoError(t, err)

	resume, err := structurer.Structure(context.Background(), "resume text")
	require.NoError(t, err, "结构化调用应成功")
	require.NotNil(t, resume)

	assert.Equal(t, "Priya Sharma", resume.PersonalInfo.Name)
	assert.Equal(t, "9876543210", resume.PersonalInfo.Phone, "数字电话号应净化为字符串")
	assert.Equal(t, "", resume.PersonalInfo.DateOfBirth, "null应净化为空字符串")

	require.Len(t, resume.Education, 1)
	assert.Equal(t, "2020", resume.Education[0].YearOfCompletion, "数字年份应净化为字符串")

	require.Len(t, resume.WorkExperience, 1)
	assert.Equal(t, "4", resume.WorkExperience[0].Years)

	assert.Equal(t, "true", resume.ResearchExperience.HasResearch, "布尔应净化为字符串")
	assert.Equal(t, []string{"Paper One", "Paper Two"}, []string(resume.ResearchExperience.Publications))
	assert.Nil(t, []string(resume.AdditionalInformations.Languages), "null列表应折叠为nil")

	// 提示词应包含系统消息和带简历文本的用户消息
	received := mockModel.GetReceivedMessages()
	require.Len(t, received, 2)
	assert.Contains(t, received[1].Content, "resume text")
}

func TestStructureModelError(t *testing.T) {
	mockModel := agent.NewMockChatClient("", errors.New("网络超时"))
	structurer, err := NewResumeStructurer(mockModel)
	require.NoError(t, err)

	_, err = structurer.Structure(context.Background(), "resume text")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrModelInvocation, "模型调用失败应归类为ErrModelInvocation")
}

func TestStructureInvalidJSON(t *testing.T) {
	mockModel := agent.NewMockChatClient("I cannot parse this resume.", nil)
	structurer, err := NewResumeStructurer(mockModel)
	require.NoError(t, err)

	_, err = structurer.Structure(context.Background(), "resume text")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStructuredResponse, "非JSON响应应归类为ErrInvalidStructuredResponse")
}

func TestStructureEmptyResponse(t *testing.T) {
	mockModel := agent.NewMockChatClient("   ", nil)
	structurer, err := NewResumeStructurer(mockModel)
	require.NoError(t, err)

	_, err = structurer.Structure(context.Background(), "resume text")
	assert.ErrorIs(t, err, ErrInvalidStructuredResponse, "空响应应归类为ErrInvalidStructuredResponse")
}

func TestNewResumeStructurerRequiresModel(t *testing.T) {
	_, err := NewResumeStructurer(nil)
	assert.Error(t, err, "缺少chatModel应返回错误")
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "完整围栏", input: "```json\n{\"a\":1}\n```", expected: `{"a":1}`},
		{name: "无围栏", input: `{"a":1}`, expected: `{"a":1}`},
		{name: "只有后缀围栏", input: "{\"a\":1}\n```", expected: `{"a":1}`},
		{name: "前后空白", input: "  {\"a\":1}  ", expected: `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, stripCodeFence(tt.input))
		})
	}
}
