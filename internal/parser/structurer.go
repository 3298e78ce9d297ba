package parser

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog"

	"resume-structurer-go/internal/logger"
	"resume-structurer-go/internal/types"
)

// structuringSystemPrompt 结构化调用的系统提示词
const structuringSystemPrompt = "You are an expert resume parser specializing in academic and professional resumes. " +
	"You understand PhD programs, research work, publications, and career progression. " +
	"Extract information with maximum accuracy and attention to detail. " +
	"Return only valid JSON with exact information from the resume."

// structuringPromptTemplate 用户提示词模板：七条归一化规则 + 目标中间JSON schema。
// 规则和schema文本是与模型的契约，修改前需同步回归端到端用例。
const structuringPromptTemplate = `You are an expert resume parser with deep understanding of academic and professional resumes.
Extract and structure the following resume information into a JSON format with maximum accuracy.

CRITICAL INSTRUCTIONS:
1. EDUCATION YEARS:
   - For date ranges like "2016-2018", use the END year (2018) for year_of_completion
   - For ongoing PhD/education: Set year_of_completion to "" (empty) and current_status to actual status like "Thesis Submitted"
   - Only use actual completion years, not start years

2. WORK EXPERIENCE DATES:
   - For ongoing positions (PhD, current job): Set to_date as "Present"
   - Be precise with from_date (use actual start year)
   - Calculate years/months accurately from the dates

3. RESEARCH EXPERIENCE DETECTION:
   - If resume shows PhD, publications, research work, conferences -> set has_research: true
   - Extract EXACT publication titles, conference names, collaborator names
   - Look for research areas, awards, presentations

4. DATA ACCURACY:
   - Extract EXACT text from resume - no placeholders or generic text
   - If information is missing, use null (not empty arrays or empty strings)
   - Pay attention to context and relationships between sections

5. ADDITIONAL INFORMATION:
   - Extract profile/summary sections
   - Get exact skills, languages, certifications
   - Include volunteer work, awards, achievements
   - Use null for missing information

6. EDUCATION COURSE NAMES:
   - Use proper degree names: "Ph.D.", "M.Sc.", "B.Sc.", "Class 12", "Class 10"
   - Do NOT use university names as course names
   - If course field contains university name, use the degree name instead
   - ALWAYS provide course names, never leave them empty

7. QUALIFICATION LEVELS:
   - Use exact terms: "PhD", "MSc", "BSc", "Class 12", "Class 10"
   - PhD should be "PhD" not "Ph.D" in qualification_level field
   - MSc should be "MSc" not "M.Sc" in qualification_level field
   - Be consistent with terminology

Structure the data as follows:

{
    "personal_info": {
        "name": "Full Name",
        "email": "email@example.com",
        "phone": "phone number",
        "address": "full address",
        "date_of_birth": "YYYY-MM-DD",
        "gender": "Male/Female/Other",
        "marital_status": "Single/Married/Divorced/Widow/Other",
        "nationality": "Nationality",
        "religion": "Religion",
        "blood_group": "Blood Group",
        "aadhar_no": "Aadhar Number",
        "passport_no": "Passport Number"
    },
    "education": [
        {
            "qualification_level": "Class 10/Class 12/UG/PG/PhD",
            "course": "Course Name",
            "specialization": "Specialization",
            "institute": "Institute Name",
            "board_or_university": "Board/University",
            "year_of_completion": "YYYY (use END year for ranges, current year for ongoing)",
            "current_status": "Current Status if ongoing (e.g., 'Thesis Submitted', 'Pursuing')",
            "grade_or_percentage": "Grade/Percentage",
            "country": "Country",
            "state": "State"
        }
    ],
    "work_experience": [
        {
            "designation": "Job Title",
            "company": "Company Name",
            "employment_type": "fulltime/parttime/contract",
            "from_date": "YYYY-MM-DD",
            "to_date": "YYYY-MM-DD or Present",
            "current_salary": "Salary",
            "notice_period": "Notice Period in days",
            "years": "Years of experience",
            "months": "Months of experience",
            "description": "Job description"
        }
    ],
    "research_experience": {
        "has_research": true/false,
        "research_areas": ["area1", "area2"],
        "publications": ["EXACT publication title 1", "EXACT publication title 2"],
        "conferences": ["EXACT conference name 1", "EXACT conference name 2"],
        "awards": ["EXACT award name 1", "EXACT award name 2"],
        "collaborations": ["EXACT collaborator name 1", "EXACT collaborator name 2"]
    },
    "additional_informations": {
        "profile_summary": "Professional summary/profile section",
        "skills": ["skill1", "skill2", "skill3"],
        "awards": ["EXACT award name 1", "EXACT award name 2"],
        "publications": ["EXACT publication title 1", "EXACT publication title 2"],
        "conferences": ["EXACT conference name 1", "EXACT conference name 2"],
        "collaborators": ["EXACT collaborator name 1", "EXACT collaborator name 2"],
        "languages": ["language1", "language2"] or null,
        "certifications": ["cert1", "cert2"] or null,
        "volunteer_work": ["volunteer1", "volunteer2"] or null
    }
}

Resume Text:
%s

Return only the JSON structure with EXACT information from the resume, no placeholders.`

// ResumeStructurer 调用结构化模型把简历纯文本转换为中间表示，
// 并对模型输出做代码围栏剥离和类型净化。
type ResumeStructurer struct {
	chatModel model.ToolCallingChatModel
	timeout   time.Duration
	logger    zerolog.Logger
}

// StructurerOption 结构化器的配置选项
type StructurerOption func(*ResumeStructurer)

// WithStructurerTimeout 设置单次结构化调用的超时
func WithStructurerTimeout(d time.Duration) StructurerOption {
	return func(s *ResumeStructurer) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// NewResumeStructurer 创建简历结构化器
func NewResumeStructurer(chatModel model.ToolCallingChatModel, options ...StructurerOption) (*ResumeStructurer, error) {
	if chatModel == nil {
		return nil, fmt.Errorf("chatModel不能为空")
	}

	s := &ResumeStructurer{
		chatModel: chatModel,
		timeout:   90 * time.Second,
		logger:    logger.Logger.With().Str("component", "resume_structurer").Logger(),
	}

	for _, option := range options {
		option(s)
	}

	return s, nil
}

// Structure 把简历纯文本转换为净化后的中间表示。
// 流程：构造提示词 → 模型调用 → 剥离Markdown代码围栏 → 解析JSON →
// 递归净化叶子类型 → 反序列化为ExtractedResume。
func (s *ResumeStructurer) Structure(ctx context.Context, text string) (*types.ExtractedResume, error) {
	startTime := time.Now()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	messages := []*schema.Message{
		schema.SystemMessage(structuringSystemPrompt),
		schema.UserMessage(fmt.Sprintf(structuringPromptTemplate, text)),
	}

	response, err := s.chatModel.Generate(ctx, messages)
	if err != nil {
		s.logger.Error().Err(err).Dur("duration", time.Since(startTime)).Msg("结构化模型调用失败")
		return nil, fmt.Errorf("%w: %v", ErrModelInvocation, err)
	}
	if response == nil || strings.TrimSpace(response.Content) == "" {
		return nil, fmt.Errorf("%w: 模型返回空内容", ErrInvalidStructuredResponse)
	}

	content := stripCodeFence(response.Content)

	tree, err := decodeJSONTree([]byte(content))
	if err != nil {
		s.logger.Error().Err(err).Int("content_length", len(content)).Msg("模型响应不是合法JSON")
		return nil, fmt.Errorf("%w: %v", ErrInvalidStructuredResponse, err)
	}

	sanitized := SanitizeTree(tree)

	normalized, err := json.Marshal(sanitized)
	if err != nil {
		return nil, fmt.Errorf("%w: 重新序列化净化结果失败: %v", ErrInvalidStructuredResponse, err)
	}

	var resume types.ExtractedResume
	if err := json.Unmarshal(normalized, &resume); err != nil {
		return nil, fmt.Errorf("%w: 中间表示不符合目标schema: %v", ErrInvalidStructuredResponse, err)
	}

	s.logger.Info().
		Int("text_length", len(text)).
		Int("education_entries", len(resume.Education)).
		Int("work_entries", len(resume.WorkExperience)).
		Dur("duration", time.Since(startTime)).
		Msg("简历结构化完成")

	return &resume, nil
}

// stripCodeFence 剥离模型输出外层的Markdown代码围栏：
// 前缀"```json"和后缀"```"，各剥离一次
func stripCodeFence(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```json") {
		content = content[len("```json"):]
	}
	if strings.HasSuffix(content, "```") {
		content = content[:len(content)-len("```")]
	}
	return strings.TrimSpace(content)
}
