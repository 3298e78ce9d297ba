package types

import (
	"encoding/json"
	"fmt"
)

// ExtractedResume 大模型结构化调用产出的中间表示。
// 经过净化（sanitize）之后，所有叶子值都是字符串：数字和布尔
// 被转为其字符串形式，null被转为空字符串。下游映射逻辑统一用
// "空字符串即缺失"的约定判断，而不做类型检查。
type ExtractedResume struct {
	PersonalInfo           PersonalInfo          `json:"personal_info"`
	Education              EducationList         `json:"education"`
	WorkExperience         WorkExperienceList    `json:"work_experience"`
	ResearchExperience     ResearchExperience    `json:"research_experience"`
	AdditionalInformations AdditionalInformation `json:"additional_informations"`
}

// PersonalInfo 个人基本信息，全部为可缺省字符串
type PersonalInfo struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	DateOfBirth   string `json:"date_of_birth"`
	Gender        string `json:"gender"`
	MaritalStatus string `json:"marital_status"`
	Nationality   string `json:"nationality"`
	Religion      string `json:"religion"`
	BloodGroup    string `json:"blood_group"`
	AadharNo      string `json:"aadhar_no"`
	PassportNo    string `json:"passport_no"`
}

// EducationEntry 教育经历条目
type EducationEntry struct {
	QualificationLevel string `json:"qualification_level"`
	Course             string `json:"course"`
	Specialization     string `json:"specialization"`
	Institute          string `json:"institute"`
	BoardOrUniversity  string `json:"board_or_university"`
	YearOfCompletion   string `json:"year_of_completion"`
	CurrentStatus      string `json:"current_status"`
	GradeOrPercentage  string `json:"grade_or_percentage"`
	Country            string `json:"country"`
	State              string `json:"state"`
}

// WorkExperienceEntry 工作经历条目
type WorkExperienceEntry struct {
	Designation    string `json:"designation"`
	Company        string `json:"company"`
	EmploymentType string `json:"employment_type"`
	FromDate       string `json:"from_date"`
	ToDate         string `json:"to_date"`
	CurrentSalary  string `json:"current_salary"`
	NoticePeriod   string `json:"notice_period"`
	Years          string `json:"years"`
	Months         string `json:"months"`
	Description    string `json:"description"`
}

// ResearchExperience 科研经历。HasResearch在净化后是布尔的字符串形式
// （"true"/"false"），由映射层按字符串语义判断。
type ResearchExperience struct {
	HasResearch    string     `json:"has_research"`
	ResearchAreas  StringList `json:"research_areas"`
	Publications   StringList `json:"publications"`
	Conferences    StringList `json:"conferences"`
	Awards         StringList `json:"awards"`
	Collaborations StringList `json:"collaborations"`
}

// AdditionalInformation 附加信息段
type AdditionalInformation struct {
	ProfileSummary string     `json:"profile_summary"`
	Skills         StringList `json:"skills"`
	Awards         StringList `json:"awards"`
	Publications   StringList `json:"publications"`
	Conferences    StringList `json:"conferences"`
	Collaborators  StringList `json:"collaborators"`
	Languages      StringList `json:"languages"`
	Certifications StringList `json:"certifications"`
	VolunteerWork  StringList `json:"volunteer_work"`
}

// StringList 字符串列表。净化会把null字段折叠成空字符串，
// 因此反序列化时需要同时兼容数组和裸字符串两种形态。
type StringList []string

// UnmarshalJSON 兼容 ["a","b"]、""（视为缺失）和 "a"（单元素）三种输入
func (l *StringList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*l = items
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	if single == "" {
		*l = nil
		return nil
	}
	*l = StringList{single}
	return nil
}

// EducationList 教育经历列表，缺失时可能以空字符串出现
type EducationList []EducationEntry

// UnmarshalJSON 兼容数组和空字符串（视为缺失）两种输入
func (l *EducationList) UnmarshalJSON(data []byte) error {
	var entries []EducationEntry
	if err := json.Unmarshal(data, &entries); err == nil {
		*l = entries
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil || single != "" {
		return errInvalidListShape("education", data)
	}
	*l = nil
	return nil
}

// WorkExperienceList 工作经历列表，缺失时可能以空字符串出现
type WorkExperienceList []WorkExperienceEntry

// UnmarshalJSON 兼容数组和空字符串（视为缺失）两种输入
func (l *WorkExperienceList) UnmarshalJSON(data []byte) error {
	var entries []WorkExperienceEntry
	if err := json.Unmarshal(data, &entries); err == nil {
		*l = entries
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil || single != "" {
		return errInvalidListShape("work_experience", data)
	}
	*l = nil
	return nil
}

func errInvalidListShape(field string, data []byte) error {
	return fmt.Errorf("字段 %s 的JSON形态无效: %s", field, string(data))
}
