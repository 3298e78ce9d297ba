package mapper

import (
	"fmt"
	"strings"
	"time"

	"resume-structurer-go/internal/masterdata"
	"resume-structurer-go/internal/types"
)

// DTOMapper 把净化后的中间表示映射为下游要求的固定形态申请记录。
// 先构建所有键都就位的基础骨架，再逐段覆盖个人/地址/教育/工作/
// 科研/附加信息，任何子步骤失败都不返回部分结果。
type DTOMapper struct {
	master *masterdata.Index
	now    func() time.Time
}

// MapperOption DTOMapper的配置选项
type MapperOption func(*DTOMapper)

// WithClock 注入时钟，用于让工龄计算在测试中可复现
func WithClock(now func() time.Time) MapperOption {
	return func(m *DTOMapper) {
		if now != nil {
			m.now = now
		}
	}
}

// NewDTOMapper 创建映射器，主数据索引为必需依赖
func NewDTOMapper(master *masterdata.Index, options ...MapperOption) (*DTOMapper, error) {
	if master == nil {
		return nil, fmt.Errorf("主数据索引不能为空")
	}

	m := &DTOMapper{
		master: master,
		now:    time.Now,
	}

	for _, option := range options {
		option(m)
	}

	return m, nil
}

// Map 把中间表示转换为申请记录。映射过程中的任何失败（含panic）
// 都折叠为单个错误返回，调用方不会拿到部分构建的记录。
func (m *DTOMapper) Map(extracted *types.ExtractedResume) (record types.ApplicationRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("构建申请记录失败: %v", r)
		}
	}()

	if extracted == nil {
		return record, fmt.Errorf("中间表示不能为空")
	}

	record = newBaseRecord()
	record.EmpApplnPersonalDataDTO = mapPersonalData(extracted.PersonalInfo, m.master)
	record.AddressDetailDTO = mapAddressData(extracted.PersonalInfo)
	record.EducationalDetailDTO = mapEducationData(extracted.Education, m.master)
	record.ProfessionalExperienceDTO = mapWorkExperience(extracted.WorkExperience, m.now())
	record.ResearchDetailDTO = mapResearchExperience(extracted.ResearchExperience)
	record.AdditionalInformations = mapAdditionalInfo(extracted.AdditionalInformations)

	return record, nil
}

// mapResearchExperience 科研经历段只传递是否有科研经历的标志；
// 提取到的出版物/会议/奖项只出现在附加信息段（刻意的设计决定）
func mapResearchExperience(research types.ResearchExperience) types.ResearchDetailDTO {
	flag := "No"
	if isAffirmative(research.HasResearch) {
		flag = "Yes"
	}

	dto := newBaseResearchDetail()
	dto.IsResearchExperience = flag
	dto.ResearchEntries.IsResearchExperience = &flag
	return dto
}

// isAffirmative 判断净化后的布尔字符串是否为真值
func isAffirmative(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "1":
		return true
	}
	return false
}

// newBaseRecord 构建所有必需键均已就位的申请记录骨架，
// 大多数字段默认null，类别型默认值按下游约定预置
func newBaseRecord() types.ApplicationRecord {
	return types.ApplicationRecord{
		EmpApplnEntriesId: 0,
		SaveMode:          "save draft",
		JobDetailDTO: types.JobDetailDTO{
			EmpApplnEntriesId:          0,
			PostAppliedFor:             "1",
			SubjectCategoryIds:         [][]string{{}},
			EmpApplnSubjectCategoryDTO: []any{},
			PreferredLocationIds:       []any{},
		},
		EducationalDetailDTO: types.EducationalDetailDTO{
			QualificationLevelsList:  []types.QualificationLevel{},
			EmpEducationalDetailsMap: map[string]any{},
		},
		ProfessionalExperienceDTO: types.ProfessionalExperienceDTO{
			IsCurrentlyWorking:                    "No",
			TotalPreviousExperienceYears:          "0",
			TotalPreviousExperienceMonths:         "0",
			TotalPartTimePreviousExperienceYears:  "0",
			TotalPartTimePreviousExperienceMonths: "0",
		},
		ResearchDetailDTO: newBaseResearchDetail(),
		Academic:          false,
	}
}

// newBaseResearchDetail 科研段的默认骨架
func newBaseResearchDetail() types.ResearchDetailDTO {
	return types.ResearchDetailDTO{
		IsResearchExperience: "No",
		IsInterviewedBefore:  "No",
		VacancyInformationId: "5",
	}
}
