package mapper

import (
	"resume-structurer-go/internal/masterdata"
	"resume-structurer-go/internal/types"
)

// mapEducationData 把教育经历映射到educationalDetailDTO。
// 每个条目解析学历级别ID、毕业年份与进行中状态，归一化课程名，
// 并通过主数据解析国家/州；highestQualificationLevelId取全部条目的
// 最高学历序数。
func mapEducationData(education []types.EducationEntry, master *masterdata.Index) types.EducationalDetailDTO {
	dto := types.EducationalDetailDTO{
		QualificationLevelsList:  []types.QualificationLevel{},
		EmpEducationalDetailsMap: map[string]any{},
	}

	if len(education) == 0 {
		return dto
	}

	levels := make([]string, 0, len(education))
	for _, edu := range education {
		levels = append(levels, edu.QualificationLevel)
	}
	highest := HighestLevelID(levels)
	dto.HighestQualificationLevelId = &highest

	for _, edu := range education {
		country := edu.Country
		if country == "" {
			country = defaultNationality
		}

		// 毕业年份字段本身也可能携带状态文本（如"Thesis submitted"），
		// 状态字段为空时以它兜底
		statusSource := edu.CurrentStatus
		if statusSource == "" {
			statusSource = edu.YearOfCompletion
		}

		dto.QualificationLevelsList = append(dto.QualificationLevelsList, types.QualificationLevel{
			QualificationLevelId: ClassifyLevelID(edu.QualificationLevel),
			CurrentStatus:        CurrentStatus(statusSource),
			Course:               NormalizeCourse(edu.Course, edu.QualificationLevel),
			Specialization:       edu.Specialization,
			YearOfCompletion:     ExtractCompletionYear(edu.YearOfCompletion),
			GradeOrPercentage:    edu.GradeOrPercentage,
			Institute:            edu.Institute,
			BoardOrUniversity:    edu.BoardOrUniversity,
			DocumentList:         []any{},
			CountryId:            master.Resolve("country", country),
			StateId:              master.Resolve("state", edu.State),
		})
	}

	return dto
}
