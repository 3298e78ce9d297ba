package mapper

import (
	"strconv"
	"strings"
	"time"

	"resume-structurer-go/internal/types"
)

// 工作经历段的固定默认值
const (
	defaultWorkExperienceTypeId = "2"
	defaultFunctionalAreaId     = "13"
	defaultEmploymentType       = "fulltime"
	defaultNoticePeriodDays     = "30"
	defaultCurrentSalary        = "0"
)

// researchDesignationTokens 职务名中暗示仍在进行的研究/在读身份的关键字
var researchDesignationTokens = []string{"phd", "ph.d", "research", "student", "candidate"}

// selectCurrentExperience 在职经历选择策略（按序第一条命中生效）：
//  1. to_date为空、等于"present"/"current"或包含"present"的条目
//  2. 否则第一个职务名含研究/在读关键字的条目
//  3. 否则列表中的第一个条目
//
// entries为空时返回-1。
func selectCurrentExperience(entries []types.WorkExperienceEntry) int {
	if len(entries) == 0 {
		return -1
	}

	for i, exp := range entries {
		toDate := strings.ToLower(strings.TrimSpace(exp.ToDate))
		if toDate == "" || toDate == "present" || toDate == "current" || strings.Contains(toDate, "present") {
			return i
		}
	}

	for i, exp := range entries {
		if containsAny(strings.ToLower(exp.Designation), researchDesignationTokens) {
			return i
		}
	}

	return 0
}

// sumPreviousExperience 汇总除在职经历外全部条目的年/月工龄。
// 条目自带的years/months优先；两者都缺失或为零且日期齐全时按
// 日期近似计算；累计月数向年进位。
func sumPreviousExperience(entries []types.WorkExperienceEntry, currentIdx int, now time.Time) (int, int) {
	totalYears := 0
	totalMonths := 0

	for i, exp := range entries {
		if i == currentIdx {
			continue
		}

		years := parseIntLenient(exp.Years)
		months := parseIntLenient(exp.Months)

		if years == 0 && months == 0 && exp.FromDate != "" && exp.ToDate != "" {
			years, months = durationBetween(exp.FromDate, exp.ToDate, now, false)
		}

		totalYears += years
		totalMonths += months
	}

	totalYears += totalMonths / 12
	totalMonths = totalMonths % 12

	return totalYears, totalMonths
}

// mapWorkExperience 把工作经历映射到professionalExperienceDTO。
// 空列表时isCurrentlyWorking为"No"且无currentExperience。
func mapWorkExperience(entries []types.WorkExperienceEntry, now time.Time) types.ProfessionalExperienceDTO {
	dto := types.ProfessionalExperienceDTO{
		IsCurrentlyWorking:                    "No",
		TotalPreviousExperienceYears:          "0",
		TotalPreviousExperienceMonths:         "0",
		TotalPartTimePreviousExperienceYears:  "0",
		TotalPartTimePreviousExperienceMonths: "0",
	}

	currentIdx := selectCurrentExperience(entries)
	if currentIdx < 0 {
		return dto
	}

	current := entries[currentIdx]
	years, months := durationBetween(current.FromDate, current.ToDate, now, true)

	employmentType := current.EmploymentType
	if employmentType == "" {
		employmentType = defaultEmploymentType
	}
	noticePeriod := strings.TrimSpace(current.NoticePeriod)
	if noticePeriod == "" {
		noticePeriod = defaultNoticePeriodDays
	}
	currentSalary := strings.TrimSpace(current.CurrentSalary)
	if currentSalary == "" {
		currentSalary = defaultCurrentSalary
	}

	dto.IsCurrentlyWorking = "Yes"
	dto.CurrentExperience = &types.CurrentExperienceDTO{
		WorkExperienceTypeId:   defaultWorkExperienceTypeId,
		FunctionalAreaId:       defaultFunctionalAreaId,
		EmploymentType:         employmentType,
		Designation:            current.Designation,
		Years:                  strconv.Itoa(years),
		Months:                 strconv.Itoa(months),
		NoticePeriod:           noticePeriod,
		CurrentSalary:          currentSalary,
		Institution:            current.Company,
		ExperienceDocumentList: []any{},
		FromDate:               ParseDateArray(current.FromDate),
		ToDate:                 ParseDateArray(current.ToDate),
	}

	totalYears, totalMonths := sumPreviousExperience(entries, currentIdx, now)
	dto.TotalPreviousExperienceYears = strconv.Itoa(totalYears)
	dto.TotalPreviousExperienceMonths = strconv.Itoa(totalMonths)

	return dto
}

// parseIntLenient 宽松的整数解析：空串或非数字一律按0处理
func parseIntLenient(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
