package types

// ApplicationRecord 下游HR系统要求的固定形态申请记录。
// 字段名与嵌套结构是对外契约，必须逐字节匹配；所有键永远
// 出现在序列化结果中（不使用omitempty），缺失数据以null表示。
// 类别型字段的ID统一为字符串编码的小整数，未能解析时默认"1"。
type ApplicationRecord struct {
	EmpApplnEntriesId                 int                       `json:"empApplnEntriesId"`
	SaveMode                          string                    `json:"saveMode"`
	ApplicationNo                     any                       `json:"applicationNo"`
	EmpApplicationRegistrationId      any                       `json:"empApplicationRegistrationId"`
	IsAvailableForTheInterview        any                       `json:"isAvailableForTheInterview"`
	EmpApplnInterviewSchedulesId      any                       `json:"empApplnInterviewSchedulesId"`
	InterviewRound                    any                       `json:"interviewRound"`
	IsAcceptOffer                     any                       `json:"isAcceptOffer"`
	ReportingDate                     any                       `json:"reportingDate"`
	JoiningDate                       any                       `json:"joiningDate"`
	JobDetailDTO                      JobDetailDTO              `json:"jobDetailDTO"`
	EmpApplnPersonalDataDTO           PersonalDataDTO           `json:"empApplnPersonalDataDTO"`
	AddressDetailDTO                  PersonalDataDTO           `json:"addressDetailDTO"`
	EducationalDetailDTO              EducationalDetailDTO      `json:"educationalDetailDTO"`
	ProfessionalExperienceDTO         ProfessionalExperienceDTO `json:"professionalExperienceDTO"`
	ResearchDetailDTO                 ResearchDetailDTO         `json:"researchDetailDTO"`
	AdditionalPersonalDataDTO         any                       `json:"additionalPersonalDataDTO"`
	EmpJobDetailsDTO                  any                       `json:"empJobDetailsDTO"`
	EmpApplnNonAvailabilityDTO        any                       `json:"empApplnNonAvailabilityDTO"`
	JobCategoryDTO                    any                       `json:"jobCategoryDTO"`
	EmpGratuityNomineesDTO            any                       `json:"empGratuityNomineesDTO"`
	EmpPfNomineesDTO                  any                       `json:"empPfNomineesDTO"`
	RegretLetterfileUploadDownloadDTO any                       `json:"regretLetterfileUploadDownloadDTO"`
	FamilyDetailsAddtnlList           any                       `json:"familyDetailsAddtnlList"`
	DependentDetailsAddtnlList        any                       `json:"dependentDetailsAddtnlList"`
	AdditionalInformations            *AdditionalInfoDTO        `json:"additionalInformations"`
	EmpApplnSubjectCategory           any                       `json:"empApplnSubjectCategory"`
	EmpApplnSubjectCategorySpec       any                       `json:"empApplnSubjectCategorySpecialization"`
	LocationPref                      any                       `json:"locationPref"`
	Academic                          bool                      `json:"academic"`
	MaritalStatusDTO                  any                       `json:"maritalStatusDTO"`
	SubmissionDate                    any                       `json:"submissionDate"`
	IdentityRow                       any                       `json:"identityRow"`
	CampusPreference                  any                       `json:"campusPreference"`
	ApplicantWorkFlowStatusCode       any                       `json:"applicantWorkFlowStatusCode"`
	ApplicationWorkFlowStatusCode     any                       `json:"applicationWorkFlowStatusCode"`
	EmpAppliedEmployeCategory         any                       `json:"empAppliedEmployeCategory"`
	MajorAchievements                 any                       `json:"majorAchievements"`
	OfferLetterfileUploadDownloadDTO  any                       `json:"offerLetterfileUploadDownloadDTO"`
}

// JobDetailDTO 岗位申请信息，除固定默认值外均为空置位
type JobDetailDTO struct {
	EmpApplnEntriesId          int        `json:"empApplnEntriesId"`
	PostAppliedFor             string     `json:"postAppliedFor"`
	SubjectCategoryIds         [][]string `json:"subjectCategoryIds"`
	SpecializationIds          any        `json:"specializationIds"`
	EmpApplnSubjectCategoryDTO []any      `json:"empApplnSubjectCategoryDTO"`
	PreferredLocationIds       []any      `json:"preferredLocationIds"`
	EmpDTO                     any        `json:"empDTO"`
	EmpJobDetails              any        `json:"empJobDetails"`
	ErpRoomEmpMappingDTO       any        `json:"erpRoomEmpMappingDTO"`
	EmpGuestContractDetailsDTO any        `json:"empGuestContractDetailsDTO"`
	SubjectCategory            any        `json:"subjectCategory"`
	SubjectSpecialization      any        `json:"subjectSpecialization"`
	EmpApplnCampusPrefDTOList  any        `json:"empApplnCampusPrefDTOList"`
}

// PersonalDataDTO 个人信息块。同一结构同时用于empApplnPersonalDataDTO
// 和addressDetailDTO两个位置：前者填充身份字段、后者只填充地址字段，
// 其余字段保持null。
type PersonalDataDTO struct {
	EmpApplnPersonalDataId    int     `json:"empApplnPersonalDataId"`
	EmpApplnEntriesId         int     `json:"empApplnEntriesId"`
	ApplicantName             *string `json:"applicantName"`
	GenderId                  *string `json:"genderId"`
	FatherName                *string `json:"fatherName"`
	MotherName                *string `json:"motherName"`
	DateOfBirth               *string `json:"dateOfBirth"`
	EmailId                   *string `json:"emailId"`
	MobileNoCountryCode       *string `json:"mobileNoCountryCode"`
	MobileNo                  *string `json:"mobileNo"`
	AlternateNo               *string `json:"alternateNo"`
	AadharNo                  *string `json:"aadharNo"`
	MaritalStatusId           *string `json:"maritalStatusId"`
	NationalityId             *string `json:"nationalityId"`
	PassportNo                *string `json:"passportNo"`
	ReligionId                *string `json:"religionId"`
	IsMinority                *string `json:"isMinority"`
	ReservationCategoryId     *string `json:"reservationCategoryId"`
	BloodGroupId              *string `json:"bloodGroupId"`
	IsDifferentlyAbled        *string `json:"isDifferentlyAbled"`
	DifferentlyAbledId        *string `json:"differentlyAbledId"`
	DifferentlyAbledDetails   *string `json:"differentlyAbledDetails"`
	CurrentAddressLine1       *string `json:"currentAddressLine1"`
	CurrentAddressLine2       *string `json:"currentAddressLine2"`
	CurrentCountryId          *string `json:"currentCountryId"`
	CurrentStateId            *string `json:"currentStateId"`
	CurrentStateOthers        *string `json:"currentStateOthers"`
	CurrentCityId             *string `json:"currentCityId"`
	CurrentCityOthers         *string `json:"currentCityOthers"`
	CurrentPincode            *string `json:"currentPincode"`
	IsPermanentEqualsCurrent  *string `json:"isPermanentEqualsCurrent"`
	PermanentAddressLine1     *string `json:"permanentAddressLine1"`
	PermanentAddressLine2     *string `json:"permanentAddressLine2"`
	PermanentCountryId        *string `json:"permanentCountryId"`
	PermanentStateId          *string `json:"permanentStateId"`
	PermanentStateOthers      *string `json:"permanentStateOthers"`
	PermanentCityId           *string `json:"permanentCityId"`
	PermanentCityOthers       *string `json:"permanentCityOthers"`
	PermanentPincode          *string `json:"permanentPincode"`
	ProfilePhotoUrl           *string `json:"profilePhotoUrl"`
	IsUanNo                   *string `json:"isUanNo"`
	UanNo                     *string `json:"uanNo"`
	HighestQualificationLevel *string `json:"highestQualificationLevel"`
	OriginalFileName          *string `json:"originalFileName"`
	UniqueFileName            *string `json:"uniqueFileName"`
	NewFile                   *bool   `json:"newFile"`
	ProcessCode               *string `json:"processCode"`
	ActualPath                *string `json:"actualPath"`
	TempPath                  *string `json:"tempPath"`
	OrcidNo                   *string `json:"orcidNo"`
	VidwanNo                  *string `json:"vidwanNo"`
	ScopusNo                  *string `json:"scopusNo"`
	ResumeUploadDTO           any     `json:"resumeUploadDTO"`
	ResumeUrl                 *string `json:"resumeUrl"`
	HindexNo                  *string `json:"hindexNo"`
}

// EducationalDetailDTO 教育信息段
type EducationalDetailDTO struct {
	HighestQualificationLevelId      *string              `json:"highestQualificationLevelId"`
	HighestQualificationAlbum        any                  `json:"highestQualificationAlbum"`
	HighestQualification             any                  `json:"highestQualification"`
	QualificationLevelsList          []QualificationLevel `json:"qualificationLevelsList"`
	EligibilityTestList              any                  `json:"eligibilityTestList"`
	OtherQualificationLevelsList     any                  `json:"otherQualificationLevelsList"`
	EmpEducationalDetailsMap         map[string]any       `json:"empEducationalDetailsMap"`
	EligibilityTestDetails           any                  `json:"eligibilityTestDetails"`
	EmpEducationalDetailsDTOS        any                  `json:"empEducationalDetailsDTOS"`
	StudentEducationalDetailsDTOList any                  `json:"studentEducationalDetailsDTOList"`
}

// QualificationLevel 单条教育经历
type QualificationLevel struct {
	EmpApplnEducationalDetailsId int     `json:"empApplnEducationalDetailsId"`
	EmpApplnEntriesId            int     `json:"empApplnEntriesId"`
	QualificationName            any     `json:"qualificationName"`
	QualificationLevelId         string  `json:"qualificationLevelId"`
	QualificationOthers          any     `json:"qualificationOthers"`
	CurrentStatus                *string `json:"currentStatus"`
	Course                       string  `json:"course"`
	Specialization               string  `json:"specialization"`
	YearOfCompletion             string  `json:"yearOfCompletion"`
	GradeOrPercentage            string  `json:"gradeOrPercentage"`
	Institute                    string  `json:"institute"`
	BoardOrUniversity            string  `json:"boardOrUniversity"`
	DocumentList                 []any   `json:"documentList"`
	QualificationLevelName       any     `json:"qualificationLevelName"`
	CountryId                    string  `json:"countryId"`
	StateId                      string  `json:"stateId"`
	StateOther                   any     `json:"stateOther"`
	ErpInstitute                 any     `json:"erpInstitute"`
	ErpBoardOrUniversity         any     `json:"erpBoardOrUniversity"`
	QualificationLevelCode       any     `json:"qualificationLevelCode"`
	CountryName                  any     `json:"countryName"`
	StateName                    any     `json:"stateName"`
}

// ProfessionalExperienceDTO 工作经历段
type ProfessionalExperienceDTO struct {
	IsCurrentlyWorking                    string                `json:"isCurrentlyWorking"`
	CurrentExperience                     *CurrentExperienceDTO `json:"currentExperience"`
	ProfessionalExperienceList            any                   `json:"professionalExperienceList"`
	TotalPreviousExperienceYears          string                `json:"totalPreviousExperienceYears"`
	TotalPreviousExperienceMonths         string                `json:"totalPreviousExperienceMonths"`
	TotalPartTimePreviousExperienceYears  string                `json:"totalPartTimePreviousExperienceYears"`
	TotalPartTimePreviousExperienceMonths string                `json:"totalPartTimePreviousExperienceMonths"`
	RecognisedExpYears                    any                   `json:"recognisedExpYears"`
	RecognisedExpMonths                   any                   `json:"recognisedExpMonths"`
	FullTimeYears                         any                   `json:"fullTimeYears"`
	FullTimeMonths                        any                   `json:"fullTimeMonths"`
	PartTimeYears                         any                   `json:"partTimeYears"`
	PartTimeMonths                        any                   `json:"partTimeMonths"`
	MajorAchievements                     any                   `json:"majorAchievements"`
	ExpectedSalary                        any                   `json:"expectedSalary"`
	ExperienceInformation                 any                   `json:"experienceInformation"`
	MajorAchievementsList                 any                   `json:"majorAchievementsList"`
}

// CurrentExperienceDTO 当前在职经历。fromDate/toDate为[年,月,日]数组，
// 无法解析或仍在进行中时为null。
type CurrentExperienceDTO struct {
	EmpApplnWorkExperienceId int    `json:"empApplnWorkExperienceId"`
	EmpApplnEntriesId        int    `json:"empApplnEntriesId"`
	WorkExperienceTypeId     string `json:"workExperienceTypeId"`
	FunctionalAreaId         string `json:"functionalAreaId"`
	FunctionalAreaOthers     any    `json:"functionalAreaOthers"`
	EmploymentType           string `json:"employmentType"`
	Designation              string `json:"designation"`
	Years                    string `json:"years"`
	Months                   string `json:"months"`
	NoticePeriod             string `json:"noticePeriod"`
	CurrentSalary            string `json:"currentSalary"`
	Institution              string `json:"institution"`
	ExperienceDocumentList   []any  `json:"experienceDocumentList"`
	FunctionalArea           any    `json:"functionalArea"`
	FromDate                 []int  `json:"fromDate"`
	ToDate                   []int  `json:"toDate"`
	IsPartTime               any    `json:"isPartTime"`
	IsCurrentExperience      any    `json:"isCurrentExperience"`
}

// ResearchDetailDTO 科研经历段，只传递是否有科研经历的标志
type ResearchDetailDTO struct {
	IsResearchExperience           string          `json:"isResearchExperience"`
	InflibnetVidwanNo              any             `json:"inflibnetVidwanNo"`
	ScopusId                       any             `json:"scopusId"`
	HIndex                         any             `json:"hIndex"`
	ResearchEntries                ResearchEntries `json:"researchEntries"`
	IsInterviewedBefore            string          `json:"isInterviewedBefore"`
	InterviewedBeforeDepartment    any             `json:"interviewedBeforeDepartment"`
	InterviewedBeforeYear          any             `json:"interviewedBeforeYear"`
	InterviewedBeforeApplicationNo any             `json:"interviewedBeforeApplicationNo"`
	InterviewedBeforeSubject       any             `json:"interviewedBeforeSubject"`
	VacancyInformationId           string          `json:"vacancyInformationId"`
	AboutVacancyOthers             any             `json:"aboutVacancyOthers"`
	OtherInformation               any             `json:"otherInformation"`
	OrcidId                        any             `json:"orcidId"`
	Hindex                         any             `json:"hindex"`
}

// ResearchEntries 科研条目占位结构
type ResearchEntries struct {
	EmpApplnAddtnlInfoEntriesId any     `json:"empApplnAddtnlInfoEntriesId"`
	IsResearchExperience        *string `json:"isResearchExperience"`
	ResearchEntriesHeadings     any     `json:"researchEntriesHeadings"`
	EntriesId                   any     `json:"entriesId"`
	ParameterId                 any     `json:"parameterId"`
	AddtnlInfoValue             any     `json:"addtnlInfoValue"`
}

// AdditionalInfoDTO 附加信息段，空容器和空字符串折叠为null
type AdditionalInfoDTO struct {
	ProfileSummary *string  `json:"profile_summary"`
	Skills         []string `json:"skills"`
	Awards         []string `json:"awards"`
	Publications   []string `json:"publications"`
	Conferences    []string `json:"conferences"`
	Collaborators  []string `json:"collaborators"`
	Languages      []string `json:"languages"`
	Certifications []string `json:"certifications"`
	VolunteerWork  []string `json:"volunteer_work"`
}
