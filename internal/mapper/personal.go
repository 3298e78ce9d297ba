package mapper

import (
	"resume-structurer-go/internal/masterdata"
	"resume-structurer-go/internal/types"
)

// 个人信息段的固定默认值
const (
	defaultMobileCountryCode     = "+91"
	defaultNationality           = "India"
	defaultReservationCategoryId = "3"
	defaultCountryId             = "1"
)

// mapPersonalData 把个人信息映射到empApplnPersonalDataDTO：
// 直接字段拷贝加主数据解析，少数标志位取固定默认值
func mapPersonalData(info types.PersonalInfo, master *masterdata.Index) types.PersonalDataDTO {
	nationality := info.Nationality
	if nationality == "" {
		nationality = defaultNationality
	}

	newFile := false

	return types.PersonalDataDTO{
		ApplicantName:         strPtr(info.Name),
		GenderId:              strPtr(master.Resolve("gender", info.Gender)),
		DateOfBirth:           FormatDateOfBirth(info.DateOfBirth),
		EmailId:               strPtr(info.Email),
		MobileNoCountryCode:   strPtr(defaultMobileCountryCode),
		MobileNo:              strPtr(info.Phone),
		AadharNo:              strPtr(info.AadharNo),
		MaritalStatusId:       strPtr(master.Resolve("marital_status", info.MaritalStatus)),
		NationalityId:         strPtr(master.Resolve("country", nationality)),
		PassportNo:            strPtr(info.PassportNo),
		ReligionId:            strPtr(master.Resolve("religion", info.Religion)),
		IsMinority:            strPtr("No"),
		ReservationCategoryId: strPtr(defaultReservationCategoryId),
		BloodGroupId:          strPtr(master.Resolve("blood_group", info.BloodGroup)),
		IsDifferentlyAbled:    strPtr("No"),
		NewFile:               &newFile,
	}
}

// mapAddressData 把地址映射到addressDetailDTO：同一地址同时写入
// 当前与永久地址块，并以isPermanentEqualsCurrent标记两者相同；
// 国家默认为印度
func mapAddressData(info types.PersonalInfo) types.PersonalDataDTO {
	return types.PersonalDataDTO{
		CurrentAddressLine1:      strPtr(info.Address),
		CurrentCountryId:         strPtr(defaultCountryId),
		IsPermanentEqualsCurrent: strPtr("Yes"),
		PermanentAddressLine1:    strPtr(info.Address),
		PermanentCountryId:       strPtr(defaultCountryId),
	}
}

func strPtr(s string) *string {
	return &s
}
