package mapper

import (
	"strings"

	"resume-structurer-go/internal/types"
)

// maxAwardLength 奖项名称的长度上限，超过后做缩短处理
const maxAwardLength = 80

// mapAdditionalInfo 把附加信息映射到additionalInformations段：
// 技能/出版物/语言等直接透传，空容器和空字符串折叠为null，
// 过长的奖项名称做缩短处理。
func mapAdditionalInfo(info types.AdditionalInformation) *types.AdditionalInfoDTO {
	var profileSummary *string
	if info.ProfileSummary != "" {
		profileSummary = strPtr(info.ProfileSummary)
	}

	return &types.AdditionalInfoDTO{
		ProfileSummary: profileSummary,
		Skills:         nilIfEmpty(info.Skills),
		Awards:         normalizeAwards(nilIfEmpty(info.Awards)),
		Publications:   nilIfEmpty(info.Publications),
		Conferences:    nilIfEmpty(info.Conferences),
		Collaborators:  nilIfEmpty(info.Collaborators),
		Languages:      nilIfEmpty(info.Languages),
		Certifications: nilIfEmpty(info.Certifications),
		VolunteerWork:  nilIfEmpty(info.VolunteerWork),
	}
}

// normalizeAwards 缩短过长的奖项名称。超过80字符时：
// 文本含"award"则在其首次出现处切分，保留前缀加"Award"，
// 剩余说明放入括号（原文没有括号时补上）；不含"award"则
// 硬截断到80字符并追加省略号。
func normalizeAwards(awards []string) []string {
	if len(awards) == 0 {
		return awards
	}

	normalized := make([]string, 0, len(awards))
	for _, award := range awards {
		runes := []rune(award)
		if len(runes) <= maxAwardLength {
			normalized = append(normalized, award)
			continue
		}

		if strings.Contains(strings.ToLower(award), "award") {
			parts := strings.SplitN(award, "award", 2)
			if len(parts) > 1 {
				mainPart := strings.TrimSpace(parts[0]) + " Award"
				descPart := strings.TrimSpace(parts[1])
				if descPart != "" && !strings.HasPrefix(descPart, "(") {
					normalized = append(normalized, mainPart+" ("+descPart+")")
				} else {
					normalized = append(normalized, mainPart+" "+descPart)
				}
			} else {
				// "award"只以其他大小写形态出现，切分不动原文
				normalized = append(normalized, award)
			}
			continue
		}

		normalized = append(normalized, string(runes[:maxAwardLength])+"...")
	}

	return normalized
}

// nilIfEmpty 空列表折叠为nil，序列化后即null
func nilIfEmpty(items types.StringList) []string {
	if len(items) == 0 {
		return nil
	}
	return items
}
