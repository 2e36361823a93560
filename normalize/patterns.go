package normalize

import (
	"regexp"
	"strings"
)

var (
	// 手机号：11位大陆手机号，允许空格/短横线/星号分隔，支持 +86 前缀
	phoneRe = regexp.MustCompile(`(?:1[3-9]\d[\s\-*]?\d{4}[\s\-*]?\d{4})|(?:\+\d{1,3}[\s\-]?1[3-9]\d[\s\-*]?\d{4}[\s\-*]?\d{4})`)
	// 已脱敏手机号：中间四位为星号，原样保留
	maskedPhoneRe = regexp.MustCompile(`1[3-9]\d\*{4}\d{4}`)
	// 手机号核心段（脱敏字符与数字等价）
	phoneCoreRe = regexp.MustCompile(`1[3-9][\d*]{9}`)

	// 分机号：转/分机/ext 标记后 3-6 位数字
	phoneExtRe = regexp.MustCompile(`(?i)(?:转[#:：]?\s*|分机[码:：]?\s*|ext[.:]?\s*)(\d{3,6})`)

	// 姓名：1-3 个汉字后紧跟另一个汉字，中间允许一个星号或空白
	nameRe = regexp.MustCompile(`[\x{4e00}-\x{9fa5}]{1,3}[*\s]?[\x{4e00}-\x{9fa5}]`)

	// 省市区：按行政区划后缀独立匹配
	provinceRe = regexp.MustCompile(`\S+?(?:省|自治区)`)
	cityRe     = regexp.MustCompile(`\S+?(?:市|自治州|地区|盟)`)
	// 区县用窄后缀集，"市" 后缀与城市重叠，单独兜底处理。
	// 后缀必须落在词尾（后面不能再接汉字），否则"区划"、"小区环境"
	// 这类普通词语会被误认成区划。
	districtRe     = regexp.MustCompile(`(\S+?[区县旗])(?:[^\p{Han}]|$)`)
	districtCityRe = regexp.MustCompile(`\S+?市`)

	// 物流单号：显式前缀或裸单号（2字母+9-13数字+0-2字母）
	logisticsPrefixRe = regexp.MustCompile(`(?i)(?:物流|运单|快递)[\s:：]?\s*([A-Z0-9]{10,15})`)
	logisticsBareRe   = regexp.MustCompile(`\b[A-Z]{2}\d{9,13}[A-Z]{0,2}\b`)
)

// platformKeywords 平台关键词，按序匹配，首个命中生效
var platformKeywords = []struct {
	keywords []string
	platform string
}{
	{[]string{"淘宝", "天猫"}, "淘宝/天猫"},
	{[]string{"拼多多"}, "拼多多"},
	{[]string{"抖音"}, "抖音"},
	{[]string{"京东"}, "京东"},
}

func extractPhone(text string) string {
	if m := maskedPhoneRe.FindString(text); m != "" {
		return m
	}
	m := phoneRe.FindString(text)
	if m == "" {
		return ""
	}
	cleaned := strings.NewReplacer(" ", "", "\t", "", "-", "", "+", "").Replace(m)
	core := phoneCoreRe.FindString(cleaned)
	if len(core) != 11 {
		return ""
	}
	return core[:3] + "****" + core[7:]
}

func extractPhoneExt(text string) string {
	if m := phoneExtRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

func extractName(text string) string {
	m := nameRe.FindString(text)
	if m == "" {
		return ""
	}
	return maskName(strings.ReplaceAll(m, " ", "*"))
}

// maskName 仅保留首字，其余以星号代替
func maskName(name string) string {
	runes := []rune(name)
	if len(runes) == 0 {
		return ""
	}
	return string(runes[0]) + strings.Repeat("*", len(runes)-1)
}

func extractRegion(text string) (province, city, district string) {
	province = provinceRe.FindString(text)
	city = cityRe.FindString(text)

	for _, m := range districtRe.FindAllStringSubmatch(text, -1) {
		cand := m[1]
		// 自治区后缀会被窄模式误中，排除省级匹配
		if cand == province || cand == city || strings.HasSuffix(cand, "自治区") {
			continue
		}
		district = cand
		break
	}
	if district == "" {
		// 兜底："市" 结尾的区划取与城市不同的那一个
		for _, cand := range districtCityRe.FindAllString(text, -1) {
			if cand == city || cand == province {
				continue
			}
			district = cand
			break
		}
	}
	return province, city, district
}

func extractLogisticsCode(text string) string {
	if m := logisticsPrefixRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return logisticsBareRe.FindString(text)
}

func extractPlatform(text string) string {
	for _, entry := range platformKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(text, kw) {
				return entry.platform
			}
		}
	}
	return ""
}
