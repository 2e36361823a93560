package util

import "strings"

// 脱敏辅助函数。平台存储和返回的买家身份信息一律脱敏，
// 原始手机号/姓名不落库。

const maskChar = "*"

// MaskPhone 脱敏手机号：13812345678 -> 138****5678。
// 已脱敏的输入（含 * 号）原样返回。
func MaskPhone(phone string) string {
	if phone == "" {
		return ""
	}
	if strings.Contains(phone, maskChar) {
		return phone
	}
	runes := []rune(phone)
	if len(runes) != 11 {
		return phone
	}
	return string(runes[:3]) + "****" + string(runes[7:])
}

// MaskName 脱敏姓名：张三 -> 张*，欧阳娜娜 -> 欧***。
func MaskName(name string) string {
	runes := []rune(name)
	if len(runes) <= 1 {
		return name
	}
	return string(runes[0]) + strings.Repeat(maskChar, len(runes)-1)
}

// MaskAddress 脱敏详细地址：保留前10个字符，其余截断。
func MaskAddress(address string) string {
	runes := []rune(address)
	if len(runes) <= 10 {
		return address
	}
	return string(runes[:10]) + "***"
}
