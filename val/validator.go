package val

import (
	"fmt"
	"regexp"
)

var (
	isValidPhone       = regexp.MustCompile(`^1[3-9]\d{9}$`).MatchString
	isValidMaskedPhone = regexp.MustCompile(`^1[3-9]\d\*{4}\d{4}$`).MatchString
	isValidPhoneExt    = regexp.MustCompile(`^\d{3,6}$`).MatchString
)

// ValidateString 校验字符串长度范围
func ValidateString(value string, minLength int, maxLength int) error {
	n := len(value)
	if n < minLength || n > maxLength {
		return fmt.Errorf("must contain from %d-%d characters", minLength, maxLength)
	}
	return nil
}

// ValidatePhone 校验11位大陆手机号（1开头，第二位3-9）
func ValidatePhone(value string) error {
	if !isValidPhone(value) {
		return fmt.Errorf("must be a valid 11-digit mobile number")
	}
	return nil
}

// ValidateSearchPhone 校验查询用手机号：接受完整号码或已脱敏号码（138****1234）
func ValidateSearchPhone(value string) error {
	if isValidPhone(value) || isValidMaskedPhone(value) {
		return nil
	}
	return fmt.Errorf("must be a full or masked 11-digit mobile number")
}

// ValidatePhoneExt 校验分机号（3-6位数字）
func ValidatePhoneExt(value string) error {
	if !isValidPhoneExt(value) {
		return fmt.Errorf("must be 3-6 digits")
	}
	return nil
}

// ValidatePassword 校验密码长度
func ValidatePassword(value string) error {
	return ValidateString(value, 6, 64)
}

// ValidateShopName 校验店铺名
func ValidateShopName(value string) error {
	return ValidateString(value, 2, 100)
}
