package util

import (
	"fmt"
	"math/rand"
	"strings"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// RandomInt generates a random integer between min and max.
func RandomInt(min, max int64) int64 {
	return min + rand.Int63n(max-min+1)
}

// RandomString generates a random string of length n.
func RandomString(n int) string {
	var sb strings.Builder
	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[rand.Intn(k)]
		sb.WriteByte(c)
	}

	return sb.String()
}

// RandomPhone 生成随机的11位手机号（13x号段）
func RandomPhone() string {
	return fmt.Sprintf("13%09d", RandomInt(0, 999999999))
}

// RandomShopName 生成随机店铺名
func RandomShopName() string {
	return RandomString(6) + "旗舰店"
}
