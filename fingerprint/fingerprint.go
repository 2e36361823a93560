package fingerprint

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"hash"
	"strings"

	"github.com/maizecandy/seller-help/normalize"
)

// Fingerprint 买家指纹：对归一化字段元组做 SHA-256 后的十六进制串
type Fingerprint string

// absentSentinel 缺失字段的占位值，与空字符串区分，避免哈希碰撞
const absentSentinel = "\x00absent\x00"

// Resolve 从归一化记录推导买家指纹。纯函数，无 I/O。
// 参与哈希的元组固定为（手机号规范形、分机号、省、市），
// 其余字段波动大，不参与身份判定。
// 指纹只做精确匹配，同一买家换号或区划粒度不同会产生不同指纹。
func Resolve(rec normalize.NormalizedRecord) Fingerprint {
	h := sha256.New()
	writeField(h, canonicalPhone(rec.Phone))
	writeField(h, fieldOrSentinel(rec.PhoneExt))
	writeField(h, fieldOrSentinel(rec.Province))
	writeField(h, fieldOrSentinel(rec.City))
	return Fingerprint(hex.EncodeToString(h.Sum(nil)))
}

// canonicalPhone 只保留数字与脱敏星号，脱敏前后可见数字相同的号码归并为同一指纹
func canonicalPhone(phone string) string {
	if phone == "" {
		return absentSentinel
	}
	var b strings.Builder
	for _, r := range phone {
		if (r >= '0' && r <= '9') || r == '*' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return absentSentinel
	}
	return b.String()
}

func fieldOrSentinel(s string) string {
	if s == "" {
		return absentSentinel
	}
	return s
}

// writeField 写入长度前缀再写字段内容，保证元组边界无歧义
func writeField(h hash.Hash, field string) {
	var lenBuf [8]byte
	binary.BigEndian.PutUint64(lenBuf[:], uint64(len(field)))
	h.Write(lenBuf[:])
	h.Write([]byte(field))
}
