package fingerprint

import (
	"testing"

	"github.com/maizecandy/seller-help/normalize"
	"github.com/stretchr/testify/require"
)

func TestResolveDeterministic(t *testing.T) {
	rec := normalize.NormalizedRecord{
		Phone:    "138****1234",
		PhoneExt: "8001",
		Province: "广东省",
		City:     "深圳市",
	}

	fp1 := Resolve(rec)
	fp2 := Resolve(rec)
	require.Equal(t, fp1, fp2)
	require.Len(t, string(fp1), 64)
}

func TestResolveAbsentNotEmpty(t *testing.T) {
	// 缺失字段要与任何真实取值区分开
	absent := Resolve(normalize.NormalizedRecord{Phone: "138****1234"})
	withExt := Resolve(normalize.NormalizedRecord{Phone: "138****1234", PhoneExt: "8001"})
	require.NotEqual(t, absent, withExt)

	// 字段边界不可产生歧义拼接
	a := Resolve(normalize.NormalizedRecord{Province: "广东", City: "省深圳市"})
	b := Resolve(normalize.NormalizedRecord{Province: "广东省", City: "深圳市"})
	require.NotEqual(t, a, b)
}

func TestResolvePhoneCanonicalization(t *testing.T) {
	masked := Resolve(normalize.NormalizedRecord{Phone: "138****1234"})
	spaced := Resolve(normalize.NormalizedRecord{Phone: "138 **** 1234"})
	require.Equal(t, masked, spaced)

	other := Resolve(normalize.NormalizedRecord{Phone: "138****5678"})
	require.NotEqual(t, masked, other)
}

func TestResolveIgnoresVolatileFields(t *testing.T) {
	base := normalize.NormalizedRecord{Phone: "139****0000", Province: "浙江省", City: "杭州市"}
	withExtras := base
	withExtras.Name = "王*"
	withExtras.District = "西湖区"
	withExtras.Address = "文一西路969号"
	withExtras.LogisticsCode = "YT1234567890123"
	withExtras.Platform = "淘宝/天猫"

	require.Equal(t, Resolve(base), Resolve(withExtras))
}

func TestResolveAllAbsent(t *testing.T) {
	fp := Resolve(normalize.NormalizedRecord{})
	require.Len(t, string(fp), 64)
	require.NotEqual(t, fp, Resolve(normalize.NormalizedRecord{Phone: "138****1234"}))
}
