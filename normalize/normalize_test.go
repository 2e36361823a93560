package normalize

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeFullText(t *testing.T) {
	n := NewNormalizer(nil)

	rec := n.Normalize(context.Background(), "张三 138****1234 广东省 深圳市 南山区 物流:SF1234567890 拼多多")
	require.Equal(t, "张*", rec.Name)
	require.Equal(t, "138****1234", rec.Phone)
	require.Equal(t, "广东省", rec.Province)
	require.Equal(t, "深圳市", rec.City)
	require.Equal(t, "南山区", rec.District)
	require.Equal(t, "SF1234567890", rec.LogisticsCode)
	require.Equal(t, "拼多多", rec.Platform)
	require.Equal(t, SourcePattern, rec.Source)
}

func TestNormalizeNeverFails(t *testing.T) {
	n := NewNormalizer(nil)

	testCases := []struct {
		name string
		text string
	}{
		{name: "Empty", text: ""},
		{name: "Whitespace only", text: "   \n\t  "},
		{name: "Garbage ascii", text: "!@#$%^&*()_+ qwerty"},
		{name: "Very long digits", text: "999999999999999999999999999999"},
		{name: "Mixed emoji", text: "🙂🚀💥 hello 世"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := n.Normalize(context.Background(), tc.text)
			require.Equal(t, SourcePattern, rec.Source)
		})
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	n := NewNormalizer(nil)

	rec := n.Normalize(context.Background(), "")
	require.Empty(t, rec.Name)
	require.Empty(t, rec.Phone)
	require.Empty(t, rec.PhoneExt)
	require.Empty(t, rec.Province)
	require.Empty(t, rec.City)
	require.Empty(t, rec.District)
	require.Empty(t, rec.LogisticsCode)
	require.Empty(t, rec.Platform)
}

func TestExtractPhone(t *testing.T) {
	testCases := []struct {
		name string
		text string
		want string
	}{
		{
			name: "Plain 11 digits masked on output",
			text: "联系电话13812345678请尽快处理",
			want: "138****5678",
		},
		{
			name: "Already masked preserved",
			text: "买家 138****5678",
			want: "138****5678",
		},
		{
			name: "Dash separated",
			text: "138-1234-5678",
			want: "138****5678",
		},
		{
			name: "Space separated",
			text: "电话 138 1234 5678",
			want: "138****5678",
		},
		{
			name: "With country code",
			text: "+86 13912345678",
			want: "139****5678",
		},
		{
			name: "Invalid second digit",
			text: "12812345678",
			want: "",
		},
		{
			name: "No phone",
			text: "地址广东省深圳市",
			want: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, extractPhone(tc.text))
		})
	}
}

func TestExtractPhoneExt(t *testing.T) {
	testCases := []struct {
		name string
		text string
		want string
	}{
		{name: "转 marker", text: "13812345678转1234", want: "1234"},
		{name: "转 with colon", text: "13812345678 转:5678", want: "5678"},
		{name: "分机 marker", text: "分机码 888123", want: "888123"},
		{name: "ext marker", text: "call ext. 042", want: "042"},
		{name: "Too short", text: "转12", want: ""},
		{name: "Absent", text: "没有分机", want: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, extractPhoneExt(tc.text))
		})
	}
}

func TestExtractName(t *testing.T) {
	testCases := []struct {
		name string
		text string
		want string
	}{
		{name: "Two chars", text: "张三 13812345678", want: "张*"},
		{name: "Three chars", text: "欧阳锋 13812345678", want: "欧**"},
		{name: "Masked middle", text: "李*明", want: "李**"},
		{name: "No cjk", text: "hello world", want: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, extractName(tc.text))
		})
	}
}

func TestExtractRegion(t *testing.T) {
	province, city, district := extractRegion("广东省 深圳市 南山区")
	require.Equal(t, "广东省", province)
	require.Equal(t, "深圳市", city)
	require.Equal(t, "南山区", district)

	province, city, district = extractRegion("内蒙古自治区 锡林郭勒盟 二连浩特市")
	require.Equal(t, "内蒙古自治区", province)
	require.Equal(t, "锡林郭勒盟", city)
	require.Equal(t, "二连浩特市", district)

	province, city, district = extractRegion("没有区划信息")
	require.Empty(t, province)
	require.Empty(t, city)
	require.Empty(t, district)

	// 普通词语里的"区"不算区划
	_, _, district = extractRegion("小区环境很差")
	require.Empty(t, district)
}

func TestExtractLogisticsCode(t *testing.T) {
	testCases := []struct {
		name string
		text string
		want string
	}{
		{name: "Prefixed", text: "快递: YT7788990011223", want: "YT7788990011223"},
		{name: "Prefixed chinese colon", text: "物流：SF1234567890", want: "SF1234567890"},
		{name: "Bare waybill", text: "单号SF1234567890AB已签收", want: "SF1234567890AB"},
		{name: "Too short", text: "SF12345", want: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, extractLogisticsCode(tc.text))
		})
	}
}

func TestExtractPlatform(t *testing.T) {
	require.Equal(t, "淘宝/天猫", extractPlatform("天猫旗舰店订单"))
	require.Equal(t, "淘宝/天猫", extractPlatform("淘宝买家"))
	require.Equal(t, "拼多多", extractPlatform("拼多多仅退款"))
	require.Equal(t, "抖音", extractPlatform("抖音小店"))
	require.Equal(t, "京东", extractPlatform("京东自营"))
	require.Empty(t, extractPlatform("线下交易"))
}

type stubExtractor struct {
	fields *RawFields
	err    error
}

func (s *stubExtractor) ParseText(ctx context.Context, text string) (*RawFields, error) {
	return s.fields, s.err
}

func TestNormalizeWithExtractor(t *testing.T) {
	n := NewNormalizer(&stubExtractor{
		fields: &RawFields{
			Name:    "王小明",
			Phone:   "13712345678",
			Address: "科技园路1号",
		},
	})

	rec := n.Normalize(context.Background(), "王小明 13712345678 拼多多")
	require.Equal(t, SourceAI, rec.Source)
	require.Equal(t, "王**", rec.Name)
	require.Equal(t, "137****5678", rec.Phone)
	require.Equal(t, "科技园路1号", rec.Address)
	// 抽取服务缺失的字段由正则规则补齐
	require.Equal(t, "拼多多", rec.Platform)
}

func TestNormalizeExtractorFailureFallsBack(t *testing.T) {
	n := NewNormalizer(&stubExtractor{err: errors.New("upstream timeout")})

	rec := n.Normalize(context.Background(), "张三 13812345678")
	require.Equal(t, SourcePattern, rec.Source)
	require.Equal(t, "张*", rec.Name)
	require.Equal(t, "138****5678", rec.Phone)
}

func TestNormalizeFields(t *testing.T) {
	n := NewNormalizer(nil)

	rec := n.NormalizeFields(RawFields{
		Name:     "赵四",
		Phone:    "13512345678",
		Province: "辽宁省",
		City:     "铁岭市",
	})
	require.Equal(t, SourceManual, rec.Source)
	require.Equal(t, "赵*", rec.Name)
	require.Equal(t, "135****5678", rec.Phone)
	require.Equal(t, "辽宁省", rec.Province)
	require.Equal(t, "铁岭市", rec.City)
}
