package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMaskPhone(t *testing.T) {
	testCases := []struct {
		name  string
		phone string
		want  string
	}{
		{
			name:  "Normal phone",
			phone: "13812345678",
			want:  "138****5678",
		},
		{
			name:  "Already masked",
			phone: "138****1234",
			want:  "138****1234",
		},
		{
			name:  "Empty",
			phone: "",
			want:  "",
		},
		{
			name:  "Wrong length kept as-is",
			phone: "1381234",
			want:  "1381234",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, MaskPhone(tc.phone))
		})
	}
}

func TestMaskName(t *testing.T) {
	require.Equal(t, "张*", MaskName("张三"))
	require.Equal(t, "欧***", MaskName("欧阳娜娜"))
	require.Equal(t, "张", MaskName("张"))
	require.Equal(t, "", MaskName(""))
}

func TestMaskAddress(t *testing.T) {
	require.Equal(t, "短地址", MaskAddress("短地址"))

	long := "广东省深圳市南山区科技园南路100号"
	masked := MaskAddress(long)
	require.Equal(t, "广东省深圳市南山区科***", masked)
}
