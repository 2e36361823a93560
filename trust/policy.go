package trust

import "fmt"

// ShopSignals 插件从商家后台抓取的店铺信号
type ShopSignals struct {
	Platform     string  `json:"platform"`
	ShopID       string  `json:"shop_id"`
	ShopName     string  `json:"shop_name"`
	MainCategory string  `json:"main_category"`
	OpenDays     int32   `json:"open_days"`
	DSR          float64 `json:"dsr"`
	TotalReviews int32   `json:"total_reviews"`
}

// shopPolicy 单个平台的自动通过门槛
type shopPolicy struct {
	MinOpenDays  int32
	MinDSR       float64
	MinReviews   int32
	PlatformName string
}

// shopPolicies 店铺产权认证策略表。
// 开店不足门槛天数算新店，新店一律转人工；京东评分为10分制。
var shopPolicies = map[string]shopPolicy{
	"taobao":    {MinOpenDays: 90, MinDSR: 4.5, MinReviews: 50, PlatformName: "淘宝/天猫"},
	"pinduoduo": {MinOpenDays: 90, MinDSR: 4.5, MinReviews: 100, PlatformName: "拼多多"},
	"douyin":    {MinOpenDays: 90, MinDSR: 4.0, MinReviews: 30, PlatformName: "抖音"},
	"jd":        {MinOpenDays: 180, MinDSR: 9.0, MinReviews: 50, PlatformName: "京东"},
}

// evaluateShop 按策略表判定店铺信号，返回是否通过与可读原因
func evaluateShop(shop ShopSignals) (bool, string) {
	policy, ok := shopPolicies[shop.Platform]
	if !ok {
		return false, fmt.Sprintf("暂不支持的平台 %q，已转人工审核", shop.Platform)
	}
	if shop.ShopID == "" || shop.ShopName == "" {
		return false, "店铺信息不完整，已转人工审核"
	}
	if shop.OpenDays < policy.MinOpenDays {
		return false, fmt.Sprintf("%s店铺开店%d天，未满%d天，已转人工审核", policy.PlatformName, shop.OpenDays, policy.MinOpenDays)
	}
	if shop.DSR < policy.MinDSR {
		return false, fmt.Sprintf("%s店铺评分%.2f低于%.2f，已转人工审核", policy.PlatformName, shop.DSR, policy.MinDSR)
	}
	if shop.TotalReviews < policy.MinReviews {
		return false, fmt.Sprintf("%s店铺评价数%d不足%d条，已转人工审核", policy.PlatformName, shop.TotalReviews, policy.MinReviews)
	}
	return true, fmt.Sprintf("%s店铺产权认证通过", policy.PlatformName)
}
