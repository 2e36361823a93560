package trust

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
	db "github.com/maizecandy/seller-help/db/sqlc"
)

// 商家信任等级
const (
	LevelVisitor       int16 = 1 // 仅注册，只读公开数据
	LevelVerified      int16 = 2 // 店铺产权认证通过，可查询与举报
	LevelAuthenticated int16 = 3 // 实名认证通过
)

// 实名认证状态
const (
	RealnameStatusPending  = "pending"
	RealnameStatusApproved = "approved"
	RealnameStatusRejected = "rejected"
)

var (
	// ErrNotVerified 未完成店铺认证就申请实名认证
	ErrNotVerified = errors.New("merchant must pass shop authentication first")
	// ErrUpstreamUnavailable 身份核验服务不可用，可重试
	ErrUpstreamUnavailable = errors.New("identity verification service unavailable")
)

// IdentityVerifier 支付宝实名核验接口。
// 定义在本包以解耦具体网关实现，避免循环依赖。
type IdentityVerifier interface {
	VerifyAccountName(ctx context.Context, account, name string) (bool, error)
}

// BizLicense 营业执照信息
type BizLicense struct {
	CompanyName string `json:"company_name"`
	CreditCode  string `json:"credit_code"`
	LegalPerson string `json:"legal_person"`
}

// PaymentAccount 收款账户信息
type PaymentAccount struct {
	Account    string `json:"account"`
	HolderName string `json:"holder_name"`
}

// Decision 认证判定结果
type Decision struct {
	Passed   bool   `json:"passed"`
	Reason   string `json:"reason"`
	NewLevel int16  `json:"new_level"`
}

// Machine 商家信任等级状态机。
// Visitor(1) → Verified(2) 由店铺产权认证或管理员操作触发；
// Verified(2) → Authenticated(3) 由实名认证触发；
// 任何等级变更都在存储层行锁内完成。
type Machine struct {
	store    db.Store
	verifier IdentityVerifier
}

// NewMachine 创建状态机，verifier 为 nil 时实名认证返回服务不可用
func NewMachine(store db.Store, verifier IdentityVerifier) *Machine {
	return &Machine{store: store, verifier: verifier}
}

// PluginAuth 店铺产权认证。通过则升到 Verified，已是更高等级的不降级；
// 未通过的记录原因等待人工复核，等级不变。
func (m *Machine) PluginAuth(ctx context.Context, merchantID int64, shop ShopSignals) (Decision, error) {
	passed, reason := evaluateShop(shop)

	merchant, err := m.store.UpdateMerchantTrustTx(ctx, db.UpdateMerchantTrustTxParams{
		MerchantID: merchantID,
		Decide: func(current db.Merchant) (db.UpdateMerchantParams, error) {
			update := db.UpdateMerchantParams{
				PluginAuthPassed: pgtype.Bool{Bool: passed, Valid: true},
				PluginAuthReason: pgtype.Text{String: reason, Valid: true},
			}
			if passed && current.TrustLevel < LevelVerified {
				update.TrustLevel = pgtype.Int2{Int16: LevelVerified, Valid: true}
			}
			return update, nil
		},
	})
	if err != nil {
		return Decision{}, fmt.Errorf("plugin auth: %w", err)
	}

	return Decision{Passed: passed, Reason: reason, NewLevel: merchant.TrustLevel}, nil
}

// RealnameAuth 实名认证。
// 收款账户户名必须等于法人或公司名称，之后由外部身份核验服务确认账户真实性。
// 核验服务不可用时返回可重试错误，绝不猜测结果；不匹配保持 Verified。
func (m *Machine) RealnameAuth(ctx context.Context, merchantID int64, lic BizLicense, acct PaymentAccount) (Decision, error) {
	merchant, err := m.store.GetMerchant(ctx, merchantID)
	if err != nil {
		return Decision{}, fmt.Errorf("get merchant: %w", err)
	}
	if merchant.TrustLevel < LevelVerified {
		return Decision{}, ErrNotVerified
	}

	holder := normalizeName(acct.HolderName)
	if holder == "" || (holder != normalizeName(lic.LegalPerson) && holder != normalizeName(lic.CompanyName)) {
		return m.recordRealname(ctx, merchantID, lic, false,
			"收款账户户名与营业执照法人或公司名称不一致")
	}

	// 外部核验不在任何锁内进行
	verified, err := m.verify(ctx, acct)
	if err != nil {
		return Decision{}, err
	}
	if !verified {
		return m.recordRealname(ctx, merchantID, lic, false,
			"支付宝账户实名信息核验未通过")
	}

	return m.recordRealname(ctx, merchantID, lic, true, "实名认证通过")
}

func (m *Machine) verify(ctx context.Context, acct PaymentAccount) (bool, error) {
	if m.verifier == nil {
		return false, ErrUpstreamUnavailable
	}
	verified, err := m.verifier.VerifyAccountName(ctx, acct.Account, acct.HolderName)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	return verified, nil
}

func (m *Machine) recordRealname(ctx context.Context, merchantID int64, lic BizLicense, passed bool, reason string) (Decision, error) {
	status := RealnameStatusRejected
	if passed {
		status = RealnameStatusApproved
	}

	merchant, err := m.store.UpdateMerchantTrustTx(ctx, db.UpdateMerchantTrustTxParams{
		MerchantID: merchantID,
		Decide: func(current db.Merchant) (db.UpdateMerchantParams, error) {
			// 锁内复查等级门槛，防止并发降级后越级
			if current.TrustLevel < LevelVerified {
				return db.UpdateMerchantParams{}, ErrNotVerified
			}
			update := db.UpdateMerchantParams{
				RealnameStatus:  pgtype.Text{String: status, Valid: true},
				RealnameReason:  pgtype.Text{String: reason, Valid: true},
				LegalPersonName: pgtype.Text{String: lic.LegalPerson, Valid: true},
				CompanyName:     pgtype.Text{String: lic.CompanyName, Valid: true},
			}
			if passed {
				update.TrustLevel = pgtype.Int2{Int16: LevelAuthenticated, Valid: true}
			}
			return update, nil
		},
	})
	if err != nil {
		return Decision{}, fmt.Errorf("record realname result: %w", err)
	}

	return Decision{Passed: passed, Reason: reason, NewLevel: merchant.TrustLevel}, nil
}

// 管理员操作动作
const (
	AdminActionApprove   = "approve"
	AdminActionReject    = "reject"
	AdminActionUpgrade   = "upgrade"
	AdminActionDowngrade = "downgrade"
)

// ErrInvalidAdminAction 未知的管理员操作
var ErrInvalidAdminAction = errors.New("invalid admin action")

// AdminReview 管理员越过自动门槛直接调整商家状态或等级。
// 等级钳制在 1 到 3 之间；reject 会同时降回 Visitor。
func (m *Machine) AdminReview(ctx context.Context, merchantID int64, action string) (db.Merchant, error) {
	merchant, err := m.store.UpdateMerchantTrustTx(ctx, db.UpdateMerchantTrustTxParams{
		MerchantID: merchantID,
		Decide: func(current db.Merchant) (db.UpdateMerchantParams, error) {
			var update db.UpdateMerchantParams
			switch action {
			case AdminActionApprove:
				update.Status = pgtype.Text{String: "approved", Valid: true}
				if current.TrustLevel < LevelVerified {
					update.TrustLevel = pgtype.Int2{Int16: LevelVerified, Valid: true}
				}
			case AdminActionReject:
				update.Status = pgtype.Text{String: "rejected", Valid: true}
				update.TrustLevel = pgtype.Int2{Int16: LevelVisitor, Valid: true}
			case AdminActionUpgrade:
				update.TrustLevel = pgtype.Int2{Int16: clampLevel(current.TrustLevel + 1), Valid: true}
			case AdminActionDowngrade:
				update.TrustLevel = pgtype.Int2{Int16: clampLevel(current.TrustLevel - 1), Valid: true}
			default:
				return update, fmt.Errorf("%w: %s", ErrInvalidAdminAction, action)
			}
			return update, nil
		},
	})
	if err != nil {
		return db.Merchant{}, err
	}
	return merchant, nil
}

func clampLevel(level int16) int16 {
	if level < LevelVisitor {
		return LevelVisitor
	}
	if level > LevelAuthenticated {
		return LevelAuthenticated
	}
	return level
}

// normalizeName 姓名归一化后做严格相等比较
func normalizeName(name string) string {
	return strings.Join(strings.Fields(name), "")
}
