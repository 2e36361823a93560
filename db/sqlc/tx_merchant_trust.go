package db

import (
	"context"
	"fmt"
)

// UpdateMerchantTrustTxParams 商家信任等级变更事务参数。
// Decide 回调拿到锁定后的当前状态，返回要应用的变更；
// 返回错误则整个事务回滚，等级保持不变。
type UpdateMerchantTrustTxParams struct {
	MerchantID int64
	Decide     func(merchant Merchant) (UpdateMerchantParams, error)
}

// UpdateMerchantTrustTx 在行锁内执行信任等级状态迁移，
// 保证并发的认证请求和管理员操作不会交叉覆盖。
func (store *SQLStore) UpdateMerchantTrustTx(ctx context.Context, arg UpdateMerchantTrustTxParams) (Merchant, error) {
	var result Merchant

	err := store.execTx(ctx, func(q *Queries) error {
		merchant, err := q.GetMerchantForUpdate(ctx, arg.MerchantID)
		if err != nil {
			return fmt.Errorf("lock merchant: %w", err)
		}

		update, err := arg.Decide(merchant)
		if err != nil {
			return err
		}
		update.ID = merchant.ID

		result, err = q.UpdateMerchant(ctx, update)
		if err != nil {
			return fmt.Errorf("update merchant: %w", err)
		}

		return nil
	})

	return result, err
}
