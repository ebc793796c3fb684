package context

import (
	"context"

	"github.com/muhammadheryan/inventory/constant"
)

func GetMerchantID(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.MerchantIDKey)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

func WithMerchantID(ctx context.Context, merchantID string) context.Context {
	return context.WithValue(ctx, constant.MerchantIDKey, merchantID)
}
