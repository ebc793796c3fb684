package constant

type contextKey string

// MerchantIDKey holds the authenticated merchant id in a request context.
const MerchantIDKey contextKey = "merchant_id"
