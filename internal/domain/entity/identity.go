package entity

// CallerIdentity describes the authenticated AWS principal.
type CallerIdentity struct {
	Profile   string `json:"profile"`
	AccountID string `json:"account_id"`
	Arn       string `json:"arn"`
	UserID    string `json:"user_id"`
}
