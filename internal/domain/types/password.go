package types

// PasswordResult reports whether a password appears in the breach corpus.
// Count is zero exactly when Compromised is false.
type PasswordResult struct {
	Compromised bool  `json:"compromised"`
	Count       int64 `json:"count"`
}

// NewPasswordResult derives a result from an occurrence count. Negative
// counts are treated as zero.
func NewPasswordResult(count int64) PasswordResult {
	if count <= 0 {
		return PasswordResult{}
	}
	return PasswordResult{Compromised: true, Count: count}
}
