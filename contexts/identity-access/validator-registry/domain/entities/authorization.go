package entities

// Authorization is one validator's registry entry. Revoked validators keep
// their row with Authorized set to false so audit history survives.
type Authorization struct {
	Validator       string
	Authorized      bool
	UpdatedAtHeight uint64
	UpdatedBy       string
}
