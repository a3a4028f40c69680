package httptransport

// AuthorizationResponse mirrors one registry entry.
type AuthorizationResponse struct {
	Validator       string `json:"validator"`
	Authorized      bool   `json:"authorized"`
	UpdatedAtHeight uint64 `json:"updated_at_height"`
	UpdatedBy       string `json:"updated_by"`
}

type IsAuthorizedResponse struct {
	Validator  string `json:"validator"`
	Authorized bool   `json:"authorized"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
