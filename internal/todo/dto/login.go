package dto

// LoginInput's username slot accepts either a username or an email address.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenPair is a freshly minted access/refresh credential pair, both bound
// to the same subject. They are issued together or not at all.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
