package constant

const (
	// AccessTokenCookie and RefreshTokenCookie are the credential cookie
	// names the frontend contract depends on.
	AccessTokenCookie  = "access_token"
	RefreshTokenCookie = "refresh_token"

	// SubjectKey is the fiber locals key holding the authenticated user id.
	SubjectKey = "subjectID"
)
