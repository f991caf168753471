package respond

import "regexp"

var (
	// DSN 内のパスワード
	dsnPasswordPattern = regexp.MustCompile(`://([^:/@\s]+):([^@\s]+)@`)
	// URL クエリの認証系パラメータ
	secretParamPattern = regexp.MustCompile(`(?i)([?&](?:key|token|api_key|apikey|access_token|client_secret)=)[^&\s"]+`)
)

// SanitizeError returns err's message with credentials masked. Upstream URLs
// end up in transport errors, so query secrets are masked as well as DSNs.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	msg = dsnPasswordPattern.ReplaceAllString(msg, "://$1:****@")
	msg = secretParamPattern.ReplaceAllString(msg, "$1****")
	return msg
}
