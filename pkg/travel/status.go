package travel

import "fmt"

// statusMessages are the response statuses documented by the provider.
var statusMessages = map[int]string{
	200: "Success",
	201: "Created – The session has been created.",
	204: "No Content – The session is still being created (wait and try again).",
	304: "Not Modified – The results have not been modified since the last poll.",
	400: "Bad Request – Input validation failed.",
	403: "Forbidden – The API Key was not supplied, or it was invalid, or it is not authorized to access.",
	410: "Gone – The session has expired. A new session must be created.",
	429: "Too Many Requests – There have been too many requests in the last minute.",
	500: "Server Error – An internal server error has occurred which has been logged.",
}

// StatusMessage returns the provider's documented description for a status
// code, prefixed with the code itself, e.g. "403 - Forbidden – ...".
func StatusMessage(code int) string {
	msg, ok := statusMessages[code]
	if !ok {
		msg = "Unknown response"
	}
	return fmt.Sprintf("%d - %s", code, msg)
}

// PollDone reports whether a polling response status is terminal: 200
// (results ready) or 304 (unchanged since the last poll). Any other status
// is surfaced to the caller, who decides whether to poll again.
func PollDone(status int) bool {
	return status == 200 || status == 304
}
