package travel

import "strings"

// ReferralBaseURL is the provider's deep-link endpoint.
const ReferralBaseURL = "http://partners.api.skyscanner.net/apiservices/referral/v1.0/"

// apiKeyClip is how much of the key the referral endpoint accepts.
const apiKeyClip = 16

// ReferralLink builds a deep-link URL from ordered path segments (country,
// currency, locale, origin, destination, outbound date, optional inbound
// date). Empty segments are dropped before joining; a segment of "0" is
// kept, deliberately diverging from the PHP-style falsy filter. When apiKey
// is non-empty, a ?apiKey= query with the first 16 characters is appended.
func ReferralLink(segments []string, apiKey string) string {
	kept := make([]string, 0, len(segments))
	for _, s := range segments {
		if s != "" {
			kept = append(kept, s)
		}
	}
	return ReferralBaseURL + strings.Join(kept, "/") + apiKeyQuery(apiKey)
}

func apiKeyQuery(apiKey string) string {
	if apiKey == "" {
		return ""
	}
	if len(apiKey) > apiKeyClip {
		apiKey = apiKey[:apiKeyClip]
	}
	return "?apiKey=" + apiKey
}
