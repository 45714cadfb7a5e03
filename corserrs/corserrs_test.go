package corserrs_test

import (
	"strings"
	"testing"

	"github.com/parkrevil/bunner-cors-rs/corserrs"
)

func TestPackageNamePrefixInErrorMessages(t *testing.T) {
	errs := []error{
		new(corserrs.CredentialsOriginError),
		new(corserrs.CredentialsHeadersError),
		new(corserrs.CredentialsExposedHeadersError),
		new(corserrs.CredentialsTimingAllowOriginError),
		&corserrs.WildcardInListError{Field: "allowed-headers"},
		&corserrs.WildcardInListError{Field: "methods"},
		&corserrs.ExposedHeadersWildcardError{Reason: "not-sole"},
		&corserrs.ExposedHeadersWildcardError{Reason: "credentialed"},
		&corserrs.InvalidTokenError{Field: "methods", Value: "résumé"},
		new(corserrs.PrivateNetworkError),
		&corserrs.PatternError{Pattern: "(", Reason: "too-long"},
		&corserrs.PatternError{Pattern: "(", Reason: "timeout"},
		&corserrs.PatternError{Pattern: "(", Reason: "invalid", Detail: "missing closing paren"},
		&corserrs.MaxAgeError{Value: -1},
	}
	const wantPrefix = "cors: "
	for _, err := range errs {
		if msg := err.Error(); !strings.HasPrefix(msg, wantPrefix) {
			t.Errorf("missing package-name prefix in %q", msg)
		}
	}
}

// comparability checks: every error type must remain usable as a map key,
// so that callers can deduplicate or group errors by type+value.
var (
	_ map[corserrs.CredentialsOriginError]struct{}
	_ map[corserrs.CredentialsHeadersError]struct{}
	_ map[corserrs.CredentialsExposedHeadersError]struct{}
	_ map[corserrs.CredentialsTimingAllowOriginError]struct{}
	_ map[corserrs.WildcardInListError]struct{}
	_ map[corserrs.ExposedHeadersWildcardError]struct{}
	_ map[corserrs.InvalidTokenError]struct{}
	_ map[corserrs.PrivateNetworkError]struct{}
	_ map[corserrs.PatternError]struct{}
	_ map[corserrs.MaxAgeError]struct{}
)
