package variables

import "strings"

// SecretsContext maps secret variable names to their values.
type SecretsContext map[string]string

// reservedSecretNames are handed to the expression evaluator through their own
// channel and must never appear in a SecretsContext.
var reservedSecretNames = []string{
	SystemAccessToken,
	SystemGitHubToken,
}

// ToSecretsContext returns the secret variables of scope, minus the reserved
// token names. Keys keep the casing the variable was stored with.
func (s *Store) ToSecretsContext(scope Scope) SecretsContext {
	result := make(SecretsContext)
	if !scope.Valid() {
		return result
	}

	s.scopes[scope].vars.Range(func(_ string, v Variable) bool {
		if v.secret && !isReservedSecretName(v.name) {
			result[v.name] = v.value
		}
		return true
	})
	return result
}

func isReservedSecretName(name string) bool {
	for _, r := range reservedSecretNames {
		if strings.EqualFold(name, r) {
			return true
		}
	}
	return false
}
