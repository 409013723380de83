package azure

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
)

// TokenCredentialFactory creates azcore.TokenCredentials. It is a variable type to allow for mocking in unit tests.
type TokenCredentialFactory func(tenantID, clientID, clientSecret string) (azcore.TokenCredential, error)

// DefaultTokenCredentialFactory returns a service principal credential when any of tenantID, clientID or clientSecret
// is set, and otherwise a credential built from the AZURE_TENANT_ID, AZURE_CLIENT_ID and AZURE_CLIENT_SECRET env vars.
func DefaultTokenCredentialFactory(tenantID, clientID, clientSecret string) (azcore.TokenCredential, error) {
	if tenantID == "" && clientID == "" && clientSecret == "" {
		return azidentity.NewEnvironmentCredential(nil)
	}
	return azidentity.NewClientSecretCredential(tenantID, clientID, clientSecret, nil)
}
