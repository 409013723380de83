package azure

import (
	"os"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
)

// Options contains options necessary for the azure destination
type Options struct {
	// AccountName holds the Azure Blob Storage account name for authentication
	AccountName string

	// AccountKey holds the Azure Blob Storage account key for authentication
	AccountKey string

	// TenantID holds the Azure Service Account tenant id for authentication
	TenantID string

	// ClientID holds the Azure Service Account client id for authentication
	ClientID string

	// ClientSecret holds the Azure Service Account client secret for authentication
	ClientSecret string

	// ConnectionString replaces every setting above when set
	ConnectionString string

	// ServiceURL overrides https://<AccountName>.blob.core.windows.net/, ie: for Azurite
	ServiceURL string

	// BlockSize is the size of each staged block in bytes. 0 keeps the SDK default.
	BlockSize int64

	// Concurrency is the number of blocks staged in parallel. 0 keeps the SDK default.
	Concurrency int

	tokenCredentialFactory TokenCredentialFactory
}

// NewOptions creates a new Options struct by populating values from environment variables.
//
// Env Vars:
//
//	*FTPMOVER_AZURE_STORAGE_ACCOUNT
//	*FTPMOVER_AZURE_STORAGE_ACCESS_KEY
//	*FTPMOVER_AZURE_TENANT_ID
//	*FTPMOVER_AZURE_CLIENT_ID
//	*FTPMOVER_AZURE_CLIENT_SECRET
//	*FTPMOVER_AZURE_CONNECTION_STRING
func NewOptions() *Options {
	return &Options{
		AccountName:            os.Getenv("FTPMOVER_AZURE_STORAGE_ACCOUNT"),
		AccountKey:             os.Getenv("FTPMOVER_AZURE_STORAGE_ACCESS_KEY"),
		TenantID:               os.Getenv("FTPMOVER_AZURE_TENANT_ID"),
		ClientID:               os.Getenv("FTPMOVER_AZURE_CLIENT_ID"),
		ClientSecret:           os.Getenv("FTPMOVER_AZURE_CLIENT_SECRET"),
		ConnectionString:       os.Getenv("FTPMOVER_AZURE_CONNECTION_STRING"),
		tokenCredentialFactory: DefaultTokenCredentialFactory,
	}
}

// Credential returns a credential based on the provided options. The credential returned will be one of the
// following:
//
//	*azidentity.ClientSecretCredential - when the tenant id, client id and client secret are set
//	*azblob.SharedKeyCredential - when the account name and account key are set
//	nil - when none of the above, for anonymous access
func (o *Options) Credential() (any, error) {
	// Check to see if we have service account credentials
	if o.TenantID != "" && o.ClientID != "" && o.ClientSecret != "" {
		factory := o.tokenCredentialFactory
		if factory == nil {
			factory = DefaultTokenCredentialFactory
		}
		return factory(o.TenantID, o.ClientID, o.ClientSecret)
	}

	// Check to see if we have storage account credentials
	if o.AccountName != "" && o.AccountKey != "" {
		return azblob.NewSharedKeyCredential(o.AccountName, o.AccountKey)
	}

	return nil, nil
}

func (o *Options) serviceURL() string {
	if o.ServiceURL != "" {
		return o.ServiceURL
	}
	return "https://" + o.AccountName + ".blob.core.windows.net/"
}
