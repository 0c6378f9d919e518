// Package constants holds shared domain-level constant values.
package constants

const (
	// EnvDevelop is the development environment name.
	EnvDevelop = "develop"
	// EnvProduction is the production environment name.
	EnvProduction = "production"

	// PubSubProviderLocal selects the local HTTP publisher for development.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle selects Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"

	// OrderTagWeb marks orders placed through the storefront web client.
	OrderTagWeb = "web"
	// OrderTagReward marks orders created by redeeming a loyalty reward.
	OrderTagReward = "reward"
)
