// Package constants holds shared literals used across layers.
package constants

const (
	// EnvDevelop is the development environment name.
	EnvDevelop = "develop"

	// PubSubProviderLocal selects the local HTTP publisher for development.
	PubSubProviderLocal = "local"

	// PubSubProviderGoogle selects Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)
