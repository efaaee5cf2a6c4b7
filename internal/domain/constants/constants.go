// Package constants holds values shared across layers.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Event publisher providers.
const (
	PubSubProviderNoop   = ""
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderDirect = "direct"
)

// MDNSServiceType is the zeroconf service advertised on the LAN.
const MDNSServiceType = "_safewallet._tcp"

// Platforms accepted for push devices.
const (
	PlatformIOS     = "ios"
	PlatformAndroid = "android"
)
