package constants

const (
	// EnvDevelop is the env name that relaxes push token checks.
	EnvDevelop = "develop"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Identity token providers
const (
	IdentityProviderJWT      = "jwt"
	IdentityProviderFirebase = "firebase"
)
