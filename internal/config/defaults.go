package config

const (
	defaultOutputDir  = "~/.local/share/crosswalk/output"
	defaultLogDir     = "~/.local/share/crosswalk/logs"
	defaultIdentityDB = "~/.local/share/crosswalk/identities.db"
	defaultLogFormat  = "console"
	defaultLogLevel   = "info"

	defaultMatchThreshold   = 0.70
	defaultNameThreshold    = 0.85
	defaultAddressThreshold = 0.80
	defaultEmailThreshold   = 0.90
	defaultPhoneThreshold   = 0.95

	defaultNameWeight    = 0.3
	defaultAddressWeight = 0.3
	defaultEmailWeight   = 0.2
	defaultPhoneWeight   = 0.2
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir:  defaultOutputDir,
			LogDir:     defaultLogDir,
			IdentityDB: defaultIdentityDB,
		},
		Matching: Matching{
			MatchThreshold:   defaultMatchThreshold,
			NameThreshold:    defaultNameThreshold,
			AddressThreshold: defaultAddressThreshold,
			EmailThreshold:   defaultEmailThreshold,
			PhoneThreshold:   defaultPhoneThreshold,
		},
		Weights: Weights{
			Name:    defaultNameWeight,
			Address: defaultAddressWeight,
			Email:   defaultEmailWeight,
			Phone:   defaultPhoneWeight,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
