package config

// PinnerCfg pinner client config
type PinnerCfg struct {
	// http url of the daemon command api
	APIURL string
	// per command timeout. must be a valid duration recognized by golang's time.ParseDuration function
	Timeout string
	// bearer token sent with every command, empty disables auth
	APIToken string
	// InsecureSkipVerify skip tls verify
	InsecureSkipVerify bool
}
