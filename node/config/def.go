package config

// DefaultPinnerCfg returns the default pinner config
func DefaultPinnerCfg() *PinnerCfg {
	return &PinnerCfg{
		APIURL:             "http://127.0.0.1:5001",
		Timeout:            "30s",
		APIToken:           "",
		InsecureSkipVerify: true,
	}
}
