package config

type Config struct {
	Filename string                `json:"-"` // Note: for internal use only
	Auths    map[string]AuthConfig `json:"auths,omitempty"`
}

// AuthConfig contains authorization information for connecting to an
// Archiva instance.
type AuthConfig struct {
	Username      string `json:"username,omitempty"`
	Password      string `json:"password,omitempty"`
	Auth          string `json:"auth,omitempty"`
	ServerAddress string `json:"serveraddress,omitempty"`
}
