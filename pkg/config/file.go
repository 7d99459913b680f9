package config

import (
	"encoding/base64"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/xompass/archctl/pkg/util/jsonutil"
)

func New(fn string) *Config {
	return &Config{
		Filename: fn,
		Auths:    map[string]AuthConfig{},
	}
}

// Load reads the configuration file at filename. A missing file is not
// an error and yields an empty config.
func Load(filename string) (*Config, error) {
	if filename == "" {
		filename = DefaultConfigFilePath()
	}

	configFile := New(filename)

	file, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return configFile, nil
		}
		return configFile, errors.Wrap(err, filename)
	}
	defer file.Close()

	if err = configFile.LoadFromReader(file); err != nil {
		return configFile, errors.Wrap(err, filename)
	}
	return configFile, nil
}

// LoadFromReader reads the configuration data given and sets up the auth config
// information and populates the receiver object
func (c *Config) LoadFromReader(r io.Reader) error {
	var err error
	if err = jsonutil.NewDecoder(r).Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	for addr, ac := range c.Auths {
		if ac.Auth != "" {
			ac.Username, ac.Password, err = decodeAuth(ac.Auth)
			if err != nil {
				return err
			}
		}
		ac.Auth = ""
		ac.ServerAddress = addr
		c.Auths[addr] = ac
	}
	return nil
}

// GetAuthConfig returns stored credentials for the host, matching
// either the full address or its bare hostname.
func (c *Config) GetAuthConfig(serverAddress string) (AuthConfig, bool) {
	if ac, ok := c.Auths[serverAddress]; ok {
		return ac, true
	}
	for addr, ac := range c.Auths {
		if serverAddress == ConvertToHostname(addr) || ConvertToHostname(serverAddress) == ConvertToHostname(addr) {
			return ac, true
		}
	}
	return AuthConfig{}, false
}

func (c *Config) StoreAuth(authConfig AuthConfig) error {
	c.Auths[authConfig.ServerAddress] = authConfig
	return c.Save()
}

func (c *Config) RemoveAuthConfig(serverAddress string) error {
	if _, ok := c.GetAuthConfig(serverAddress); !ok {
		return errors.Errorf("no stored credentials for %s", serverAddress)
	}
	for addr := range c.Auths {
		if addr == serverAddress || ConvertToHostname(addr) == ConvertToHostname(serverAddress) {
			delete(c.Auths, addr)
		}
	}
	return c.Save()
}

// SaveToWriter encodes and writes out all the authorization information to
// the given writer
func (c *Config) SaveToWriter(w io.Writer) error {
	// Encode sensitive data into a new/temp struct
	tmpAuthConfigs := make(map[string]AuthConfig, len(c.Auths))
	for k, authConfig := range c.Auths {
		authCopy := authConfig
		// encode and save the authstring, while blanking out the original fields
		authCopy.Auth = encodeAuth(&authCopy)
		authCopy.Username = ""
		authCopy.Password = ""
		authCopy.ServerAddress = ""
		tmpAuthConfigs[k] = authCopy
	}

	saveAuthConfigs := c.Auths
	c.Auths = tmpAuthConfigs
	defer func() { c.Auths = saveAuthConfigs }()

	data, err := jsonutil.MarshalIndent(c, "", "    ")
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Save encodes and writes out all the authorization information
func (c *Config) Save() (retErr error) {
	if c.Filename == "" {
		return errors.Errorf("Can't save config with empty filename")
	}

	dir := filepath.Dir(c.Filename)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}
	temp, err := os.CreateTemp(dir, filepath.Base(c.Filename))
	if err != nil {
		return err
	}
	defer func() {
		_ = temp.Close()
		if retErr != nil {
			_ = os.Remove(temp.Name())
		}
	}()

	if err = c.SaveToWriter(temp); err != nil {
		return err
	}

	if err := temp.Close(); err != nil {
		return errors.Wrap(err, "error closing temp file")
	}

	// Handle situation where the configfile is a symlink
	cfgFile := c.Filename
	if f, err := os.Readlink(cfgFile); err == nil {
		cfgFile = f
	}

	return os.Rename(temp.Name(), cfgFile)
}

// encodeAuth creates a base64 encoded string to containing authorization information
func encodeAuth(authConfig *AuthConfig) string {
	if authConfig.Username == "" && authConfig.Password == "" {
		return ""
	}

	authStr := authConfig.Username + ":" + authConfig.Password
	msg := []byte(authStr)
	encoded := make([]byte, base64.StdEncoding.EncodedLen(len(msg)))
	base64.StdEncoding.Encode(encoded, msg)
	return string(encoded)
}

// decodeAuth decodes a base64 encoded string and returns username and password
func decodeAuth(authStr string) (string, string, error) {
	if authStr == "" {
		return "", "", nil
	}

	decLen := base64.StdEncoding.DecodedLen(len(authStr))
	decoded := make([]byte, decLen)
	n, err := base64.StdEncoding.Decode(decoded, []byte(authStr))
	if err != nil {
		return "", "", err
	}
	if n > decLen {
		return "", "", errors.Errorf("Something went wrong decoding auth config")
	}
	arr := strings.SplitN(string(decoded), ":", 2)
	if len(arr) != 2 {
		return "", "", errors.Errorf("Invalid auth configuration file")
	}
	password := strings.Trim(arr[1], "\x00")
	return arr[0], password, nil
}

// ConvertToHostname converts a registry url which has http|https prepended
// to just an hostname.
func ConvertToHostname(url string) string {
	stripped := url
	if strings.HasPrefix(url, "http://") {
		stripped = strings.TrimPrefix(url, "http://")
	} else if strings.HasPrefix(url, "https://") {
		stripped = strings.TrimPrefix(url, "https://")
	}

	nameParts := strings.SplitN(stripped, "/", 2)

	return nameParts[0]
}
