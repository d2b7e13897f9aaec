package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/regkit/epp/schema"
	"github.com/regkit/epp/transport"
)

// Config is the client configuration file. All fields except Host are
// optional; zero values select the transport defaults.
type Config struct {
	Host               string   `toml:"host" yaml:"host"`
	Port               int      `toml:"port" yaml:"port"`
	CertFile           string   `toml:"cert_file" yaml:"cert_file"`
	KeyFile            string   `toml:"key_file" yaml:"key_file"`
	Timeout            Duration `toml:"timeout" yaml:"timeout"`
	FrameLimit         int      `toml:"frame_limit" yaml:"frame_limit"`
	InsecureSkipVerify bool     `toml:"insecure_skip_verify" yaml:"insecure_skip_verify"`

	Schema Schema `toml:"schema" yaml:"schema"`
}

// Schema selects the namespace set and lets single namespaces be
// overridden, for registries running a newer schema revision than the
// built-in set.
type Schema struct {
	// Set names the base set: "fred" (the default) or "ietf". See
	// schema.IETF for the limits of the ietf set on the write side.
	Set string `toml:"set" yaml:"set"`
	// Namespaces maps object aliases (domain, contact, host, nsset,
	// keyset, fred, secDNS) to replacement URIs.
	Namespaces map[string]string `toml:"namespaces" yaml:"namespaces"`
}

// Duration wraps time.Duration so config files can spell timeouts the
// way Go does ("30s", "2m").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for the TOML path.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return errors.Wrap(err, "parse duration")
	}
	d.Duration = v
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

// Load reads a configuration file. The format follows the extension:
// .toml, .yaml or .yml.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	switch ext := filepath.Ext(path); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, errors.Wrapf(err, "load %s", path)
		}
	case ".yaml", ".yml":
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "load %s", path)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, errors.Wrapf(err, "load %s", path)
		}
	default:
		return nil, errors.Errorf("load %s: unsupported config format %q", path, ext)
	}
	if err := cfg.validate(); err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Host == "" {
		return errors.New("host is required")
	}
	switch c.Schema.Set {
	case "", "fred", "ietf":
	default:
		return errors.Errorf("unknown schema set %q", c.Schema.Set)
	}
	for alias := range c.Schema.Namespaces {
		if _, ok := namespaceField(&schema.Set{}, alias); !ok {
			return errors.Errorf("unknown namespace alias %q", alias)
		}
	}
	return nil
}

// Transport returns the transport configuration the file describes.
func (c *Config) Transport() transport.Config {
	return transport.Config{
		Host:               c.Host,
		Port:               c.Port,
		CertFile:           c.CertFile,
		KeyFile:            c.KeyFile,
		Timeout:            c.Timeout.Duration,
		FrameLimit:         c.FrameLimit,
		InsecureSkipVerify: c.InsecureSkipVerify,
	}
}

// Set returns the namespace set the file selects, with overrides
// applied.
func (c *Config) Set() schema.Set {
	var set schema.Set
	if c.Schema.Set == "ietf" {
		set = schema.IETF()
	} else {
		set = schema.FRED()
	}
	for alias, uri := range c.Schema.Namespaces {
		if field, ok := namespaceField(&set, alias); ok {
			*field = uri
		}
	}
	return set
}

func namespaceField(set *schema.Set, alias string) (*string, bool) {
	switch alias {
	case "domain":
		return &set.Domain, true
	case "contact":
		return &set.Contact, true
	case "host":
		return &set.Host, true
	case "nsset":
		return &set.Nsset, true
	case "keyset":
		return &set.Keyset, true
	case "fred":
		return &set.Fred, true
	case "secDNS":
		return &set.SecDNS, true
	}
	return nil, false
}
