package main

import (
	"io/ioutil"

	"gopkg.in/yaml.v2"
)

type Config struct {
	data ConfigDTO
}

func (c *Config) ListenAddress() string {
	return c.data.ListenAddress
}

func (c *Config) ListenPort() int {
	return c.data.ListenPort
}

func (c *Config) SSHListenAddress() string {
	return c.data.SSHListenAddress
}

func (c *Config) SSHListenPort() int {
	return c.data.SSHListenPort
}

func (c *Config) SSHHostKeyFile() string {
	return c.data.SSHHostKeyFile
}

func (c *Config) SSHUser() string {
	return c.data.SSHUser
}

func (c *Config) SSHPassword() string {
	return c.data.SSHPassword
}

func (c *Config) DbEnabled() bool {
	return c.data.DbEnabled
}

func (c *Config) DbAddress() []string {
	return c.data.DbAddress
}

func (c *Config) DbKeyspace() string {
	return c.data.DbKeyspace
}

func (c *Config) DbCQLVersion() int {
	return c.data.DbCQLVersion
}

func (c *Config) UUIDSequence() uint16 {
	return uint16(c.data.UUIDSequence)
}

func (c *Config) MaxBatchSize() int {
	return c.data.MaxBatchSize
}

type ConfigDTO struct {
	ListenAddress    string   `yaml:"listen_address,omitempty"`
	ListenPort       int      `yaml:"listen_port,omitempty"`
	SSHListenAddress string   `yaml:"ssh_listen_address,omitempty"`
	SSHListenPort    int      `yaml:"ssh_listen_port,omitempty"`
	SSHHostKeyFile   string   `yaml:"ssh_host_key_file,omitempty"`
	SSHUser          string   `yaml:"ssh_user,omitempty"`
	SSHPassword      string   `yaml:"ssh_password,omitempty"`
	DbEnabled        bool     `yaml:"db_enabled,omitempty"`
	DbAddress        []string `yaml:"db_address,flow"`
	DbKeyspace       string   `yaml:"db_keyspace,omitempty"`
	DbCQLVersion     int      `yaml:"db_cql_version,omitempty"`
	UUIDSequence     int      `yaml:"uuid_sequence,omitempty"`
	MaxBatchSize     int      `yaml:"max_batch_size,omitempty"`
}

func loadConfigFromFile(file string) (*Config, error) {

	data, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, err
	}

	config := &Config{}

	// A malformed uuid_sequence fails here instead of silently breaking
	// sequence-collision avoidance later
	err = yaml.UnmarshalStrict(data, &config.data)
	if err != nil {
		return nil, err
	}

	if config.data.UUIDSequence < 0 || config.data.UUIDSequence > 0x3FFF {
		return nil, ErrInvalidSequenceSeed
	}

	setConfigDefaults(config)

	return config, nil
}

func defaultConfig() *Config {
	config := &Config{}
	setConfigDefaults(config)
	return config
}

// Set defaults if values are unset
func setConfigDefaults(config *Config) {

	if config.data.ListenPort == 0 {
		config.data.ListenPort = 1830
	}

	if config.data.SSHListenPort == 0 {
		config.data.SSHListenPort = 2022
	}

	if config.data.SSHHostKeyFile == "" {
		config.data.SSHHostKeyFile = "cert/server_rsa"
	}

	if config.data.SSHUser == "" {
		config.data.SSHUser = "admin"
	}

	if config.data.SSHPassword == "" {
		config.data.SSHPassword = "admin"
	}

	if config.data.DbKeyspace == "" {
		config.data.DbKeyspace = "uuidgen"
	}

	if config.data.DbCQLVersion == 0 {
		config.data.DbCQLVersion = 4
	}

	if config.data.MaxBatchSize == 0 {
		config.data.MaxBatchSize = 1000
	}
}
