package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

const (
	ConfigurationName = "config.yaml"
	LogsDirName       = "session_logs"
	PrivateKeyName    = "host_key"
	AppLogName        = "events.log"
)

type Configuration struct {
	configFs afero.Fs

	// Motd is printed once when the shell starts.
	Motd string `json:"motd"`

	Prompt Prompt `json:"prompt"`

	// BinDir is the directory the kernel resolves external programs in.
	BinDir string `json:"bin_dir" validate:"required,startswith=/"`

	// Programs lists external programs known to ship with the kernel
	// image. Used by the help builtin and the SSH demo frontend.
	Programs []Program `json:"programs" validate:"unique=Name"`

	SSHPort int `json:"ssh_port" validate:"gte=0,lte=65535"`

	// ConsoleBaud throttles SSH console output to mimic a serial line.
	// Zero disables throttling.
	ConsoleBaud int `json:"console_baud" validate:"gte=0"`

	// RecordSessions captures console traffic into LogsDirName.
	RecordSessions bool `json:"record_sessions"`
}

type Prompt struct {
	Name   string `json:"name" validate:"required"`
	Symbol string `json:"symbol" validate:"required"`
}

type Program struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

func (c *Configuration) fs() afero.Fs {
	return c.configFs
}

// CreateSessionLog creates a session recording with the given name.
func (c *Configuration) CreateSessionLog(name string) (afero.File, error) {
	return c.fs().Create(filepath.Join(LogsDirName, name))
}

// OpenAppLog opens the application event log in an append only state.
func (c *Configuration) OpenAppLog() (afero.File, error) {
	return c.fs().OpenFile(AppLogName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

// PrivateKeyPem returns the bytes of the SSH host key.
func (c *Configuration) PrivateKeyPem() ([]byte, error) {
	return afero.ReadFile(c.fs(), PrivateKeyName)
}

// Default returns the embedded default configuration. It panics on an
// invalid embed because that can only be a build error.
func Default() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	out.configFs = afero.NewMemMapFs()
	return &out
}
