// Package cmd implements the rex command line.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.dw1.io/rex/definition"
	"go.dw1.io/rex/internal/json"
	"go.dw1.io/rex/internal/logger"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatJSON = "json"
)

const defaultDefinitions = "rex.yaml"

var errFormat = errors.New("unsupported output format")

// app carries the state shared by every subcommand of one root command.
type app struct {
	v   *viper.Viper
	fs  afero.Fs
	log *logger.Logger
}

// Execute runs the rex command line against the real filesystem.
func Execute() error {
	return NewRootCmd(afero.NewOsFs()).Execute()
}

// NewRootCmd builds the rex command tree. Definition and config files are
// read from fs.
func NewRootCmd(fs afero.Fs) *cobra.Command {
	a := &app{
		v:   viper.New(),
		fs:  fs,
		log: logger.Default(),
	}

	var configFile string

	root := &cobra.Command{
		Use:   "rex",
		Short: "Compose regular expressions from named building blocks",
		Long: `rex builds regular-expression patterns from declarative definition files
and checks them against input.

Examples:
  rex escape "1+1=2?"
  rex build -f patterns.yaml
  rex match -f patterns.yaml date 2024-06
  rex grep -f patterns.yaml date /var/log/app.log`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.loadConfig(configFile); err != nil {
				return err
			}

			a.log = logger.New(cmd.ErrOrStderr(), a.v.GetBool("verbose"))
			if used := a.v.ConfigFileUsed(); used != "" {
				a.log.Debug("using config file %s", used)
			}

			switch a.format() {
			case formatText:
				return nil
			case formatJSON:
				// Keep (?P<name>...) readable in emitted patterns.
				json.SetEscapeHTML(false)
				return nil
			default:
				return fmt.Errorf("%w: %q", errFormat, a.format())
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default is .rex.yaml in $HOME or the working directory)")
	flags.BoolP("verbose", "v", false, "enable debug output")
	flags.String("format", formatText, "output format: text or json")
	flags.StringP("definitions", "f", defaultDefinitions, "pattern definition file (.yaml, .yml or .json)")

	a.v.BindPFlag("verbose", flags.Lookup("verbose"))
	a.v.BindPFlag("format", flags.Lookup("format"))
	a.v.BindPFlag("definitions", flags.Lookup("definitions"))

	root.AddCommand(
		newEscapeCmd(a),
		newBuildCmd(a),
		newMatchCmd(a),
		newGrepCmd(a),
	)

	return root
}

func (a *app) loadConfig(configFile string) error {
	a.v.SetFs(a.fs)
	a.v.SetEnvPrefix("rex")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if configFile != "" {
		a.v.SetConfigFile(configFile)
	} else {
		a.v.SetConfigName(".rex")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home)
		}
	}

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	return nil
}

func (a *app) format() string {
	return strings.ToLower(a.v.GetString("format"))
}

func (a *app) document() (*definition.Document, error) {
	path := a.v.GetString("definitions")
	a.log.Debug("loading definitions from %s", path)

	return definition.Load(a.fs, path)
}

// writeJSON writes v to w as one line of JSON.
func writeJSON(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	_, err = w.Write(append(data, '\n'))
	return err
}
