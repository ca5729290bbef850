// Package config holds the locations of the source trees mankit searches
// and the command lines of the external tools it drives.
package config

import (
	_ "embed"
	"fmt"
	"reflect"
	"strings"

	"github.com/anmitsu/go-shlex"
	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

//go:embed default/mankit.yaml
var defaultConfigData []byte

// ConfigurationName is the file mankit looks for.
const ConfigurationName = "mankit.yaml"

// EnvConfigDir overrides where the configuration is looked up.
const EnvConfigDir = "MANKIT_CONFIG"

// OutPlaceholder marks where an output filename is substituted into a
// configured command line.
const OutPlaceholder = "%OUT%"

type Configuration struct {
	// ManDir is the man-pages git tree. It is the working directory for
	// man_gitstaged and the default search root for the man_* functions.
	ManDir string `json:"man_dir"`
	// KernelDir is a Linux kernel tree for grep_syscall and
	// grep_syscall_def. Empty means the working directory.
	KernelDir string `json:"kernel_dir"`
	// GlibcDir is a glibc tree for grep_glibc_prototype. Empty means the
	// working directory.
	GlibcDir string `json:"glibc_dir"`

	// Renderer formats troff source from stdin to flat text on stdout.
	Renderer string `json:"renderer" validate:"required"`
	// PSRenderer formats a man page, named as its argument, to
	// PostScript on stdout.
	PSRenderer string `json:"ps_renderer" validate:"required"`
	// PDFConverter converts PostScript on stdin to the PDF named by the
	// %OUT% placeholder.
	PDFConverter string `json:"pdf_converter" validate:"required"`
	// Opener hands a file to the desktop's default application.
	Opener string `json:"opener" validate:"required"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})

	if err := validate.Struct(c); err != nil {
		return err
	}

	for name, cmdline := range map[string]string{
		"renderer":      c.Renderer,
		"ps_renderer":   c.PSRenderer,
		"pdf_converter": c.PDFConverter,
		"opener":        c.Opener,
	} {
		if _, err := splitCommand(cmdline); err != nil {
			return fmt.Errorf("config: %s: %v", name, err)
		}
	}
	return nil
}

// RendererArgv returns the troff renderer command line.
func (c *Configuration) RendererArgv() ([]string, error) {
	return splitCommand(c.Renderer)
}

// PSRendererArgv returns the PostScript renderer command line with the
// page name appended.
func (c *Configuration) PSRendererArgv(page string) ([]string, error) {
	argv, err := splitCommand(c.PSRenderer)
	if err != nil {
		return nil, err
	}
	return append(argv, page), nil
}

// PDFConverterArgv returns the converter command line with the %OUT%
// placeholder replaced by the output path.
func (c *Configuration) PDFConverterArgv(out string) ([]string, error) {
	argv, err := splitCommand(c.PDFConverter)
	if err != nil {
		return nil, err
	}
	for i, arg := range argv {
		argv[i] = strings.ReplaceAll(arg, OutPlaceholder, out)
	}
	return argv, nil
}

// OpenerArgv returns the opener command line with the target appended.
func (c *Configuration) OpenerArgv(target string) ([]string, error) {
	argv, err := splitCommand(c.Opener)
	if err != nil {
		return nil, err
	}
	return append(argv, target), nil
}

func splitCommand(cmdline string) ([]string, error) {
	argv, err := shlex.Split(cmdline, true)
	if err != nil {
		return nil, err
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("empty command line")
	}
	return argv, nil
}

// Default returns the embedded default configuration.
func Default() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
