package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"

	"github.com/mansrc/mankit/core/host"
	"github.com/mansrc/mankit/core/host/hosttest"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Nil(t, cfg.Validate())

	argv, err := cfg.RendererArgv()
	assert.Nil(t, err)
	assert.Equal(t, []string{"man", "--no-hyphenation", "-P", "cat", "-l", "-"}, argv)
}

func TestConfiguration_Validate(t *testing.T) {
	t.Run("missing renderer", func(t *testing.T) {
		cfg := Default()
		cfg.Renderer = ""
		assert.NotNil(t, cfg.Validate())
	})

	t.Run("unparsable command", func(t *testing.T) {
		cfg := Default()
		cfg.Opener = `"unterminated`
		assert.NotNil(t, cfg.Validate())
	})
}

func TestConfiguration_argv(t *testing.T) {
	cfg := Default()

	t.Run("ps renderer appends page", func(t *testing.T) {
		argv, err := cfg.PSRendererArgv("openat2.2")
		assert.Nil(t, err)
		assert.Equal(t, []string{"man", "-Tps", "openat2.2"}, argv)
	})

	t.Run("pdf converter substitutes output", func(t *testing.T) {
		argv, err := cfg.PDFConverterArgv("/tmp/x.pdf")
		assert.Nil(t, err)
		assert.Equal(t, []string{"ps2pdf", "-", "/tmp/x.pdf"}, argv)
	})

	t.Run("opener appends target", func(t *testing.T) {
		argv, err := cfg.OpenerArgv("/tmp/x.pdf")
		assert.Nil(t, err)
		assert.Equal(t, []string{"xdg-open", "/tmp/x.pdf"}, argv)
	})
}

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := "man_dir: /src/man-pages\nkernel_dir: /src/linux\n"
	assert.Nil(t, afero.WriteFile(fs, "/cfg/"+ConfigurationName, []byte(content), 0644))

	t.Run("directory", func(t *testing.T) {
		cfg, err := Load(fs, "/cfg")
		assert.Nil(t, err)
		assert.Equal(t, "/src/man-pages", cfg.ManDir)
		assert.Equal(t, "/src/linux", cfg.KernelDir)
		// Unset fields keep their defaults.
		assert.Equal(t, Default().Renderer, cfg.Renderer)
	})

	t.Run("file path", func(t *testing.T) {
		cfg, err := Load(fs, "/cfg/"+ConfigurationName)
		assert.Nil(t, err)
		assert.Equal(t, "/src/man-pages", cfg.ManDir)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := Load(fs, "/nope")
		assert.NotNil(t, err)
	})

	t.Run("unknown key rejected", func(t *testing.T) {
		assert.Nil(t, afero.WriteFile(fs, "/bad/"+ConfigurationName,
			[]byte("man_dirs: typo\n"), 0644))
		_, err := Load(fs, "/bad")
		assert.NotNil(t, err)
	})
}

func TestForHost(t *testing.T) {
	fs := afero.NewMemMapFs()
	assert.Nil(t, afero.WriteFile(fs, "/cfg/"+ConfigurationName,
		[]byte("kernel_dir: /src/linux\n"), 0644))

	newHost := func(env map[string]string) host.Host {
		return &hosttest.FakeHost{
			IO:  host.NewIOAdapter(nil, nil, nil),
			Fs:  fs,
			Dir: "/",
			Env: env,
		}
	}

	t.Run("env override", func(t *testing.T) {
		cfg := ForHost(newHost(map[string]string{EnvConfigDir: "/cfg"}))
		assert.Equal(t, "/src/linux", cfg.KernelDir)
	})

	t.Run("fallback to defaults", func(t *testing.T) {
		cfg := ForHost(newHost(nil))
		assert.Equal(t, Default(), cfg)
	})
}
