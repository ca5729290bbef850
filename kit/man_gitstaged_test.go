package kit

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mansrc/mankit/core/host"
	"github.com/mansrc/mankit/core/host/hosttest"
)

// gitListing scripts `git diff --staged --name-only` to print the given
// lines.
func gitListing(listing string) func(c *host.Cmd) error {
	return func(c *host.Cmd) error {
		if c.Path != "git" {
			return errors.New("unexpected command: " + c.Path)
		}
		_, err := io.WriteString(c.Stdout, listing)
		return err
	}
}

func TestManGitStaged(t *testing.T) {
	cases := goldenTestSuite{
		"staged": {
			Args: []string{"man_gitstaged"},
			Exec: gitListing("man2/openat2.2\nman7/mq_overview.7\n"),
		},
		"empty": {
			Args: []string{"man_gitstaged"},
			Exec: gitListing(""),
		},
	}

	cases.Run(t, ManGitStaged)
}

func TestManGitStaged_invocation(t *testing.T) {
	var got *host.Cmd
	cmd := hosttest.Command(ManGitStaged, "man_gitstaged")
	cmd.ExecHandler = func(c *host.Cmd) error {
		got = c
		return nil
	}

	_, err := cmd.Output()
	assert.Nil(t, err)
	assert.Equal(t, 0, cmd.ExitStatus)
	assert.NotNil(t, got)
	assert.Equal(t, "git", got.Path)
	assert.Equal(t, []string{"diff", "--staged", "--name-only"}, got.Args)
}

func TestManGitStaged_gitFailure(t *testing.T) {
	cmd := hosttest.Command(ManGitStaged, "man_gitstaged")
	cmd.ExecHandler = func(c *host.Cmd) error {
		return errors.New("fatal: not a git repository")
	}

	out, err := cmd.Output()
	assert.Nil(t, err)
	assert.Equal(t, 1, cmd.ExitStatus)
	assert.Empty(t, string(out))
}
