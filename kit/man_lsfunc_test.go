package kit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mansrc/mankit/core/host/hosttest"
)

const fooPage = `.TH FOO 2 2021-03-22 Linux
.SH NAME
foo - do the foo thing
.SH SYNOPSIS
.nf
       int foo(int x);
.fi
.SH DESCRIPTION
The foo() function does things.
`

const openat2Page = `.TH OPENAT2 2 2021-03-22 Linux
.SH NAME
openat2 - open and possibly create a file
.SH SYNOPSIS
.nf
       long syscall(SYS_openat2, int dirfd, const char *pathname,
                    struct open_how *how, size_t size);
.fi
.SH DESCRIPTION
Words.
`

func TestManLsfunc(t *testing.T) {
	cases := goldenTestSuite{
		"no-args": {Args: []string{"man_lsfunc"}},
		"basic": {
			Args:  []string{"man_lsfunc", "/man2/foo.2"},
			Setup: writeFiles(map[string]string{"/man2/foo.2": fooPage}),
			Exec:  hosttest.Passthrough,
		},
		"syscall-wrapper": {
			Args:  []string{"man_lsfunc", "/man2/openat2.2"},
			Setup: writeFiles(map[string]string{"/man2/openat2.2": openat2Page}),
			Exec:  hosttest.Passthrough,
		},
		"comments-stripped": {
			Args: []string{"man_lsfunc", "/man2/bar.2"},
			Setup: writeFiles(map[string]string{
				"/man2/bar.2": ".TH BAR 2\n" +
					".SH SYNOPSIS\n" +
					"       int bar(int flags /* unused */);\n" +
					".SH DESCRIPTION\nWords.\n",
			}),
			Exec: hosttest.Passthrough,
		},
	}

	cases.Run(t, ManLsfunc)
}

// Arguments are processed in order, directories expanding to their pages
// in lexicographic order.
func TestManLsfunc_argumentOrder(t *testing.T) {
	cmd := hosttest.Command(ManLsfunc, "man_lsfunc", "/man2/z.2", "/man2/a.2")
	cmd.Setup = writeFiles(map[string]string{
		"/man2/z.2": ".TH Z 2\n.SH SYNOPSIS\n       int zed(void);\n.SH DESCRIPTION\nw\n",
		"/man2/a.2": ".TH A 2\n.SH SYNOPSIS\n       int alef(void);\n.SH DESCRIPTION\nw\n",
	})
	cmd.ExecHandler = hosttest.Passthrough

	out, err := cmd.Output()
	assert.Nil(t, err)
	assert.Equal(t, 0, cmd.ExitStatus)
	assert.Equal(t, "zed\nalef\n", string(out))
}

func TestManLsfunc_missingPath(t *testing.T) {
	cmd := hosttest.Command(ManLsfunc, "man_lsfunc", "/nope")
	cmd.ExecHandler = hosttest.Passthrough

	out, err := cmd.Output()
	assert.Nil(t, err)
	assert.NotEqual(t, 0, cmd.ExitStatus)
	assert.Empty(t, string(out))
}
