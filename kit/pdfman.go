package kit

import (
	"bytes"
	"fmt"

	"github.com/spf13/afero"

	"github.com/mansrc/mankit/core/config"
	"github.com/mansrc/mankit/core/host"
)

// PdfMan renders a man page to PDF and opens it with the default viewer.
func PdfMan(h host.Host) int {
	cmd := &SimpleCommand{
		Use:     "pdfman <page>",
		Short:   "Render a man page to PDF and open it.",
		MinArgs: 1,
		MaxArgs: 1,
	}

	return cmd.RunE(h, func(args []string) error {
		page := args[0]
		cfg := config.ForHost(h)

		psArgv, err := cfg.PSRendererArgv(page)
		if err != nil {
			return err
		}
		var ps bytes.Buffer
		err = h.Exec(&host.Cmd{
			Path:   psArgv[0],
			Args:   psArgv[1:],
			Stdout: &ps,
			Stderr: h.Stderr(),
		})
		if err != nil {
			return fmt.Errorf("rendering %s: %v", page, err)
		}

		out, err := afero.TempFile(h.FS(), "", page+".*.pdf")
		if err != nil {
			return err
		}
		outPath := out.Name()
		out.Close()

		convArgv, err := cfg.PDFConverterArgv(outPath)
		if err != nil {
			return err
		}
		err = h.Exec(&host.Cmd{
			Path:   convArgv[0],
			Args:   convArgv[1:],
			Stdin:  bytes.NewReader(ps.Bytes()),
			Stderr: h.Stderr(),
		})
		if err != nil {
			return fmt.Errorf("converting %s: %v", page, err)
		}

		openArgv, err := cfg.OpenerArgv(outPath)
		if err != nil {
			return err
		}
		err = h.Exec(&host.Cmd{
			Path:   openArgv[0],
			Args:   openArgv[1:],
			Stderr: h.Stderr(),
		})
		if err != nil {
			return fmt.Errorf("opening %s: %v", outPath, err)
		}
		return nil
	})
}

var _ host.ProcessFunc = PdfMan

func init() {
	mustAddFunc(Func{
		Name:  "pdfman",
		Use:   "pdfman <page>",
		Short: "Render a man page to PDF and open it.",
		Proc:  PdfMan,
	})
}
