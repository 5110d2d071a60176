package cli

import (
	"fmt"
	"io"

	"github.com/diillson/aws-default-vpc-remover/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(w io.Writer) {
	banner := `
     ____        __             _ _    __     ______   ____
    |  _ \  ___ / _| __ _ _   _| | |_  \ \   / /  _ \ / ___|
    | | | |/ _ \ |_ / _' | | | | | __|  \ \ / /| |_) | |
    | |_| |  __/  _| (_| | |_| | | |_    \ V / |  __/| |___
    |____/ \___|_|  \__,_|\__,_|_|\__|    \_/  |_|    \____|
                                          r e m o v e r
    `
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Fprintln(w, red(banner))
	fmt.Fprintln(w, blue(fmt.Sprintf("AWS Default VPC Remover (v%s)", version.FormatVersion())))
}
