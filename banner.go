package statecss

import (
	"fmt"
	"strings"
)

// RegenerateCommand is named in the banner as the way to rebuild the output.
const RegenerateCommand = "statecss compile"

const bannerWidth = 77

// Banner returns the comment block written at the top of the combined
// stylesheet, followed by a blank line.
func Banner(fileName string) string {
	var b strings.Builder

	b.WriteString("/" + strings.Repeat("*", bannerWidth-1) + "\n")
	b.WriteString(" *\n")
	fmt.Fprintf(&b, " * %s\n", fileName)
	b.WriteString(" *\n")
	b.WriteString(" * WARNING! Do not edit this CSS file.  It is created automatically from the\n")
	b.WriteString(" *          individual .css files in our state directories.  Any changes you\n")
	b.WriteString(" *          make to this file will be overwritten.\n")
	b.WriteString(" *\n")
	fmt.Fprintf(&b, " * To recompile this file, run the `%s` command\n", RegenerateCommand)
	b.WriteString(" *\n")
	b.WriteString(" " + strings.Repeat("*", bannerWidth-2) + "/\n")
	b.WriteString("\n")

	return b.String()
}
