// internal/writers/text.go
package writers

import (
	"bufio"
	"fmt"
	"io"

	"minspace/pkg/api"
)

func init() { Register("text", WriteText) }

// WriteText prints a commented header block followed by one TSV row per token.
func WriteText(w io.Writer, d api.MinspaceV1) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# file\t%s\n", d.File)
	fmt.Fprintf(bw, "# count\t%d\n", d.Count)
	fmt.Fprintf(bw, "# max_value\t%d\n", d.MaxValue)
	fmt.Fprintf(bw, "# width\t%d\n", d.Width)
	if d.Mode != "" {
		fmt.Fprintf(bw, "# mode\t%s\n", d.Mode)
		fmt.Fprintf(bw, "# minimizer_length\t%d\n", d.MinimizerLength)
		fmt.Fprintf(bw, "# window\t%d\n", d.Window)
	}
	for _, t := range d.Tokens {
		if t.Kmer != "" {
			fmt.Fprintf(bw, "%d\t%d\t%s\n", t.Index, t.Value, t.Kmer)
		} else {
			fmt.Fprintf(bw, "%d\t%d\n", t.Index, t.Value)
		}
	}
	if d.Truncated {
		fmt.Fprintf(bw, "# ... %d more\n", d.Count-uint64(len(d.Tokens)))
	}
	return bw.Flush()
}
