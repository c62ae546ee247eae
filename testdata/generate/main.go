// Command generate writes a deterministic sample SIE file in CP437, the
// historical encoding the parser tries first. Run it from the repository
// root to refresh testdata/sample.se.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

func main() {
	out := flag.String("out", "testdata/sample.se", "output path")
	flag.Parse()

	lines := []string{
		`#FLAGGA 0`,
		`#PROGRAM "SankeySaldo testdata" 1.0`,
		`#FORMAT PC8`,
		`#FNAMN "Göteborgs Kafé AB"`,
		`#ORGNR 556000-0001`,
		`#RAR 0 20230101 20231231`,
		`#KONTO 1930 "Företagskonto"`,
		`#KONTO 3041 "Försäljning tjänster"`,
		`#KONTO 4010 "Inköp varor"`,
		`#KONTO 2611 "Utgående moms"`,
		`#VER A 1 20230115 "Kundfaktura 1001"`,
		`{20230115 1930 1250,00}`,
		`{20230115 3041 -1000,00}`,
		`{20230115 2611 -250,00}`,
		`}`,
		`#VER A 2 20230131 "Varuinköp"`,
		`{20230131 4010 400,00 "Kaffebönor"}`,
		`{20230131 1930 -400,00}`,
		`}`,
	}

	data, err := charmap.CodePage437.NewEncoder().String(strings.Join(lines, "\r\n") + "\r\n")
	if err != nil {
		log.Fatalf("encode cp437: %v", err)
	}
	if err := os.WriteFile(*out, []byte(data), 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
	fmt.Printf("Wrote %s (%d bytes)\n", *out, len(data))
}
