package reports

import (
	"encoding/csv"
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

const CSVMime = "text/csv"

// Encodings the CSV export can be written in. Windows-1252 is what
// spreadsheet tools on Italian Windows installations open without asking.
var Encodings = map[string]encoding.Encoding{
	"utf-8":        encoding.Nop,
	"windows-1252": charmap.Windows1252,
	"iso-8859-1":   charmap.ISO8859_1,
}

// WriteCSV writes rows separated by ';' in the named encoding.
func WriteCSV(w io.Writer, rows []Row, encodingName string) error {
	enc, ok := Encodings[encodingName]
	if !ok {
		return fmt.Errorf("unsupported encoding %q", encodingName)
	}

	out := transform.NewWriter(w, encoding.ReplaceUnsupported(enc.NewEncoder()))
	cw := csv.NewWriter(out)
	cw.Comma = ';'

	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(r.strings()); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	return out.Close()
}
