package gcode

import "os"

// Flush writes w's accumulated G-code text to filename, grounded on the
// teacher's writer.Writer.Write (which does exactly this, but against a
// gcode string built by the caller rather than an owned Builder).
func (w *Writer) Flush(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteString(w.String())
	return err
}
