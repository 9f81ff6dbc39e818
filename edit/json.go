package edit

import "github.com/launchdarkly/go-jsonstream/v3/jwriter"

// WriteJSON writes the script as an array of {"Op": "M", "Len": n} objects
func (s *Script) WriteJSON(writer *jwriter.Writer) {
	arr := writer.Array()
	defer arr.End()

	for _, op := range s.ops {
		obj := arr.Object()
		obj.Name("Op").String(string(op.Kind.CIGAR()))
		obj.Name("Len").Int(op.Len)
		obj.End()
	}
}
