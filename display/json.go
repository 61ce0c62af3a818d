package display

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/teranos/paw/errors"
)

// MarshalJSON marshals with indentation unless PAW_JSON_COMPACT is set,
// for piping into jq or log shippers.
func MarshalJSON(v interface{}) ([]byte, error) {
	if os.Getenv("PAW_JSON_COMPACT") != "" {
		return json.Marshal(v)
	}
	return json.MarshalIndent(v, "", "  ")
}

// OutputJSON marshals and prints JSON to stdout
func OutputJSON(v interface{}) error {
	return WriteJSON(os.Stdout, v)
}

// WriteJSON marshals and writes JSON followed by a newline
func WriteJSON(w io.Writer, v interface{}) error {
	data, err := MarshalJSON(v)
	if err != nil {
		return errors.Wrap(err, "failed to marshal JSON")
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
