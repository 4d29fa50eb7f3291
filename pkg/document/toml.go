package document

import (
	"bytes"

	"github.com/pelletier/go-toml/v2"
)

// decodeTOML decodes into plain maps. TOML tables carry no order worth
// keeping, so the dump lists their keys sorted.
func decodeTOML(data []byte) (interface{}, error) {
	var m map[string]interface{}
	if err := toml.NewDecoder(bytes.NewReader(data)).Decode(&m); err != nil {
		return nil, err
	}
	return m, nil
}
