package classifier

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// manifestSchema constrains the on-disk manifest shape before it is
// trusted to drive model loading.
const manifestSchema = `{
	"type": "object",
	"required": ["model_id", "model_path", "inputs"],
	"properties": {
		"model_id": {"type": "string", "minLength": 1},
		"model_path": {"type": "string", "minLength": 1},
		"inputs": {
			"type": "array",
			"minItems": 1,
			"items": {"type": "string", "minLength": 1}
		},
		"input_name": {"type": "string"},
		"output_name": {"type": "string"}
	}
}`

// LoadManifest reads and validates a model manifest. ModelPath is
// resolved relative to the manifest file, and default tensor names are
// filled in for manifests that omit them.
func LoadManifest(path string) (Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("read manifest: %w", err)
	}

	schema, err := compileManifestSchema()
	if err != nil {
		return Manifest{}, err
	}
	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return Manifest{}, fmt.Errorf("parse manifest: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return Manifest{}, fmt.Errorf("manifest %s: %w", path, err)
	}

	var m Manifest
	if err := json.Unmarshal(raw, &m); err != nil {
		return Manifest{}, fmt.Errorf("decode manifest: %w", err)
	}

	if !filepath.IsAbs(m.ModelPath) {
		m.ModelPath = filepath.Join(filepath.Dir(path), m.ModelPath)
	}
	if m.InputName == "" {
		m.InputName = "float_input"
	}
	if m.OutputName == "" {
		m.OutputName = "probabilities"
	}
	return m, nil
}

func compileManifestSchema() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader([]byte(manifestSchema)))
	if err != nil {
		return nil, fmt.Errorf("parse manifest schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("manifest.json", doc); err != nil {
		return nil, err
	}
	schema, err := c.Compile("manifest.json")
	if err != nil {
		return nil, fmt.Errorf("compile manifest schema: %w", err)
	}
	return schema, nil
}
