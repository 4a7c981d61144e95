package classifier

import (
	"context"
	"fmt"
	"sync"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/abhisek/lymphwatch/internal/features"
	"github.com/abhisek/lymphwatch/internal/risk"
)

// ortInit guards one-time ONNX runtime environment setup.
var (
	ortInit    sync.Once
	ortInitErr error
)

func initRuntime(libraryPath string) error {
	ortInit.Do(func() {
		if libraryPath != "" {
			ort.SetSharedLibraryPath(libraryPath)
		}
		ortInitErr = ort.InitializeEnvironment()
	})
	return ortInitErr
}

// ONNXConfig configures the ONNX-backed classifier.
type ONNXConfig struct {
	// ManifestPath locates the model manifest JSON.
	ManifestPath string
	// LibraryPath optionally overrides the onnxruntime shared library
	// location.
	LibraryPath string
}

// ONNXClassifier runs the exported gradient-boosted-trees model through
// onnxruntime. The session binds one reusable input/output tensor pair,
// so calls are serialized with a mutex.
type ONNXClassifier struct {
	mu       sync.Mutex
	manifest Manifest
	session  *ort.AdvancedSession
	input    *ort.Tensor[float32]
	output   *ort.Tensor[float32]
}

var _ Classifier = (*ONNXClassifier)(nil)

// NewONNXClassifier loads the manifest, initializes the runtime, and
// opens an inference session for the model.
func NewONNXClassifier(cfg ONNXConfig) (*ONNXClassifier, error) {
	manifest, err := LoadManifest(cfg.ManifestPath)
	if err != nil {
		return nil, err
	}
	if err := initRuntime(cfg.LibraryPath); err != nil {
		return nil, fmt.Errorf("initialize onnxruntime: %w", err)
	}

	input, err := ort.NewEmptyTensor[float32](ort.NewShape(1, int64(len(manifest.Inputs))))
	if err != nil {
		return nil, fmt.Errorf("create input tensor: %w", err)
	}
	output, err := ort.NewEmptyTensor[float32](ort.NewShape(1, 3))
	if err != nil {
		input.Destroy()
		return nil, fmt.Errorf("create output tensor: %w", err)
	}

	session, err := ort.NewAdvancedSession(manifest.ModelPath,
		[]string{manifest.InputName}, []string{manifest.OutputName},
		[]ort.Value{input}, []ort.Value{output}, nil)
	if err != nil {
		input.Destroy()
		output.Destroy()
		return nil, fmt.Errorf("open model session %s: %w", manifest.ModelPath, err)
	}

	return &ONNXClassifier{
		manifest: manifest,
		session:  session,
		input:    input,
		output:   output,
	}, nil
}

// Predict scores the manifest's feature subset of vec.
func (c *ONNXClassifier) Predict(ctx context.Context, vec features.Vector) (risk.Distribution, error) {
	if err := ctx.Err(); err != nil {
		return risk.Distribution{}, err
	}

	row, err := Select(vec, c.manifest.Inputs)
	if err != nil {
		return risk.Distribution{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	copy(c.input.GetData(), row)
	if err := c.session.Run(); err != nil {
		return risk.Distribution{}, fmt.Errorf("model inference: %w", err)
	}

	out := c.output.GetData()
	if len(out) != 3 {
		return risk.Distribution{}, &risk.InvalidDistributionError{
			Reason: fmt.Sprintf("model produced %d outputs, want 3", len(out)),
		}
	}

	var dist risk.Distribution
	for i := range dist {
		dist[i] = float64(out[i])
	}
	if err := dist.Validate(); err != nil {
		return risk.Distribution{}, err
	}
	return dist, nil
}

// Manifest returns the loaded model manifest.
func (c *ONNXClassifier) Manifest() Manifest {
	return c.manifest
}

// Close destroys the session and its tensors.
func (c *ONNXClassifier) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session != nil {
		c.session.Destroy()
		c.session = nil
	}
	if c.input != nil {
		c.input.Destroy()
		c.input = nil
	}
	if c.output != nil {
		c.output.Destroy()
		c.output = nil
	}
	return nil
}
