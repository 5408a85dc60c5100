package sentiment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/sugarme/tokenizer"
	"github.com/sugarme/tokenizer/pretrained"
	ort "github.com/yalue/onnxruntime_go"
)

// ONNXConfig locates the runtime library, model and tokenizer on disk.
type ONNXConfig struct {
	SharedLibraryPath string
	ModelPath         string
	TokenizerPath     string
	MaxSeqLen         int
	Labels            []string
}

// ONNX runs a local sequence-classification model with ONNX Runtime.
type ONNX struct {
	mu      sync.RWMutex
	session *ort.DynamicAdvancedSession
	tk      *tokenizer.Tokenizer
	labels  []string
	maxLen  int
}

var ortInit sync.Once

// NewONNX loads the tokenizer and model. The ONNX Runtime environment is
// initialised once per process.
func NewONNX(cfg ONNXConfig) (*ONNX, error) {
	if cfg.ModelPath == "" || cfg.TokenizerPath == "" {
		return nil, errors.New("onnx classifier needs a model path and a tokenizer path")
	}
	if cfg.MaxSeqLen <= 0 {
		cfg.MaxSeqLen = DefaultMaxSeqLen
	}
	if len(cfg.Labels) == 0 {
		cfg.Labels = DefaultONNXLabels
	}

	var initErr error
	ortInit.Do(func() {
		if cfg.SharedLibraryPath != "" {
			ort.SetSharedLibraryPath(cfg.SharedLibraryPath)
		}
		initErr = ort.InitializeEnvironment()
	})
	if initErr != nil {
		return nil, fmt.Errorf("initialize onnxruntime: %w", initErr)
	}
	if !ort.IsInitialized() {
		return nil, errors.New("onnxruntime environment is not initialized")
	}

	tk, err := pretrained.FromFile(cfg.TokenizerPath)
	if err != nil {
		return nil, fmt.Errorf("load tokenizer: %w", err)
	}

	session, err := ort.NewDynamicAdvancedSession(cfg.ModelPath,
		[]string{"input_ids", "attention_mask"},
		[]string{"logits"},
		nil)
	if err != nil {
		return nil, fmt.Errorf("create onnx session: %w", err)
	}

	return &ONNX{
		session: session,
		tk:      tk,
		labels:  cfg.Labels,
		maxLen:  cfg.MaxSeqLen,
	}, nil
}

func (o *ONNX) Name() string { return ProviderONNX }

// Classify tokenizes text, runs the model and applies softmax to the logits.
func (o *ONNX) Classify(ctx context.Context, text string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	o.mu.RLock()
	defer o.mu.RUnlock()
	if o.session == nil {
		return Result{}, errors.New("onnx classifier is closed")
	}

	enc, err := o.tk.EncodeSingle(text, true)
	if err != nil {
		return Result{}, fmt.Errorf("tokenize: %w", err)
	}
	ids, mask := truncateTokens(enc.Ids, enc.AttentionMask, o.maxLen)
	if len(ids) == 0 {
		return Result{}, errors.New("tokenizer produced no tokens")
	}

	shape := ort.NewShape(1, int64(len(ids)))
	idsTensor, err := ort.NewTensor(shape, ids)
	if err != nil {
		return Result{}, fmt.Errorf("input_ids tensor: %w", err)
	}
	defer idsTensor.Destroy()

	maskTensor, err := ort.NewTensor(shape, mask)
	if err != nil {
		return Result{}, fmt.Errorf("attention_mask tensor: %w", err)
	}
	defer maskTensor.Destroy()

	out, err := ort.NewEmptyTensor[float32](ort.NewShape(1, int64(len(o.labels))))
	if err != nil {
		return Result{}, fmt.Errorf("logits tensor: %w", err)
	}
	defer out.Destroy()

	if err := o.session.Run([]ort.Value{idsTensor, maskTensor}, []ort.Value{out}); err != nil {
		return Result{}, fmt.Errorf("onnx run: %w", err)
	}

	return scoreLogits(out.GetData(), o.labels)
}

// CheckHealth reports whether the session is loaded.
func (o *ONNX) CheckHealth(_ context.Context) error {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if o.session == nil {
		return errors.New("onnx session not loaded")
	}
	return nil
}

// Close releases the session. The runtime environment stays up for the process.
func (o *ONNX) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.session == nil {
		return nil
	}
	err := o.session.Destroy()
	o.session = nil
	return err
}

// truncateTokens keeps at most maxLen tokens, preserving the trailing
// separator token the tokenizer appended.
func truncateTokens(ids, mask []int, maxLen int) ([]int64, []int64) {
	n := len(ids)
	if len(mask) != n {
		mask = make([]int, n)
		for i := range mask {
			mask[i] = 1
		}
	}

	keep := n
	if keep > maxLen {
		keep = maxLen
	}

	outIDs := make([]int64, keep)
	outMask := make([]int64, keep)
	for i := 0; i < keep; i++ {
		outIDs[i] = int64(ids[i])
		outMask[i] = int64(mask[i])
	}
	if n > maxLen && keep > 0 {
		outIDs[keep-1] = int64(ids[n-1])
		outMask[keep-1] = int64(mask[n-1])
	}
	return outIDs, outMask
}

// scoreLogits applies softmax and returns the arg-max label with its probability.
func scoreLogits(logits []float32, labels []string) (Result, error) {
	if len(logits) != len(labels) || len(logits) == 0 {
		return Result{}, fmt.Errorf("model returned %d logits for %d labels", len(logits), len(labels))
	}

	maxLogit := float64(logits[0])
	for _, l := range logits[1:] {
		maxLogit = math.Max(maxLogit, float64(l))
	}

	var sum float64
	probs := make([]float64, len(logits))
	for i, l := range logits {
		probs[i] = math.Exp(float64(l) - maxLogit)
		sum += probs[i]
	}

	candidates := make([]Result, len(labels))
	for i := range probs {
		candidates[i] = Result{Label: labels[i], Score: probs[i] / sum}
	}
	r, _ := best(candidates)
	return r, nil
}
