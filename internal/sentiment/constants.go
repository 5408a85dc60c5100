package sentiment

import "time"

// Provider names accepted by New.
const (
	ProviderHuggingFace = "huggingface"
	ProviderONNX        = "onnx"
	ProviderGemini      = "gemini"
	ProviderStatic      = "static"
)

const (
	DefaultHuggingFaceURL   = "https://router.huggingface.co/hf-inference"
	DefaultHuggingFaceModel = "distilbert-base-uncased-finetuned-sst-2-english"
	DefaultGeminiModel      = "gemini-2.5-flash"
	DefaultTimeout          = 15 * time.Second

	DefaultCacheSize = 1024
	DefaultCacheTTL  = time.Hour

	// DefaultMaxSeqLen is the token limit of DistilBERT style models.
	DefaultMaxSeqLen = 512

	maxInferenceResponseBytes = 1 << 20
)

// DefaultONNXLabels is the output order of SST-2 fine-tuned checkpoints.
var DefaultONNXLabels = []string{"NEGATIVE", "POSITIVE"}

const tracerName = "github.com/osse101/WishEval_Go/internal/sentiment"
