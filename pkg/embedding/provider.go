package embedding

// Response carries one generated embedding vector. Vectors are normalized
// to unit length so cosine distance in pgvector behaves correctly.
type Response struct {
	Values []float32
}

// Provider defines the interface for generating text embeddings. taskType
// is a hint for backends that distinguish document and query embeddings;
// backends that don't simply ignore it.
type Provider interface {
	Generate(text string, taskType string) (*Response, error)
}

const (
	TaskDocument = "RETRIEVAL_DOCUMENT"
	TaskQuery    = "RETRIEVAL_QUERY"
)
