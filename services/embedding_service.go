package services

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"image"

	// register decoders for the formats the catalog uploads use
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// EmbeddingDim is the fixed length of every embedding the app produces or
// stores; the products and inspo_images vector columns match it.
const EmbeddingDim = 512

// EmbeddingService produces deterministic hash-derived pseudo-vectors.
// This is a stand-in for a real CLIP-style model: the vectors are stable
// per input, which is enough for the similarity plumbing to be exercised
// end to end, but they carry no semantic signal. Swap GenerateFromText /
// GenerateFromImage for model calls when one is available.
type EmbeddingService struct{}

func NewEmbeddingService() *EmbeddingService {
	return &EmbeddingService{}
}

// GenerateFromText embeds a text query.
func (s *EmbeddingService) GenerateFromText(text string) []float32 {
	return hashEmbedding("text:" + text)
}

// GenerateFromImage embeds an uploaded image. Only the decoded dimensions
// and format feed the hash; undecodable data still embeds deterministically
// from its first bytes rather than failing the upload.
func (s *EmbeddingService) GenerateFromImage(data []byte) []float32 {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		head := data
		if len(head) > 64 {
			head = head[:64]
		}
		return hashEmbedding("image:raw:" + string(head))
	}
	return hashEmbedding(fmt.Sprintf("image:%dx%d:%s", cfg.Width, cfg.Height, format))
}

// hashEmbedding expands a sha256 digest into EmbeddingDim floats in
// [-1, 1], cycling over the digest bytes.
func hashEmbedding(input string) []float32 {
	digest := sha256.Sum256([]byte(input))
	embedding := make([]float32, EmbeddingDim)
	for i := range embedding {
		b := digest[i%len(digest)]
		embedding[i] = float32(b)/127.5 - 1.0
	}
	return embedding
}

// MeanEmbedding averages a set of equal-length vectors into a single style
// vector. Returns nil when there is nothing to average.
func MeanEmbedding(vectors [][]float32) []float32 {
	if len(vectors) == 0 {
		return nil
	}
	mean := make([]float32, len(vectors[0]))
	for _, v := range vectors {
		for i := range mean {
			if i < len(v) {
				mean[i] += v[i]
			}
		}
	}
	n := float32(len(vectors))
	for i := range mean {
		mean[i] /= n
	}
	return mean
}
