package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFromTextIsDeterministic(t *testing.T) {
	s := NewEmbeddingService()

	a := s.GenerateFromText("black leather boots")
	b := s.GenerateFromText("black leather boots")
	c := s.GenerateFromText("white canvas sneakers")

	require.Len(t, a, EmbeddingDim)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestEmbeddingValuesBounded(t *testing.T) {
	s := NewEmbeddingService()

	for _, v := range s.GenerateFromText("summer dress") {
		assert.GreaterOrEqual(t, v, float32(-1))
		assert.LessOrEqual(t, v, float32(1))
	}
}

func TestGenerateFromImageUndecodableData(t *testing.T) {
	s := NewEmbeddingService()

	// Garbage bytes must still embed rather than fail the upload.
	a := s.GenerateFromImage([]byte("not an image"))
	b := s.GenerateFromImage([]byte("not an image"))
	require.Len(t, a, EmbeddingDim)
	assert.Equal(t, a, b)
}

func TestMeanEmbedding(t *testing.T) {
	mean := MeanEmbedding([][]float32{
		{1, 2, 3},
		{3, 4, 5},
	})
	assert.Equal(t, []float32{2, 3, 4}, mean)

	assert.Nil(t, MeanEmbedding(nil))
	assert.Nil(t, MeanEmbedding([][]float32{}))
}
