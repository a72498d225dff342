package action_controller

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KP-365/TheWearDeck/models"
)

func TestParseProductIDsSingle(t *testing.T) {
	id := uuid.Must(uuid.NewV7())

	ids, err := parseProductIDs(models.ActionRequest{ProductID: id.String()})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{id}, ids)
}

func TestParseProductIDsCommaJoined(t *testing.T) {
	a := uuid.Must(uuid.NewV7())
	b := uuid.Must(uuid.NewV7())

	ids, err := parseProductIDs(models.ActionRequest{
		ProductIDs: a.String() + ", " + b.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a, b}, ids)
}

func TestParseProductIDsPrefersList(t *testing.T) {
	a := uuid.Must(uuid.NewV7())
	b := uuid.Must(uuid.NewV7())

	// product_ids wins when both fields are sent
	ids, err := parseProductIDs(models.ActionRequest{
		ProductID:  b.String(),
		ProductIDs: a.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a}, ids)
}

func TestParseProductIDsErrors(t *testing.T) {
	_, err := parseProductIDs(models.ActionRequest{})
	assert.ErrorIs(t, err, errEmptyProducts)

	_, err = parseProductIDs(models.ActionRequest{ProductIDs: "not-a-uuid"})
	assert.ErrorIs(t, err, errInvalidProductID)

	_, err = parseProductIDs(models.ActionRequest{
		ProductIDs: uuid.Must(uuid.NewV7()).String() + ",junk",
	})
	assert.ErrorIs(t, err, errInvalidProductID)
}
