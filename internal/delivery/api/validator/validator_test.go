package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type projectQuery struct {
	ID string `validate:"required,uuid"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&projectQuery{ID: "0190a4a8-7a3c-7cc2-b4b5-6e7d1d4c2a10"}))
	assert.Error(t, v.Validate(&projectQuery{}))
	assert.Error(t, v.Validate(&projectQuery{ID: "not-a-uuid"}))
}
