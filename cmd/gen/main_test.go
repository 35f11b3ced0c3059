package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gen"
)

func TestGeneratorConfig(t *testing.T) {
	cfg := generatorConfig("./out/query")

	assert.Equal(t, "./out/query", cfg.OutPath)
	assert.NotZero(t, cfg.Mode&gen.WithDefaultQuery)
	assert.NotZero(t, cfg.Mode&gen.WithQueryInterface)
	assert.True(t, cfg.FieldWithIndexTag)
}
