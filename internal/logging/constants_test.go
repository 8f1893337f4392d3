package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstants(t *testing.T) {
	for _, name := range []string{
		FieldFile, FieldBank, FieldEngine, FieldCount, FieldBlocks,
		FieldDelimiter, FieldInputFile, FieldOutputFile,
	} {
		assert.NotEmpty(t, name)
	}
	assert.NotEqual(t, FieldInputFile, FieldOutputFile)
}
