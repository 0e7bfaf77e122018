package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitTrim(t *testing.T) {
	assert.Nil(t, SplitTrim("", ","))
	assert.Equal(t, []string{"a", "b", ""}, SplitTrim(" a , b ,", ","))
	assert.Equal(t, []string{"a", "b"}, RemoveEmptyStrings(SplitTrim(" a , b ,", ",")))
}
