//go:build unit

package patch_test

import (
	"testing"

	"salon-loyalty/internal/pkg/patch"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	v := int32(12)
	assert.Equal(t, int32(12), patch.Coalesce(&v, 10))
	assert.Equal(t, int32(10), patch.Coalesce[int32](nil, 10))
}

func TestTrimmedOrNil(t *testing.T) {
	blank := " "
	phone := " 555-0100 "
	assert.Nil(t, patch.TrimmedOrNil(nil))
	assert.Nil(t, patch.TrimmedOrNil(&blank))
	assert.Equal(t, "555-0100", *patch.TrimmedOrNil(&phone))
}
