package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOffsetRequest_Validate(t *testing.T) {
	tests := []struct {
		name string
		in   OffsetRequest
		want OffsetRequest
	}{
		{name: "defaults", in: OffsetRequest{}, want: OffsetRequest{Page: 1, Size: PageDefaultSize}},
		{name: "clamps size", in: OffsetRequest{Page: 2, Size: 5000}, want: OffsetRequest{Page: 2, Size: PageMaxSize}},
		{name: "keeps valid", in: OffsetRequest{Page: 3, Size: 20}, want: OffsetRequest{Page: 3, Size: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.in
			assert.NoError(t, req.Validate())
			assert.Equal(t, tt.want, req)
		})
	}
}

func TestOffsetRequest_Offset(t *testing.T) {
	assert.Equal(t, 0, OffsetRequest{Page: 1, Size: 10}.Offset())
	assert.Equal(t, 20, OffsetRequest{Page: 3, Size: 10}.Offset())
	assert.Equal(t, 0, OffsetRequest{}.Offset())
}

func TestNewOffsetResult(t *testing.T) {
	res := NewOffsetResult([]int{1, 2}, 5, 1, 2)
	assert.True(t, res.HasMore)

	last := NewOffsetResult([]int{5}, 5, 3, 2)
	assert.False(t, last.HasMore)

	empty := NewOffsetResult[int](nil, 0, 1, 10)
	assert.NotNil(t, empty.Items)
	assert.False(t, empty.HasMore)
}
