package optional_test

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/limbo/cocoon/pkg/optional"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type patch struct {
	Kind     optional.Value[string]  `json:"kind"`
	Location optional.Value[*string] `json:"location"`
}

func TestZeroValueIsAbsent(t *testing.T) {
	var v optional.Value[int]
	assert.False(t, v.IsSet())
	got, ok := v.Get()
	assert.False(t, ok)
	assert.Equal(t, 0, got)
	assert.Equal(t, 7, v.OrElse(7))
}

func TestSome(t *testing.T) {
	v := optional.Some("echo")
	assert.True(t, v.IsSet())
	assert.Equal(t, "echo", v.OrElse("other"))
	assert.False(t, optional.None[string]().IsSet())
}

func TestDecodeLeavesMissingFieldsAbsent(t *testing.T) {
	testCases := []struct {
		Desc        string
		Body        string
		KindSet     bool
		LocationSet bool
		Location    string
	}{
		{Desc: "empty object", Body: `{}`},
		{Desc: "kind only", Body: `{"kind":"echo"}`, KindSet: true},
		{Desc: "location value", Body: `{"location":"clinic"}`, LocationSet: true, Location: "clinic"},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			var p patch
			require.NoError(t, sonic.Unmarshal([]byte(tc.Body), &p))
			assert.Equal(t, tc.KindSet, p.Kind.IsSet())
			assert.Equal(t, tc.LocationSet, p.Location.IsSet())
			if tc.LocationSet {
				loc, _ := p.Location.Get()
				require.NotNil(t, loc)
				assert.Equal(t, tc.Location, *loc)
			}
		})
	}
}
