package maybe_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/maybe"
)

func TestFromOK(t *testing.T) {
	form := map[string]string{"name": "sebastian"}

	v, ok := form["name"]
	assert.Equal(t, maybe.Present("sebastian"), maybe.FromOK(v, ok))

	v, ok = form["email"]
	assert.Equal(t, maybe.Absent[string](), maybe.FromOK(v, ok))
}

func TestFromError(t *testing.T) {
	assert.Equal(t, maybe.Present(27), maybe.FromError(strconv.Atoi("27")))
	assert.Equal(t, maybe.Absent[int](), maybe.FromError(strconv.Atoi("abc")))
	assert.True(t, maybe.FromError("partial", errors.New("boom")).IsAbsent())
}
