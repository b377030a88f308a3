package customerr

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func Test_WrappedErrors_ShouldBeMatchable(t *testing.T) {
	err := errors.Wrap(&NotFoundError{ID: 42}, "delete expense")

	var nf *NotFoundError
	assert.True(t, errors.As(err, &nf))
	assert.Equal(t, int64(42), nf.ID)
	assert.Equal(t, "delete expense: expense 42 not found", err.Error())
}

func Test_PersistError_ShouldUnwrapCause(t *testing.T) {
	cause := errors.New("disk full")
	err := &PersistError{Op: "create", Err: cause}

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "persist after create: disk full", err.Error())
}

func Test_DecodeError_Messages(t *testing.T) {
	assert.Equal(t, "decode records: not an array", (&DecodeError{Index: -1, Reason: "not an array"}).Error())
	assert.Equal(t, "decode record 2: bad date", (&DecodeError{Index: 2, Reason: "bad date"}).Error())
}
